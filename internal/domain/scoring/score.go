package scoring

import (
	"fmt"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Score is the immutable result of evaluating one category against one roll.
// The roll is snapshotted when the score is created.
type Score struct {
	category Category
	roll     Roll
	points   int
}

func newScore(category Category, roll Roll, points int) Score {
	return Score{
		category: category,
		roll:     roll.Clone(),
		points:   points,
	}
}

// Category returns the category this score was computed for
func (s Score) Category() Category {
	return s.category
}

// Roll returns a copy of the originating roll
func (s Score) Roll() Roll {
	return s.roll.Clone()
}

// Points returns the points awarded
func (s Score) Points() int {
	return s.points
}

func (s Score) String() string {
	return fmt.Sprintf("%s %v = %d", s.category, []int(s.roll), s.points)
}

// Record is the plain, encodable shape of a Score
type Record struct {
	Category Category `json:"category"`
	Roll     []int    `json:"roll"`
	Points   int      `json:"points"`
}

// Record returns the encodable form of s
func (s Score) Record() Record {
	return Record{
		Category: s.category,
		Roll:     []int(s.roll.Clone()),
		Points:   s.points,
	}
}

// ScoreFromRecord rebuilds a Score from its encoded form
func ScoreFromRecord(r Record) (Score, error) {
	if !r.Category.Valid() {
		return Score{}, apperrors.InvalidArgumentf("invalid score category %d", int(r.Category))
	}
	if r.Points < 0 {
		return Score{}, apperrors.InvalidArgumentf("points for %s cannot be negative: %d", r.Category, r.Points)
	}
	if err := Roll(r.Roll).Validate(); err != nil {
		return Score{}, apperrors.Wrapf(err, "invalid roll for %s", r.Category)
	}

	return newScore(r.Category, Roll(r.Roll), r.Points), nil
}
