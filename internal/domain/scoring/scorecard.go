package scoring

import (
	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Bonus rules
const (
	UpperBonusThreshold = 63
	UpperBonusPoints    = 35
	YahtzeeBonusPoints  = 100
)

// ScoreCard tracks at most one score per category plus bonus state.
//
// A ScoreCard is not safe for concurrent use: callers must serialize Assign
// against every other method. Reads may run concurrently with each other,
// except TotalScore, which can latch the upper bonus.
type ScoreCard struct {
	// every category is present from construction; nil means unset
	assignments       map[Category]*Score
	upperBonusAwarded bool
	yahtzeeBonusCount int
}

// NewScoreCard returns an empty card
func NewScoreCard() *ScoreCard {
	assignments := make(map[Category]*Score, numCategories)
	for _, c := range Categories() {
		assignments[c] = nil
	}
	return &ScoreCard{assignments: assignments}
}

// Assign records score under its category. It fails with an already-exists
// error naming the category when that category is filled, and with an
// invalid-argument error when the roll has a die outside [MinFace, MaxFace].
// A failed Assign leaves the card unchanged.
func (sc *ScoreCard) Assign(score Score) error {
	category := score.Category()
	if !category.Valid() {
		return apperrors.InvalidArgumentf("invalid score category %d", int(category))
	}
	// a card only holds scores it can be restored with
	if err := score.roll.Validate(); err != nil {
		return apperrors.Wrapf(err, "cannot assign %s", category)
	}
	if sc.assignments[category] != nil {
		return apperrors.AlreadyExistsf("category %s has already been scored", category).
			WithMeta("category", category.String())
	}

	// checked against the card as it was before this score lands
	if sc.qualifiesForYahtzeeBonus(score) {
		sc.yahtzeeBonusCount++
	}

	stored := score
	sc.assignments[category] = &stored
	return nil
}

func (sc *ScoreCard) qualifiesForYahtzeeBonus(score Score) bool {
	return score.roll.isFiveOfAKind() &&
		sc.assignments[Yahtzee] != nil &&
		score.Category() != Yahtzee
}

// AvailableCategories returns the unscored categories in declaration order
func (sc *ScoreCard) AvailableCategories() []Category {
	var open []Category
	for _, c := range Categories() {
		if sc.assignments[c] == nil {
			open = append(open, c)
		}
	}
	return open
}

// IsComplete reports whether every category has been scored
func (sc *ScoreCard) IsComplete() bool {
	return len(sc.AvailableCategories()) == 0
}

// Score returns the score held for category, if any
func (sc *ScoreCard) Score(category Category) (Score, bool) {
	s := sc.assignments[category]
	if s == nil {
		return Score{}, false
	}
	return *s, true
}

// UpperSectionTotal sums the points across Aces through Sixes
func (sc *ScoreCard) UpperSectionTotal() int {
	total := 0
	for _, c := range UpperCategories() {
		if s := sc.assignments[c]; s != nil {
			total += s.Points()
		}
	}
	return total
}

// UpperBonusAwarded reports the latched upper-section bonus. It only turns
// true during TotalScore.
func (sc *ScoreCard) UpperBonusAwarded() bool {
	return sc.upperBonusAwarded
}

// YahtzeeBonusCount returns how many Yahtzee bonuses have been earned
func (sc *ScoreCard) YahtzeeBonusCount() int {
	return sc.yahtzeeBonusCount
}

// TotalScore returns the sum of all assigned points plus bonuses. It latches
// the upper bonus once the upper section reaches the threshold; the flag
// never reverts. Repeated calls without an Assign in between return the
// same value.
func (sc *ScoreCard) TotalScore() int {
	total := 0
	for _, s := range sc.assignments {
		if s != nil {
			total += s.Points()
		}
	}

	if !sc.upperBonusAwarded && sc.UpperSectionTotal() >= UpperBonusThreshold {
		sc.upperBonusAwarded = true
	}

	if sc.upperBonusAwarded {
		total += UpperBonusPoints
	}

	return total + sc.yahtzeeBonusCount*YahtzeeBonusPoints
}
