package scoring

import (
	"github.com/samber/lo"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Face bounds of the six sided die every rule assumes
const (
	MinFace = 1
	MaxFace = 6
)

// Roll is an ordered sequence of die faces. Any length is accepted,
// including zero.
type Roll []int

// Sum returns the total of all dice
func (r Roll) Sum() int {
	return lo.Sum([]int(r))
}

// Counts maps each face present to the number of dice showing it
func (r Roll) Counts() map[int]int {
	return lo.CountValues([]int(r))
}

// Distinct returns the faces present, in first-seen order
func (r Roll) Distinct() []int {
	return lo.Uniq([]int(r))
}

// Validate reports an invalid-argument error when any die lies outside
// [MinFace, MaxFace]. Rules score whatever they are given; rolls entering a
// score card or coming back from storage must pass this check.
func (r Roll) Validate() error {
	bad, found := lo.Find([]int(r), func(d int) bool {
		return d < MinFace || d > MaxFace
	})
	if found {
		return apperrors.InvalidArgumentf("die value %d out of range [%d, %d] in roll %v", bad, MinFace, MaxFace, []int(r)).
			WithMeta("die", bad)
	}
	return nil
}

// Clone returns an independent copy; a nil roll clones to an empty one
func (r Roll) Clone() Roll {
	out := make(Roll, len(r))
	copy(out, r)
	return out
}

// allSame reports whether the roll is non-empty and every die matches
func (r Roll) allSame() bool {
	return len(r.Distinct()) == 1
}

// isFiveOfAKind is the roll shape that earns the Yahtzee bonus
func (r Roll) isFiveOfAKind() bool {
	return len(r) == 5 && r.allSame()
}
