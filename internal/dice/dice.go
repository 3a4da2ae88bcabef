package dice

import (
	"slices"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// ValidateRoll checks the arguments of a Roll call
func ValidateRoll(count, sides int) error {
	if count < 1 {
		return apperrors.InvalidArgumentf("invalid dice count %d", count).WithMeta("count", count)
	}
	if sides < 1 {
		return apperrors.InvalidArgumentf("invalid dice size %d", sides).WithMeta("sides", sides)
	}
	return nil
}

// ValidateReroll checks the arguments of a Reroll call
func ValidateReroll(dice []int, indices []int, sides int) error {
	if sides < 1 {
		return apperrors.InvalidArgumentf("invalid dice size %d", sides).WithMeta("sides", sides)
	}
	for _, i := range indices {
		if i < 0 || i >= len(dice) {
			return apperrors.InvalidArgumentf("reroll index %d out of range for %d dice", i, len(dice)).
				WithMeta("index", i)
		}
	}
	return nil
}

// Sorted returns a sorted copy of dice
func Sorted(dice []int) []int {
	out := slices.Clone(dice)
	slices.Sort(out)
	return out
}
