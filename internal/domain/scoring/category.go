package scoring

import (
	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Category is one of the 13 fixed ways a roll can be scored.
// Categories are ordered by declaration.
type Category int

const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance

	numCategories = int(Chance) + 1
)

var categoryLabels = [numCategories]string{
	Aces:          "Aces",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	ThreeOfAKind:  "Three of a Kind",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	SmallStraight: "Small Straight",
	LargeStraight: "Large Straight",
	Yahtzee:       "Yahtzee",
	Chance:        "Chance",
}

// Categories returns every category in declaration order
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// UpperCategories returns the six number categories, Aces through Sixes
func UpperCategories() []Category {
	return []Category{Aces, Twos, Threes, Fours, Fives, Sixes}
}

// Valid reports whether c is one of the 13 declared categories
func (c Category) Valid() bool {
	return c >= Aces && c <= Chance
}

// IsUpper reports whether c belongs to the upper section
func (c Category) IsUpper() bool {
	return c >= Aces && c <= Sixes
}

// String returns the display label, e.g. "Full House"
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// ParseCategory maps a display label back to its Category
func ParseCategory(label string) (Category, error) {
	for i, l := range categoryLabels {
		if l == label {
			return Category(i), nil
		}
	}
	return 0, apperrors.InvalidArgumentf("unknown score category %q", label).
		WithMeta("label", label)
}

// MarshalText encodes the category as its display label
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, apperrors.InvalidArgumentf("invalid score category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a display label
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
