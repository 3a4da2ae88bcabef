package scoring

import (
	"slices"

	"github.com/samber/lo"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Fixed point values for the pattern categories
const (
	FullHousePoints     = 25
	SmallStraightPoints = 30
	LargeStraightPoints = 40
	YahtzeePoints       = 50
)

// Rule scores a roll for a single category. The bool is false when the roll
// does not qualify, which is distinct from a qualifying zero-point score.
type Rule func(roll Roll) (Score, bool)

// CategoryRule pairs a category with the rule that scores it
type CategoryRule struct {
	Category Category
	Rule     Rule
}

var (
	smallStraights = [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}}
	largeStraights = [][]int{{1, 2, 3, 4, 5}, {2, 3, 4, 5, 6}}
)

// ruleSet is built once; the category set is closed
var ruleSet = []CategoryRule{
	{Aces, mustRule(NumberRule(1))},
	{Twos, mustRule(NumberRule(2))},
	{Threes, mustRule(NumberRule(3))},
	{Fours, mustRule(NumberRule(4))},
	{Fives, mustRule(NumberRule(5))},
	{Sixes, mustRule(NumberRule(6))},
	{ThreeOfAKind, mustRule(OfAKindRule(ThreeOfAKind, 3))},
	{FourOfAKind, mustRule(OfAKindRule(FourOfAKind, 4))},
	{FullHouse, ScoreFullHouse},
	{SmallStraight, ScoreSmallStraight},
	{LargeStraight, ScoreLargeStraight},
	{Yahtzee, ScoreYahtzee},
	{Chance, ScoreChance},
}

func mustRule(rule Rule, err error) Rule {
	if err != nil {
		panic(err)
	}
	return rule
}

// RuleSet returns the (category, rule) table in declaration order
func RuleSet() []CategoryRule {
	return slices.Clone(ruleSet)
}

// RuleFor returns the rule registered for category
func RuleFor(category Category) (Rule, error) {
	if !category.Valid() {
		return nil, apperrors.InvalidArgumentf("invalid score category %d", int(category))
	}
	return ruleSet[category].Rule, nil
}

// ScoreFor applies the rule for category to roll
func ScoreFor(category Category, roll Roll) (Score, bool, error) {
	rule, err := RuleFor(category)
	if err != nil {
		return Score{}, false, err
	}
	score, ok := rule(roll)
	return score, ok, nil
}

// NumberRule builds the upper-section rule for face: the sum of the dice
// showing face, absent when none do.
func NumberRule(face int) (Rule, error) {
	if face < 1 || face > 6 {
		return nil, apperrors.InvalidArgumentf("face value must be between 1 and 6, got %d", face).
			WithMeta("face", face)
	}

	category := Category(face - 1)
	return func(roll Roll) (Score, bool) {
		points := lo.Sum(lo.Filter([]int(roll), func(d int, _ int) bool {
			return d == face
		}))
		if points == 0 {
			return Score{}, false
		}
		return newScore(category, roll, points), true
	}, nil
}

// OfAKindRule builds a rule that scores the sum of the whole roll when at
// least n dice share a face. category must be ThreeOfAKind or FourOfAKind.
func OfAKindRule(category Category, n int) (Rule, error) {
	if n < 1 || n > 5 {
		return nil, apperrors.InvalidArgumentf("n must be between 1 and 5, got %d", n).
			WithMeta("n", n)
	}
	if category != ThreeOfAKind && category != FourOfAKind {
		return nil, apperrors.InvalidArgumentf("%s is not an of-a-kind category", category)
	}

	return func(roll Roll) (Score, bool) {
		for _, count := range roll.Counts() {
			if count >= n {
				return newScore(category, roll, roll.Sum()), true
			}
		}
		return Score{}, false
	}, nil
}

// ScoreFullHouse awards 25 when the roll is exactly a pair plus three of a
// kind of another face. Five of a kind does not count.
func ScoreFullHouse(roll Roll) (Score, bool) {
	counts := lo.Values(roll.Counts())
	slices.Sort(counts)
	if !slices.Equal(counts, []int{2, 3}) {
		return Score{}, false
	}
	return newScore(FullHouse, roll, FullHousePoints), true
}

// ScoreSmallStraight awards 30 when any run of four faces is present
func ScoreSmallStraight(roll Roll) (Score, bool) {
	present := roll.Distinct()
	for _, straight := range smallStraights {
		if lo.Every(present, straight) {
			return newScore(SmallStraight, roll, SmallStraightPoints), true
		}
	}
	return Score{}, false
}

// ScoreLargeStraight awards 40 when the distinct faces are exactly 1-5 or 2-6
func ScoreLargeStraight(roll Roll) (Score, bool) {
	present := roll.Distinct()
	for _, straight := range largeStraights {
		if len(present) == len(straight) && lo.Every(present, straight) {
			return newScore(LargeStraight, roll, LargeStraightPoints), true
		}
	}
	return Score{}, false
}

// ScoreYahtzee awards 50 when every die shows the same face. An empty roll
// does not qualify; a single die does.
func ScoreYahtzee(roll Roll) (Score, bool) {
	if !roll.allSame() {
		return Score{}, false
	}
	return newScore(Yahtzee, roll, YahtzeePoints), true
}

// ScoreChance always scores the sum of the roll, zero for an empty roll
func ScoreChance(roll Roll) (Score, bool) {
	return newScore(Chance, roll, roll.Sum()), true
}
