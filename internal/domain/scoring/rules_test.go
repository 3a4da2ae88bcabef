package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/yahtzee-scorer/internal/domain/scoring"
	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

func TestNumberRule(t *testing.T) {
	tests := []struct {
		name       string
		face       int
		roll       scoring.Roll
		wantOK     bool
		wantPoints int
		wantCat    scoring.Category
	}{
		{name: "three aces", face: 1, roll: scoring.Roll{1, 1, 1, 2, 3}, wantOK: true, wantPoints: 3, wantCat: scoring.Aces},
		{name: "five sixes", face: 6, roll: scoring.Roll{6, 6, 6, 6, 6}, wantOK: true, wantPoints: 30, wantCat: scoring.Sixes},
		{name: "single three", face: 3, roll: scoring.Roll{1, 2, 3, 4, 5}, wantOK: true, wantPoints: 3, wantCat: scoring.Threes},
		{name: "oversized roll", face: 2, roll: scoring.Roll{2, 2, 2, 2, 2, 2, 2}, wantOK: true, wantPoints: 14, wantCat: scoring.Twos},
		{name: "no matching face", face: 4, roll: scoring.Roll{1, 2, 3, 5, 6}},
		{name: "empty roll", face: 5, roll: scoring.Roll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := scoring.NumberRule(tt.face)
			require.NoError(t, err)

			score, ok := rule(tt.roll)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPoints, score.Points())
				assert.Equal(t, tt.wantCat, score.Category())
				assert.Equal(t, tt.roll, score.Roll())
			}
		})
	}
}

func TestNumberRule_InvalidFace(t *testing.T) {
	for _, face := range []int{-1, 0, 7, 100} {
		rule, err := scoring.NumberRule(face)

		assert.Nil(t, rule)
		assert.True(t, apperrors.IsInvalidArgument(err), "face %d", face)
	}
}

func TestOfAKindRule(t *testing.T) {
	tests := []struct {
		name       string
		category   scoring.Category
		n          int
		roll       scoring.Roll
		wantOK     bool
		wantPoints int
	}{
		{name: "three of a kind", category: scoring.ThreeOfAKind, n: 3, roll: scoring.Roll{2, 2, 2, 3, 4}, wantOK: true, wantPoints: 13},
		{name: "four also counts as three", category: scoring.ThreeOfAKind, n: 3, roll: scoring.Roll{4, 4, 4, 4, 2}, wantOK: true, wantPoints: 18},
		{name: "four of a kind", category: scoring.FourOfAKind, n: 4, roll: scoring.Roll{4, 4, 4, 4, 2}, wantOK: true, wantPoints: 18},
		{name: "five counts as three", category: scoring.ThreeOfAKind, n: 3, roll: scoring.Roll{5, 5, 5, 5, 5}, wantOK: true, wantPoints: 25},
		{name: "five counts as four", category: scoring.FourOfAKind, n: 4, roll: scoring.Roll{5, 5, 5, 5, 5}, wantOK: true, wantPoints: 25},
		{name: "five of a kind with n=5", category: scoring.FourOfAKind, n: 5, roll: scoring.Roll{1, 1, 1, 1, 1}, wantOK: true, wantPoints: 5},
		{name: "pair is not three", category: scoring.ThreeOfAKind, n: 3, roll: scoring.Roll{1, 1, 2, 3, 4}},
		{name: "three is not four", category: scoring.FourOfAKind, n: 4, roll: scoring.Roll{1, 2, 6, 1, 1}},
		{name: "empty roll", category: scoring.ThreeOfAKind, n: 3, roll: scoring.Roll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := scoring.OfAKindRule(tt.category, tt.n)
			require.NoError(t, err)

			score, ok := rule(tt.roll)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPoints, score.Points())
				assert.Equal(t, tt.category, score.Category())
			}
		})
	}
}

func TestOfAKindRule_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		category scoring.Category
		n        int
	}{
		{name: "n of zero", category: scoring.ThreeOfAKind, n: 0},
		{name: "n of six", category: scoring.FourOfAKind, n: 6},
		{name: "negative n", category: scoring.ThreeOfAKind, n: -2},
		{name: "not an of-a-kind category", category: scoring.Chance, n: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := scoring.OfAKindRule(tt.category, tt.n)

			assert.Nil(t, rule)
			assert.True(t, apperrors.IsInvalidArgument(err))
		})
	}
}

func TestScoreFullHouse(t *testing.T) {
	tests := []struct {
		name   string
		roll   scoring.Roll
		wantOK bool
	}{
		{name: "pair and triple", roll: scoring.Roll{2, 2, 3, 3, 3}, wantOK: true},
		{name: "unsorted", roll: scoring.Roll{6, 1, 6, 1, 1}, wantOK: true},
		{name: "five of a kind", roll: scoring.Roll{3, 3, 3, 3, 3}},
		{name: "two pair", roll: scoring.Roll{2, 2, 3, 3, 4}},
		{name: "four and one", roll: scoring.Roll{2, 2, 2, 2, 3}},
		{name: "straight", roll: scoring.Roll{1, 2, 3, 4, 5}},
		{name: "empty", roll: scoring.Roll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := scoring.ScoreFullHouse(tt.roll)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, scoring.FullHousePoints, score.Points())
				assert.Equal(t, scoring.FullHouse, score.Category())
			}
		})
	}
}

func TestScoreSmallStraight(t *testing.T) {
	tests := []struct {
		name   string
		roll   scoring.Roll
		wantOK bool
	}{
		{name: "low run", roll: scoring.Roll{1, 2, 3, 4, 6}, wantOK: true},
		{name: "run with duplicate", roll: scoring.Roll{1, 1, 2, 3, 4}, wantOK: true},
		{name: "high run", roll: scoring.Roll{3, 4, 5, 6, 6}, wantOK: true},
		{name: "middle run unsorted", roll: scoring.Roll{5, 3, 2, 4, 2}, wantOK: true},
		{name: "large straight", roll: scoring.Roll{2, 3, 4, 5, 6}, wantOK: true},
		{name: "run of four only", roll: scoring.Roll{1, 3, 4, 5, 6}, wantOK: true},
		{name: "gap", roll: scoring.Roll{1, 2, 3, 5, 6}},
		{name: "another gap", roll: scoring.Roll{1, 2, 4, 5, 6}},
		{name: "empty", roll: scoring.Roll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := scoring.ScoreSmallStraight(tt.roll)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, scoring.SmallStraightPoints, score.Points())
			}
		})
	}
}

func TestScoreLargeStraight(t *testing.T) {
	tests := []struct {
		name   string
		roll   scoring.Roll
		wantOK bool
	}{
		{name: "one to five", roll: scoring.Roll{1, 2, 3, 4, 5}, wantOK: true},
		{name: "two to six reversed", roll: scoring.Roll{6, 5, 4, 3, 2}, wantOK: true},
		{name: "extra duplicate die", roll: scoring.Roll{1, 2, 3, 4, 5, 5}, wantOK: true},
		{name: "duplicate instead of fifth face", roll: scoring.Roll{1, 2, 3, 4, 4}},
		{name: "all six faces", roll: scoring.Roll{1, 2, 3, 4, 5, 6}},
		{name: "gap", roll: scoring.Roll{1, 2, 3, 5, 6}},
		{name: "empty", roll: scoring.Roll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := scoring.ScoreLargeStraight(tt.roll)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, scoring.LargeStraightPoints, score.Points())
			}
		})
	}
}

func TestScoreYahtzee(t *testing.T) {
	tests := []struct {
		name   string
		roll   scoring.Roll
		wantOK bool
	}{
		{name: "five fours", roll: scoring.Roll{4, 4, 4, 4, 4}, wantOK: true},
		{name: "single die", roll: scoring.Roll{6}, wantOK: true},
		{name: "one off", roll: scoring.Roll{4, 4, 4, 4, 3}},
		{name: "empty", roll: scoring.Roll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := scoring.ScoreYahtzee(tt.roll)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, scoring.YahtzeePoints, score.Points())
			}
		})
	}
}

func TestScoreChance(t *testing.T) {
	score, ok := scoring.ScoreChance(scoring.Roll{})
	require.True(t, ok)
	assert.Equal(t, 0, score.Points())

	score, ok = scoring.ScoreChance(nil)
	require.True(t, ok)
	assert.Equal(t, 0, score.Points())

	score, ok = scoring.ScoreChance(scoring.Roll{3, 2, 1, 4, 5})
	require.True(t, ok)
	assert.Equal(t, 15, score.Points())
	assert.Equal(t, scoring.Chance, score.Category())
}

func TestScore_SnapshotsRoll(t *testing.T) {
	roll := scoring.Roll{1, 1, 1, 2, 3}
	score, ok := scoring.ScoreChance(roll)
	require.True(t, ok)

	roll[0] = 6
	got := score.Roll()
	got[1] = 6

	assert.Equal(t, scoring.Roll{1, 1, 1, 2, 3}, score.Roll())
	assert.Equal(t, 8, score.Points())
}

func TestRuleSet_CoversEveryCategoryInOrder(t *testing.T) {
	rules := scoring.RuleSet()
	require.Len(t, rules, len(scoring.Categories()))

	for i, cr := range rules {
		assert.Equal(t, scoring.Categories()[i], cr.Category)
		require.NotNil(t, cr.Rule)
	}

	// the table entry must score into its own category
	for _, cr := range rules {
		if score, ok := cr.Rule(scoring.Roll{1, 2, 3, 4, 5, 6}); ok {
			assert.Equal(t, cr.Category, score.Category())
		}
		if score, ok := cr.Rule(scoring.Roll{2, 2, 2, 2, 2}); ok {
			assert.Equal(t, cr.Category, score.Category())
		}
	}
}

func TestScoreFor(t *testing.T) {
	score, ok, err := scoring.ScoreFor(scoring.FullHouse, scoring.Roll{5, 5, 2, 2, 2})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 25, score.Points())

	_, ok, err = scoring.ScoreFor(scoring.LargeStraight, scoring.Roll{5, 5, 2, 2, 2})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = scoring.ScoreFor(scoring.Category(42), scoring.Roll{1})
	assert.True(t, apperrors.IsInvalidArgument(err))
}

// forEachRoll visits every five-die roll of six-sided dice
func forEachRoll(fn func(scoring.Roll)) {
	for a := 1; a <= 6; a++ {
		for b := 1; b <= 6; b++ {
			for c := 1; c <= 6; c++ {
				for d := 1; d <= 6; d++ {
					for e := 1; e <= 6; e++ {
						fn(scoring.Roll{a, b, c, d, e})
					}
				}
			}
		}
	}
}

func TestRules_HoldAcrossAllRolls(t *testing.T) {
	forEachRoll(func(roll scoring.Roll) {
		chance, ok := scoring.ScoreChance(roll)
		require.True(t, ok)
		assert.Equal(t, roll.Sum(), chance.Points())

		if _, large := scoring.ScoreLargeStraight(roll); large {
			_, small := scoring.ScoreSmallStraight(roll)
			assert.True(t, small, "large straight %v must also be a small straight", roll)
		}

		_, fullHouse := scoring.ScoreFullHouse(roll)
		yahtzee, isYahtzee := scoring.ScoreYahtzee(roll)
		assert.False(t, fullHouse && isYahtzee, "roll %v cannot be both full house and yahtzee", roll)

		if isYahtzee {
			assert.Equal(t, 50, yahtzee.Points())
			for _, category := range []scoring.Category{scoring.ThreeOfAKind, scoring.FourOfAKind} {
				score, ok, err := scoring.ScoreFor(category, roll)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, roll.Sum(), score.Points())
			}
		}
	})
}
