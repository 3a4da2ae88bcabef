package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/yahtzee-scorer/internal/domain/scoring"
)

// MustScore scores roll for category and fails the test if it does not qualify
func MustScore(t testing.TB, category scoring.Category, roll scoring.Roll) scoring.Score {
	t.Helper()
	score, ok, err := scoring.ScoreFor(category, roll)
	require.NoError(t, err)
	require.True(t, ok, "%v does not qualify for %s", roll, category)
	return score
}

// CreateTestScoreCard builds a card with a Yahtzee and one bonus already earned:
// Yahtzee 50, Chance 30, one 100 point bonus.
func CreateTestScoreCard(t testing.TB) *scoring.ScoreCard {
	t.Helper()
	card := scoring.NewScoreCard()
	require.NoError(t, card.Assign(MustScore(t, scoring.Yahtzee, scoring.Roll{5, 5, 5, 5, 5})))
	require.NoError(t, card.Assign(MustScore(t, scoring.Chance, scoring.Roll{6, 6, 6, 6, 6})))
	return card
}

// CreateUpperSectionCard fills Aces through Sixes with three of each face,
// reaching the 63 point threshold exactly
func CreateUpperSectionCard(t testing.TB) *scoring.ScoreCard {
	t.Helper()
	card := scoring.NewScoreCard()
	for face, category := range scoring.UpperCategories() {
		die := face + 1
		other := die%6 + 1
		roll := scoring.Roll{die, die, die, other, other}
		require.NoError(t, card.Assign(MustScore(t, category, roll)))
	}
	return card
}
