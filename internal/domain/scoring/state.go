package scoring

import (
	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// CardState is the plain, encodable snapshot of a ScoreCard
type CardState struct {
	Scores            []Record `json:"scores"`
	UpperBonusAwarded bool     `json:"upper_bonus_awarded"`
	YahtzeeBonusCount int      `json:"yahtzee_bonus_count"`
}

// State snapshots the card; scores are listed in category order
func (sc *ScoreCard) State() CardState {
	state := CardState{
		Scores:            []Record{},
		UpperBonusAwarded: sc.upperBonusAwarded,
		YahtzeeBonusCount: sc.yahtzeeBonusCount,
	}
	for _, c := range Categories() {
		if s := sc.assignments[c]; s != nil {
			state.Scores = append(state.Scores, s.Record())
		}
	}
	return state
}

// RestoreScoreCard rebuilds a card from a snapshot. Bonus counters are taken
// as stored; assignment-time bonus logic does not run again.
func RestoreScoreCard(state CardState) (*ScoreCard, error) {
	if state.YahtzeeBonusCount < 0 {
		return nil, apperrors.InvalidArgumentf("yahtzee bonus count cannot be negative: %d", state.YahtzeeBonusCount)
	}

	sc := NewScoreCard()
	for _, r := range state.Scores {
		score, err := ScoreFromRecord(r)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to restore score card")
		}
		if sc.assignments[score.Category()] != nil {
			return nil, apperrors.InvalidArgumentf("score card state has %s more than once", score.Category()).
				WithMeta("category", score.Category().String())
		}
		stored := score
		sc.assignments[score.Category()] = &stored
	}

	sc.upperBonusAwarded = state.UpperBonusAwarded
	sc.yahtzeeBonusCount = state.YahtzeeBonusCount
	return sc, nil
}

// Clone returns an independent copy of the card
func (sc *ScoreCard) Clone() *ScoreCard {
	clone := NewScoreCard()
	for c, s := range sc.assignments {
		if s != nil {
			stored := *s
			clone.assignments[c] = &stored
		}
	}
	clone.upperBonusAwarded = sc.upperBonusAwarded
	clone.yahtzeeBonusCount = sc.yahtzeeBonusCount
	return clone
}
