package scorecards

import (
	"time"

	"github.com/KirkDiggler/yahtzee-scorer/internal/domain/scoring"
	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Data is the persisted shape of a Card
type Data struct {
	ID        string            `json:"id"`
	State     scoring.CardState `json:"state"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func validateCard(card *Card) error {
	if card == nil {
		return apperrors.InvalidArgument("score card cannot be nil")
	}
	if card.ID == "" {
		return apperrors.InvalidArgument("score card ID cannot be empty")
	}
	if card.ScoreCard == nil {
		return apperrors.InvalidArgumentf("score card %s has no scores", card.ID)
	}
	return nil
}

func toData(card *Card) *Data {
	if card == nil {
		return nil
	}

	return &Data{
		ID:        card.ID,
		State:     card.ScoreCard.State(),
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

func fromData(data *Data) (*Card, error) {
	if data == nil {
		return nil, nil
	}

	sc, err := scoring.RestoreScoreCard(data.State)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "stored score card "+data.ID+" is corrupt")
	}

	return &Card{
		ID:        data.ID,
		ScoreCard: sc,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
