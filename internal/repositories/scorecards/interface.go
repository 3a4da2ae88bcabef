package scorecards

import (
	"context"
	"time"

	"github.com/KirkDiggler/yahtzee-scorer/internal/domain/scoring"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/yahtzee-scorer/internal/repositories/scorecards Repository,TimeProvider

// Card is a stored score card
type Card struct {
	ID        string
	ScoreCard *scoring.ScoreCard
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines the interface for score card storage operations
type Repository interface {
	// Create stores a new card; an existing ID is an already-exists error
	Create(ctx context.Context, card *Card) error
	// Get returns a not-found error for unknown IDs
	Get(ctx context.Context, id string) (*Card, error)
	// Update replaces an existing card; unknown IDs are not-found errors
	Update(ctx context.Context, card *Card) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Card, error)
}

// TimeProvider supplies timestamps for stored cards
type TimeProvider interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
