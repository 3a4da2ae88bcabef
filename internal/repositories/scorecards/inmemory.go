package scorecards

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	cards        map[string]*Card
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory score card repository.
// A nil timeProvider uses the system clock.
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = systemClock{}
	}

	return &inMemoryRepository{
		cards:        make(map[string]*Card),
		timeProvider: timeProvider,
	}
}

func copyCard(card *Card) *Card {
	return &Card{
		ID:        card.ID,
		ScoreCard: card.ScoreCard.Clone(),
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

// Create stores a new card and stamps its timestamps
func (r *inMemoryRepository) Create(ctx context.Context, card *Card) error {
	if err := validateCard(card); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[card.ID]; exists {
		return apperrors.AlreadyExistsf("score card with ID %s already exists", card.ID)
	}

	now := r.timeProvider.Now()
	card.CreatedAt = now
	card.UpdatedAt = now

	// Store a copy to avoid external modifications
	r.cards[card.ID] = copyCard(card)
	return nil
}

// Get retrieves a card by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, exists := r.cards[id]
	if !exists {
		return nil, apperrors.NotFoundf("score card not found: %s", id)
	}

	return copyCard(card), nil
}

// Update replaces an existing card
func (r *inMemoryRepository) Update(ctx context.Context, card *Card) error {
	if err := validateCard(card); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.cards[card.ID]
	if !exists {
		return apperrors.NotFoundf("score card not found: %s", card.ID)
	}

	card.CreatedAt = existing.CreatedAt
	card.UpdatedAt = r.timeProvider.Now()
	r.cards[card.ID] = copyCard(card)
	return nil
}

// Delete removes a card
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[id]; !exists {
		return apperrors.NotFoundf("score card not found: %s", id)
	}

	delete(r.cards, id)
	return nil
}

// List returns every card, oldest first
func (r *inMemoryRepository) List(ctx context.Context) ([]*Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]*Card, 0, len(r.cards))
	for _, card := range r.cards {
		cards = append(cards, copyCard(card))
	}

	sort.Slice(cards, func(i, j int) bool {
		if cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].ID < cards[j].ID
		}
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
	return cards, nil
}
