package scorecard

import (
	"context"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/KirkDiggler/yahtzee-scorer/internal/domain/scoring"
	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
	"github.com/KirkDiggler/yahtzee-scorer/internal/repositories/scorecards"
	"github.com/KirkDiggler/yahtzee-scorer/internal/uuid"
)

// Repository is an alias for the score card repository interface
type Repository = scorecards.Repository

// Service defines the score card service interface
type Service interface {
	// Create starts a new empty score card
	Create(ctx context.Context) (*scorecards.Card, error)

	// Get retrieves a card by ID
	Get(ctx context.Context, cardID string) (*scorecards.Card, error)

	// Delete removes a card
	Delete(ctx context.Context, cardID string) error

	// List returns every stored card
	List(ctx context.Context) ([]*scorecards.Card, error)

	// Candidates evaluates a roll and keeps only the categories still open on the card
	Candidates(ctx context.Context, cardID string, roll scoring.Roll) ([]scoring.Score, error)

	// Assign records a score on the card and persists it
	Assign(ctx context.Context, cardID string, score scoring.Score) (*scorecards.Card, error)

	// Total returns the card's total, persisting the upper bonus the first time it is earned
	Total(ctx context.Context, cardID string) (int, error)
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	evaluator     *scoring.Evaluator

	// read-modify-write cycles on a card run under the stripe its ID hashes to
	cardLocks [lockStripes]sync.Mutex
}

const lockStripes = 64

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository         // Required
	UUIDGenerator uuid.Generator     // Optional, will use default if nil
	Evaluator     *scoring.Evaluator // Optional, defaults to five dice minimum
}

// NewService creates a new score card service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		evaluator:     cfg.Evaluator,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.evaluator == nil {
		svc.evaluator = scoring.NewEvaluator(scoring.DefaultMinDice)
	}

	return svc
}

func (s *service) lockCard(cardID string) func() {
	lock := &s.cardLocks[xxhash.Sum64String(cardID)%lockStripes]
	lock.Lock()
	return lock.Unlock
}

// Create starts a new empty score card
func (s *service) Create(ctx context.Context) (*scorecards.Card, error) {
	card := &scorecards.Card{
		ID:        s.uuidGenerator.New(),
		ScoreCard: scoring.NewScoreCard(),
	}

	if err := s.repository.Create(ctx, card); err != nil {
		return nil, apperrors.Wrap(err, "failed to create score card").
			WithMeta("card_id", card.ID)
	}

	log.Debug().Str("card_id", card.ID).Msg("score card created")
	return card, nil
}

// Get retrieves a card by ID
func (s *service) Get(ctx context.Context, cardID string) (*scorecards.Card, error) {
	if strings.TrimSpace(cardID) == "" {
		return nil, apperrors.InvalidArgument("card ID is required")
	}

	card, err := s.repository.Get(ctx, cardID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get score card '%s'", cardID).
			WithMeta("card_id", cardID)
	}

	return card, nil
}

// Delete removes a card
func (s *service) Delete(ctx context.Context, cardID string) error {
	if strings.TrimSpace(cardID) == "" {
		return apperrors.InvalidArgument("card ID is required")
	}

	unlock := s.lockCard(cardID)
	defer unlock()

	if err := s.repository.Delete(ctx, cardID); err != nil {
		return apperrors.Wrapf(err, "failed to delete score card '%s'", cardID).
			WithMeta("card_id", cardID)
	}

	return nil
}

// List returns every stored card
func (s *service) List(ctx context.Context) ([]*scorecards.Card, error) {
	cards, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list score cards")
	}
	return cards, nil
}

// Candidates evaluates a roll and keeps only the categories still open on the card
func (s *service) Candidates(ctx context.Context, cardID string, roll scoring.Roll) ([]scoring.Score, error) {
	if err := roll.Validate(); err != nil {
		return nil, err
	}

	card, err := s.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}

	open := card.ScoreCard.AvailableCategories()
	candidates := lo.Filter(s.evaluator.Evaluate(roll), func(score scoring.Score, _ int) bool {
		return lo.Contains(open, score.Category())
	})

	log.Debug().
		Str("card_id", cardID).
		Ints("roll", roll).
		Int("candidates", len(candidates)).
		Msg("evaluated roll against card")

	return candidates, nil
}

// Assign records a score on the card and persists it. A category that is
// already filled fails with an already-exists error and the stored card is
// left untouched.
func (s *service) Assign(ctx context.Context, cardID string, score scoring.Score) (*scorecards.Card, error) {
	if strings.TrimSpace(cardID) == "" {
		return nil, apperrors.InvalidArgument("card ID is required")
	}
	if err := score.Roll().Validate(); err != nil {
		return nil, apperrors.Wrapf(err, "cannot assign %s", score.Category()).
			WithMeta("card_id", cardID)
	}

	unlock := s.lockCard(cardID)
	defer unlock()

	card, err := s.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}

	bonusesBefore := card.ScoreCard.YahtzeeBonusCount()
	if err := card.ScoreCard.Assign(score); err != nil {
		return nil, apperrors.Wrapf(err, "failed to assign %s", score.Category()).
			WithMeta("card_id", cardID)
	}

	if err := s.repository.Update(ctx, card); err != nil {
		return nil, apperrors.Wrapf(err, "failed to save score card '%s'", cardID).
			WithMeta("card_id", cardID)
	}

	event := log.Debug().
		Str("card_id", cardID).
		Stringer("category", score.Category()).
		Int("points", score.Points())
	if card.ScoreCard.YahtzeeBonusCount() > bonusesBefore {
		event = event.Int("yahtzee_bonus_count", card.ScoreCard.YahtzeeBonusCount())
	}
	event.Msg("score assigned")

	return card, nil
}

// Total returns the card's total, persisting the upper bonus the first time it is earned
func (s *service) Total(ctx context.Context, cardID string) (int, error) {
	if strings.TrimSpace(cardID) == "" {
		return 0, apperrors.InvalidArgument("card ID is required")
	}

	unlock := s.lockCard(cardID)
	defer unlock()

	card, err := s.Get(ctx, cardID)
	if err != nil {
		return 0, err
	}

	hadBonus := card.ScoreCard.UpperBonusAwarded()
	total := card.ScoreCard.TotalScore()

	if !hadBonus && card.ScoreCard.UpperBonusAwarded() {
		if err := s.repository.Update(ctx, card); err != nil {
			return 0, apperrors.Wrapf(err, "failed to save score card '%s'", cardID).
				WithMeta("card_id", cardID)
		}
		log.Debug().
			Str("card_id", cardID).
			Int("upper_section_total", card.ScoreCard.UpperSectionTotal()).
			Msg("upper section bonus awarded")
	}

	return total, nil
}
