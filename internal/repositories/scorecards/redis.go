package scorecards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

const (
	// Key patterns
	cardKeyPrefix = "scorecard:"
	cardIndexKey  = "scorecards"

	// TTL for cards (7 days)
	defaultCardTTL = 7 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	// CardTTL of zero uses the 7 day default; a negative value disables expiry
	CardTTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a new Redis-backed score card repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.CardTTL
	switch {
	case ttl == 0:
		ttl = defaultCardTTL
	case ttl < 0:
		ttl = 0
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = systemClock{}
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

func cardKey(id string) string {
	return cardKeyPrefix + id
}

func (r *redisRepository) marshal(card *Card) ([]byte, error) {
	data, err := json.Marshal(toData(card))
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to serialize score card")
	}
	return data, nil
}

// Create stores a new card; SETNX keeps an existing card untouched
func (r *redisRepository) Create(ctx context.Context, card *Card) error {
	if err := validateCard(card); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	card.CreatedAt = now
	card.UpdatedAt = now

	data, err := r.marshal(card)
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, cardKey(card.ID), string(data), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create score card: %w", err)
	}
	if !created {
		return apperrors.AlreadyExistsf("score card with ID %s already exists", card.ID)
	}

	if err := r.client.SAdd(ctx, cardIndexKey, card.ID).Err(); err != nil {
		return fmt.Errorf("failed to index score card %s: %w", card.ID, err)
	}

	return nil
}

// Get retrieves a card by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*Card, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("score card ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, cardKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("score card not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get score card: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to deserialize score card")
	}

	return fromData(&data)
}

// Update replaces an existing card; SETXX refuses to resurrect a missing one
func (r *redisRepository) Update(ctx context.Context, card *Card) error {
	if err := validateCard(card); err != nil {
		return err
	}

	card.UpdatedAt = r.timeProvider.Now()

	data, err := r.marshal(card)
	if err != nil {
		return err
	}

	updated, err := r.client.SetXX(ctx, cardKey(card.ID), string(data), r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update score card: %w", err)
	}
	if !updated {
		return apperrors.NotFoundf("score card not found: %s", card.ID)
	}

	return nil
}

// Delete removes a card and its index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("score card ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, cardKey(id))
	pipe.SRem(ctx, cardIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete score card: %w", err)
	}

	if del.Val() == 0 {
		return apperrors.NotFoundf("score card not found: %s", id)
	}

	return nil
}

// List fetches every indexed card concurrently. Index entries whose card has
// expired are skipped.
func (r *redisRepository) List(ctx context.Context) ([]*Card, error) {
	ids, err := r.client.SMembers(ctx, cardIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list score cards: %w", err)
	}

	found := make([]*Card, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			card, err := r.Get(gctx, id)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get score card %s: %w", id, err)
			}
			found[i] = card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cards := make([]*Card, 0, len(found))
	for _, card := range found {
		if card != nil {
			cards = append(cards, card)
		}
	}
	return cards, nil
}
