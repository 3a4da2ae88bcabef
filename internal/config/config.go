package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	Scoring  ScoringConfig `envPrefix:"SCORING_"`
	Redis    RedisConfig   `envPrefix:"REDIS_"`
}

// ScoringConfig holds evaluator and dice configuration
type ScoringConfig struct {
	MinDice   int `env:"MIN_DICE" envDefault:"5"`
	DiceCount int `env:"DICE_COUNT" envDefault:"5"`
	DieFaces  int `env:"DIE_FACES" envDefault:"6"`
	// Seed of zero rolls from the process-wide random source
	Seed uint64 `env:"SEED" envDefault:"0"`
}

// RedisConfig holds Redis-specific configuration.
// An empty URL keeps score cards in memory.
type RedisConfig struct {
	URL     string        `env:"URL"`
	CardTTL time.Duration `env:"CARD_TTL" envDefault:"168h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges the environment parser cannot express
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.InvalidArgumentf("LOG_LEVEL %q is not a log level", c.LogLevel)
	}
	if c.Scoring.MinDice < 0 {
		return apperrors.InvalidArgumentf("SCORING_MIN_DICE must not be negative, got %d", c.Scoring.MinDice)
	}
	if c.Scoring.DiceCount < 1 {
		return apperrors.InvalidArgumentf("SCORING_DICE_COUNT must be positive, got %d", c.Scoring.DiceCount)
	}
	if c.Scoring.DieFaces != 6 {
		// every scoring rule assumes a six sided die
		return apperrors.InvalidArgumentf("SCORING_DIE_FACES must be 6, got %d", c.Scoring.DieFaces)
	}
	return nil
}

// Level returns the configured zerolog level
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
