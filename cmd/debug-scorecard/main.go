package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/yahtzee-scorer/internal/config"
	"github.com/KirkDiggler/yahtzee-scorer/internal/dice"
	"github.com/KirkDiggler/yahtzee-scorer/internal/domain/scoring"
	"github.com/KirkDiggler/yahtzee-scorer/internal/repositories/scorecards"
	"github.com/KirkDiggler/yahtzee-scorer/internal/services/scorecard"
)

func main() {
	var (
		rollFlag   = flag.String("roll", "", "comma separated dice to evaluate, e.g. 2,2,5,5,5 (rolls fresh dice when empty)")
		rerollFlag = flag.String("reroll", "", "comma separated dice indices to reroll after the initial roll")
		cardID     = flag.String("card", "", "score card ID to evaluate against")
		newCard    = flag.Bool("new", false, "create a new score card")
		assign     = flag.String("assign", "", "category to assign the roll to, e.g. \"Full House\"")
		list       = flag.Bool("list", false, "list stored score cards")
		remove     = flag.Bool("delete", false, "delete the card given by -card")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx := context.Background()

	repo, closeRepo := newRepository(ctx, cfg)
	defer closeRepo()

	svc := scorecard.NewService(&scorecard.ServiceConfig{
		Repository: repo,
		Evaluator:  scoring.NewEvaluator(cfg.Scoring.MinDice),
	})

	if *list {
		cards, err := svc.List(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to list score cards")
		}
		for _, card := range cards {
			fmt.Printf("%s  total=%d  open=%d  updated=%s\n",
				card.ID, card.ScoreCard.TotalScore(), len(card.ScoreCard.AvailableCategories()),
				card.UpdatedAt.Format(time.RFC3339))
		}
		return
	}

	if *remove {
		if err := svc.Delete(ctx, *cardID); err != nil {
			log.Fatal().Err(err).Str("card_id", *cardID).Msg("Failed to delete score card")
		}
		fmt.Printf("Deleted %s\n", *cardID)
		return
	}

	if *newCard {
		card, err := svc.Create(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create score card")
		}
		*cardID = card.ID
		fmt.Printf("Created score card %s\n", card.ID)
	}

	roll, err := resolveRoll(cfg, *rollFlag, *rerollFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dice")
	}
	fmt.Printf("Roll: %v\n", roll)

	if *cardID == "" {
		printScores(scoring.NewEvaluator(cfg.Scoring.MinDice).Evaluate(roll))
		return
	}

	candidates, err := svc.Candidates(ctx, *cardID, roll)
	if err != nil {
		log.Fatal().Err(err).Str("card_id", *cardID).Msg("Failed to evaluate roll")
	}
	printScores(candidates)

	if *assign != "" {
		category, err := scoring.ParseCategory(*assign)
		if err != nil {
			log.Fatal().Err(err).Msg("Unknown category")
		}

		score, ok, err := scoring.ScoreFor(category, roll)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to score roll")
		}
		if !ok {
			log.Fatal().Stringer("category", category).Ints("roll", roll).Msg("Roll does not qualify for category")
		}

		if _, err := svc.Assign(ctx, *cardID, score); err != nil {
			log.Fatal().Err(err).Str("card_id", *cardID).Msg("Failed to assign score")
		}
		fmt.Printf("Assigned %s\n", score)
	}

	printCard(ctx, svc, *cardID)
}

func newRepository(ctx context.Context, cfg *config.Config) (scorecards.Repository, func()) {
	if cfg.Redis.URL == "" {
		log.Info().Msg("No REDIS_URL found, using in-memory repository")
		return scorecards.NewInMemoryRepository(nil), func() {}
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse Redis URL")
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	log.Info().Str("addr", opts.Addr).Msg("Using Redis for persistence")

	repo := scorecards.NewRedisRepository(&scorecards.RedisRepoConfig{
		Client:  client,
		CardTTL: cfg.Redis.CardTTL,
	})
	return repo, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}
}

func resolveRoll(cfg *config.Config, rollFlag, rerollFlag string) (scoring.Roll, error) {
	if rollFlag != "" {
		values, err := parseInts(rollFlag)
		if err != nil {
			return nil, fmt.Errorf("parse -roll: %w", err)
		}
		roll := scoring.Roll(values)
		if err := roll.Validate(); err != nil {
			return nil, err
		}
		return roll, nil
	}

	roller := dice.NewRandomRoller()
	if cfg.Scoring.Seed > 0 {
		roller = dice.NewSeededRoller(cfg.Scoring.Seed)
	}

	hand, err := roller.Roll(cfg.Scoring.DiceCount, cfg.Scoring.DieFaces)
	if err != nil {
		return nil, err
	}

	if rerollFlag != "" {
		indices, err := parseInts(rerollFlag)
		if err != nil {
			return nil, fmt.Errorf("parse -reroll: %w", err)
		}
		fmt.Printf("Rolled: %v, rerolling %v\n", hand, indices)
		hand, err = roller.Reroll(hand, indices, cfg.Scoring.DieFaces)
		if err != nil {
			return nil, err
		}
	}

	return scoring.Roll(hand), nil
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func printScores(scores []scoring.Score) {
	if len(scores) == 0 {
		fmt.Println("No scoring categories")
		return
	}
	fmt.Println("Scoring categories:")
	for _, score := range scores {
		fmt.Printf("  %-16s %3d\n", score.Category(), score.Points())
	}
}

func printCard(ctx context.Context, svc scorecard.Service, cardID string) {
	total, err := svc.Total(ctx, cardID)
	if err != nil {
		log.Fatal().Err(err).Str("card_id", cardID).Msg("Failed to total score card")
	}
	card, err := svc.Get(ctx, cardID)
	if err != nil {
		log.Fatal().Err(err).Str("card_id", cardID).Msg("Failed to get score card")
	}

	fmt.Printf("\nScore card %s\n", card.ID)
	for _, category := range scoring.Categories() {
		if score, ok := card.ScoreCard.Score(category); ok {
			fmt.Printf("  %-16s %3d  %v\n", category, score.Points(), score.Roll())
		} else {
			fmt.Printf("  %-16s   -\n", category)
		}
	}
	fmt.Printf("  Upper section    %3d (bonus: %t)\n", card.ScoreCard.UpperSectionTotal(), card.ScoreCard.UpperBonusAwarded())
	fmt.Printf("  Yahtzee bonuses  %3d\n", card.ScoreCard.YahtzeeBonusCount())
	fmt.Printf("  Total            %3d\n", total)
}
