package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/dicegame/internal/common/clock"
	"github.com/KirkDiggler/dicegame/internal/common/logger"
	uuidGen "github.com/KirkDiggler/dicegame/internal/common/uuid"
	"github.com/KirkDiggler/dicegame/internal/config"
	"github.com/KirkDiggler/dicegame/internal/dice"
	"github.com/KirkDiggler/dicegame/internal/handlers/discord"
	matchRepo "github.com/KirkDiggler/dicegame/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/dicegame/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/dicegame/internal/repositories/score_ledger"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	"github.com/KirkDiggler/dicegame/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dicegame: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.MatchTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create match repository: %w", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.MatchTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create score ledger repository: %w", err)
	}

	logActiveMatches(ctx, log, matches)

	// Initialize services
	matchSvc, err := matchService.New(&matchService.Config{
		RollBudget:      cfg.RollBudget,
		MatchRepo:       matches,
		PlayerRepo:      players,
		ScoreLedgerRepo: ledger,
		DiceRoller:      dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:           clock.New(),
		UUIDGenerator:   uuidGen.New(),
		Logger:          &log,
	})
	if err != nil {
		return fmt.Errorf("failed to create match service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:              cfg.DiscordToken,
		ApplicationID:      cfg.ApplicationID,
		GuildID:            cfg.GuildID,
		InteractionTimeout: cfg.InteractionTimeout,
		MatchService:       matchSvc,
		MessagingService:   messagingSvc,
		Logger:             &log,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sc
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
	return nil
}

// logActiveMatches reports matches left running by a previous process.
// Their boards still work because every button carries the match ID.
func logActiveMatches(ctx context.Context, log zerolog.Logger, repo matchRepo.Repository) {
	output, err := repo.GetActiveMatches(ctx, &matchRepo.GetActiveMatchesInput{})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list active matches")
		return
	}

	for _, m := range output.Matches {
		log.Debug().Str("match_id", m.ID).Str("channel_id", m.ChannelID).Msg("Active match")
	}
	log.Info().Int("count", len(output.Matches)).Msg("Active matches found")
}
