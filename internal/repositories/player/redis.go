package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	highScoresKey   = "high_scores"

	// DefaultTopScoresLimit is used when no limit is given
	DefaultTopScoresLimit = 10
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}

// GetPlayer retrieves a player record by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerRecord, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var record models.PlayerRecord
	if err := json.Unmarshal([]byte(playerJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &record, nil
}

// RecordResult updates the record of every participant in one transaction
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || len(input.Participants) == 0 {
		return errors.New("input and participants cannot be empty")
	}

	records := make([]*models.PlayerRecord, 0, len(input.Participants))
	for _, p := range input.Participants {
		if p.PlayerID == "" {
			return errors.New("participant player ID cannot be empty")
		}

		record, err := r.GetPlayer(ctx, &GetPlayerInput{PlayerID: p.PlayerID})
		if err != nil {
			if !errors.Is(err, ErrPlayerNotFound) {
				return err
			}
			record = &models.PlayerRecord{ID: p.PlayerID}
		}

		if p.PlayerName != "" {
			record.Name = p.PlayerName
		}
		record.GamesPlayed++
		switch p.Outcome {
		case OutcomeWin:
			record.Wins++
		case OutcomeLoss:
			record.Losses++
		case OutcomeTie:
			record.Ties++
		default:
			return fmt.Errorf("unknown outcome %q for player %s", p.Outcome, p.PlayerID)
		}
		if p.Score > record.BestScore {
			record.BestScore = p.Score
		}
		record.LastPlayedAt = input.PlayedAt

		records = append(records, record)
	}

	pipe := r.client.TxPipeline()
	for _, record := range records {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}
		pipe.Set(ctx, playerKey(record.ID), recordJSON, 0)

		// One leaderboard entry per player holding their best score
		pipe.ZAdd(ctx, highScoresKey, redis.Z{
			Score:  float64(record.BestScore),
			Member: record.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetTopScores reads the high score set and the matching player records
func (r *redisRepository) GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error) {
	limit := DefaultTopScoresLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, highScoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get high scores: %w", err)
	}

	if len(entries) == 0 {
		return &GetTopScoresOutput{
			Scores: []*TopScore{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(entries))
	for i, entry := range entries {
		commands[i] = pipe.Get(ctx, playerKey(fmt.Sprint(entry.Member)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	scores := make([]*TopScore, 0, len(entries))
	for i, entry := range entries {
		playerJSON, err := commands[i].Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record was removed after the score was written
				continue
			}
			return nil, fmt.Errorf("failed to get player %v: %w", entry.Member, err)
		}

		var record models.PlayerRecord
		if err := json.Unmarshal([]byte(playerJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %v: %w", entry.Member, err)
		}

		scores = append(scores, &TopScore{
			Record: &record,
			Score:  int(entry.Score),
		})
	}

	return &GetTopScoresOutput{
		Scores: scores,
	}, nil
}
