package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	channelKeyPrefix = "channel_match:"
	activeMatchesKey = "active_matches"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires match keys after the last save; zero keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL < 0 {
		return nil, errors.New("ttl cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func matchKey(matchID string) string {
	return fmt.Sprintf("%s%s", matchKeyPrefix, matchID)
}

func channelKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelKeyPrefix, channelID)
}

// SaveMatch persists a match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, matchKey(input.Match.ID), matchJSON, r.ttl)

	// The channel always points at its latest match, finished or not, so the
	// final board can still be shown
	if input.Match.ChannelID != "" {
		pipe.Set(ctx, channelKey(input.Match.ChannelID), input.Match.ID, r.ttl)
	}

	if input.Match.Phase.IsGameOver() {
		pipe.SRem(ctx, activeMatchesKey, input.Match.ID)
	} else {
		pipe.SAdd(ctx, activeMatchesKey, input.Match.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKey(input.MatchID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetMatchByChannel retrieves the current match of a channel from Redis
func (r *redisRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match ID for channel: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// DeleteMatch removes a match from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	// Get the match first to get its channel ID
	match, err := r.GetMatch(ctx, &GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, matchKey(input.MatchID))
	pipe.SRem(ctx, activeMatchesKey, input.MatchID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	// Only clear the channel pointer if a newer match has not replaced it
	if match.ChannelID != "" {
		current, err := r.client.Get(ctx, channelKey(match.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read channel mapping: %w", err)
		}
		if current == input.MatchID {
			if err := r.client.Del(ctx, channelKey(match.ChannelID)).Err(); err != nil {
				return fmt.Errorf("failed to delete channel mapping: %w", err)
			}
		}
	}

	return nil
}

// GetActiveMatches retrieves all active matches from Redis
func (r *redisRepository) GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error) {
	matchIDs, err := r.client.SMembers(ctx, activeMatchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &GetActiveMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	pipe := r.client.Pipeline()
	matchCommands := make(map[string]*redis.StringCmd, len(matchIDs))
	for _, matchID := range matchIDs {
		matchCommands[matchID] = pipe.Get(ctx, matchKey(matchID))
	}

	// redis.Nil from an expired match is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for matchID, cmd := range matchCommands {
		matchJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Match expired after its ID was read
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
		}

		var match models.Match
		if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
		}

		matches = append(matches, &match)
	}

	return &GetActiveMatchesOutput{
		Matches: matches,
	}, nil
}
