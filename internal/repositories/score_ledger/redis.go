package score_ledger

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
	recordKeyPrefix      = "score_record:"
	matchScoresKeyPrefix = "match_scores:"
)

// Config holds configuration for the Redis score ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires ledger keys after the last write; zero keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed score ledger repository
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

func recordKey(recordID string) string {
	return fmt.Sprintf("%s%s", recordKeyPrefix, recordID)
}

func matchScoresKey(matchID string) string {
	return fmt.Sprintf("%s%s", matchScoresKeyPrefix, matchID)
}

// AddRecord adds a score record to the ledger
func (r *redisRepository) AddRecord(ctx context.Context, input *AddRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("score record ID cannot be empty")
	}

	if record.MatchID == "" {
		return errors.New("score record match ID cannot be empty")
	}

	if !record.Category.IsValid() {
		return fmt.Errorf("invalid category %d", record.Category)
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, recordKey(record.ID), recordJSON, r.ttl)

	// Milliseconds keep two scores in the same second in order
	scoresKey := matchScoresKey(record.MatchID)
	pipe.ZAdd(ctx, scoresKey, redis.Z{
		Score:  float64(record.Timestamp.UnixMilli()),
		Member: record.ID,
	})
	if r.ttl > 0 {
		pipe.Expire(ctx, scoresKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add score record: %w", err)
	}

	return nil
}

// GetRecordsForMatch retrieves every score record written in a match
func (r *redisRepository) GetRecordsForMatch(ctx context.Context, input *GetRecordsForMatchInput) (*GetRecordsForMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	recordIDs, err := r.client.ZRange(ctx, matchScoresKey(input.MatchID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score record IDs for match: %w", err)
	}

	if len(recordIDs) == 0 {
		return &GetRecordsForMatchOutput{
			Records: []*models.ScoreRecord{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(recordIDs))
	for i, recordID := range recordIDs {
		commands[i] = pipe.Get(ctx, recordKey(recordID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.ScoreRecord, 0, len(recordIDs))
	for i, recordID := range recordIDs {
		recordJSON, err := commands[i].Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record expired between reading the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get score record %s: %w", recordID, err)
		}

		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score record %s: %w", recordID, err)
		}

		records = append(records, &record)
	}

	return &GetRecordsForMatchOutput{
		Records: records,
	}, nil
}

// DeleteRecordsForMatch removes a match's ledger and the records in it
func (r *redisRepository) DeleteRecordsForMatch(ctx context.Context, input *DeleteRecordsForMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	scoresKey := matchScoresKey(input.MatchID)
	recordIDs, err := r.client.ZRange(ctx, scoresKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get score record IDs for match: %w", err)
	}

	keys := make([]string, 0, len(recordIDs)+1)
	for _, recordID := range recordIDs {
		keys = append(keys, recordKey(recordID))
	}
	keys = append(keys, scoresKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete score records: %w", err)
	}

	return nil
}
