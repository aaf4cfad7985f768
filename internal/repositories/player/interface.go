package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicegame/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/dicegame/internal/models"
)

// Repository defines the interface for player record persistence
type Repository interface {
	// GetPlayer retrieves a player's record by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerRecord, error)

	// RecordResult applies a finished match to every participant's record
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetTopScores returns the best final scores, highest first
	GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error)
}
