package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicegame/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/dicegame/internal/models"
)

// Repository defines the interface for match data persistence
type Repository interface {
	// SaveMatch persists a match
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchByChannel retrieves the current match of a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// GetActiveMatches retrieves all matches that are still being played
	GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error)
}
