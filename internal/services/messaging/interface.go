package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicegame/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns a message for a player's roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetScoreMessage returns a message for a scored category
	GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error)

	// GetGameOverMessage returns the end of match announcement
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
