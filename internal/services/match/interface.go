package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicegame/internal/services/match Service

import "context"

// Service defines the interface for match operations
type Service interface {
	// CreateMatch starts a two-player match in a channel
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// GetMatchByChannel retrieves the latest match of a channel
	GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchOutput, error)

	// RollDice rolls for the current player
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ToggleHold keeps or releases a die for the next reroll
	ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error)

	// ChooseCategory scores the current dice and passes the turn
	ChooseCategory(ctx context.Context, input *ChooseCategoryInput) (*ChooseCategoryOutput, error)

	// GetPotentialScores previews every category for the current dice
	GetPotentialScores(ctx context.Context, input *GetPotentialScoresInput) (*GetPotentialScoresOutput, error)

	// GetHistory returns the scored categories of a match in order
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// AbandonMatch throws away the running match of a channel
	AbandonMatch(ctx context.Context, input *AbandonMatchInput) (*AbandonMatchOutput, error)

	// UpdateMatchMessage remembers the message showing the board
	UpdateMatchMessage(ctx context.Context, input *UpdateMatchMessageInput) (*UpdateMatchMessageOutput, error)

	// GetLeaderboard returns the best final scores across matches
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
