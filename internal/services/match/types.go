package match

import (
	"github.com/KirkDiggler/dicegame/internal/common/clock"
	"github.com/KirkDiggler/dicegame/internal/common/uuid"
	"github.com/KirkDiggler/dicegame/internal/dice"
	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	matchRepo "github.com/KirkDiggler/dicegame/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/dicegame/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/dicegame/internal/repositories/score_ledger"
	"github.com/rs/zerolog"
)

// Config holds configuration for the match service
type Config struct {
	// RollBudget is each player's starting roll budget; 0 means the default
	RollBudget int

	// Repository dependencies
	MatchRepo       matchRepo.Repository
	PlayerRepo      playerRepo.Repository
	ScoreLedgerRepo ledgerRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; nil disables logging
	Logger *zerolog.Logger
}

// PlayerInput identifies a player joining a match
type PlayerInput struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string
}

// CreateMatchInput contains parameters for creating a new match
type CreateMatchInput struct {
	// ChannelID is the Discord channel ID where the match is being played
	ChannelID string

	// Players are the two players in turn order
	Players [2]PlayerInput
}

// CreateMatchOutput contains the result of creating a new match
type CreateMatchOutput struct {
	Match    *models.Match
	Snapshot *engine.Snapshot
}

// GetMatchInput defines the input for retrieving a match by ID
type GetMatchInput struct {
	MatchID string
}

// GetMatchByChannelInput defines the input for retrieving a match by channel ID
type GetMatchByChannelInput struct {
	ChannelID string
}

// GetMatchOutput contains a match and its board
type GetMatchOutput struct {
	Match    *models.Match
	Snapshot *engine.Snapshot
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// PlayerID is the Discord user ID of the player rolling
	PlayerID string
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	Match    *models.Match
	Snapshot *engine.Snapshot
	Roll     *engine.RollResult

	// PlayerName is the display name of the player who rolled
	PlayerName string

	// MustScore is true when no reroll is possible and a category must be chosen
	MustScore bool
}

// ToggleHoldInput contains parameters for holding or releasing a die
type ToggleHoldInput struct {
	MatchID  string
	PlayerID string

	// DieIndex is the position of the die, 0..4
	DieIndex int
}

// ToggleHoldOutput contains the board after the hold changed
type ToggleHoldOutput struct {
	Match    *models.Match
	Snapshot *engine.Snapshot

	// Held is the new state of the die
	Held bool
}

// ChooseCategoryInput contains parameters for scoring a category
type ChooseCategoryInput struct {
	MatchID  string
	PlayerID string
	Category models.Category
}

// ChooseCategoryOutput contains the result of scoring a category
type ChooseCategoryOutput struct {
	Match    *models.Match
	Snapshot *engine.Snapshot
	Score    *engine.ScoreResult

	// NextPlayerName is who rolls next; empty once the match is over
	NextPlayerName string
}

// GetPotentialScoresInput contains parameters for previewing scores
type GetPotentialScoresInput struct {
	MatchID string
}

// GetPotentialScoresOutput contains the score every unfilled category would give
type GetPotentialScoresOutput struct {
	PlayerName string
	Dice       [models.DiceCount]int
	Scores     map[models.Category]int
}

// GetHistoryInput contains parameters for reading a match's score log
type GetHistoryInput struct {
	MatchID string
}

// GetHistoryOutput contains a match's score log, oldest first
type GetHistoryOutput struct {
	Records []*models.ScoreRecord
}

// AbandonMatchInput contains parameters for abandoning a channel's match
type AbandonMatchInput struct {
	// ChannelID is the channel whose match is abandoned
	ChannelID string

	// PlayerID is the player asking; only seated players may abandon
	PlayerID string
}

// AbandonMatchOutput contains the result of abandoning a match
type AbandonMatchOutput struct {
	MatchID string
}

// UpdateMatchMessageInput contains parameters for updating a match's message ID
type UpdateMatchMessageInput struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// MessageID is the Discord message ID to associate with the match
	MessageID string
}

// UpdateMatchMessageOutput contains the result of updating a match's message ID
type UpdateMatchMessageOutput struct {
	// Success indicates if the message ID was successfully updated
	Success bool
}

// GetLeaderboardInput defines the input for retrieving the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries; zero uses the repository default
	Limit int
}

// LeaderboardEntry represents a single entry in the leaderboard
type LeaderboardEntry struct {
	PlayerID    string
	PlayerName  string
	BestScore   int
	GamesPlayed int
	Wins        int
	Losses      int
	Ties        int
}

// GetLeaderboardOutput defines the output for retrieving the leaderboard
type GetLeaderboardOutput struct {
	Entries []LeaderboardEntry
}
