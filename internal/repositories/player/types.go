package player

import (
	"time"

	"github.com/KirkDiggler/dicegame/internal/models"
)

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// Outcome is how a single player finished a match
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

// Participant is one player's line in a finished match
type Participant struct {
	PlayerID   string
	PlayerName string
	Score      int
	Outcome    Outcome
}

// RecordResultInput contains parameters for recording a finished match
type RecordResultInput struct {
	MatchID      string
	Participants []Participant
	PlayedAt     time.Time
}

// GetTopScoresInput contains parameters for reading the leaderboard
type GetTopScoresInput struct {
	// Limit caps the number of entries; zero means DefaultTopScoresLimit
	Limit int
}

// TopScore is one leaderboard entry
type TopScore struct {
	Record *models.PlayerRecord
	Score  int
}

// GetTopScoresOutput contains the leaderboard
type GetTopScoresOutput struct {
	Scores []*TopScore
}
