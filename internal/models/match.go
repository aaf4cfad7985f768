package models

import (
	"time"
)

// DiceCount is the number of dice in play
const DiceCount = 5

// MaxRollsPerTurn is the number of rolls (first roll included) a turn allows
const MaxRollsPerTurn = 3

// Phase represents where the current turn is in the turn state machine
type Phase string

const (
	// PhaseAwaitingFirstRoll indicates a turn has started and no dice are showing
	PhaseAwaitingFirstRoll Phase = "awaiting_first_roll"

	// PhaseAwaitingRerollOrScore indicates dice are showing and a reroll is still possible
	PhaseAwaitingRerollOrScore Phase = "awaiting_reroll_or_score"

	// PhaseAwaitingScore indicates rerolls are exhausted and a category must be chosen
	PhaseAwaitingScore Phase = "awaiting_score"

	// PhaseGameOver indicates both scorecards are complete
	PhaseGameOver Phase = "game_over"
)

// IsGameOver returns true if the match has finished
func (p Phase) IsGameOver() bool {
	return p == PhaseGameOver
}

// DiceRevealed returns true if dice are on the table for the current turn
func (p Phase) DiceRevealed() bool {
	return p == PhaseAwaitingRerollOrScore || p == PhaseAwaitingScore
}

// Result is the outcome of a finished match
type Result struct {
	// Tie is true when both totals are equal
	Tie bool `json:"tie"`

	// WinnerIndex is the seat of the winner; -1 on a tie
	WinnerIndex int `json:"winner_index"`

	// WinnerName is the name of the winner; empty on a tie
	WinnerName string `json:"winner_name"`

	// FinalScores holds each seat's total including the upper bonus
	FinalScores [2]int `json:"final_scores"`
}

// Match is the complete, serializable state of a two-player game
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	// ChannelID is the Discord channel the match is played in
	ChannelID string `json:"channel_id"`

	// Players are the two seats, in turn order
	Players [2]*Player `json:"players"`

	// CurrentPlayer is the seat whose turn it is
	CurrentPlayer int `json:"current_player"`

	// Dice are the current face values; zero before the first roll of a turn
	Dice [DiceCount]int `json:"dice"`

	// Held marks dice kept on the next reroll
	Held [DiceCount]bool `json:"held"`

	// RollCount is the number of rolls made this turn
	RollCount int `json:"roll_count"`

	// ScorePending is true once dice have been rolled and a category must be chosen
	ScorePending bool `json:"score_pending"`

	// Phase is the turn state
	Phase Phase `json:"phase"`

	// Result is set once the match is over
	Result *Result `json:"result,omitempty"`

	// MessageID is the ID of the Discord message showing the board
	MessageID string `json:"message_id,omitempty"`

	// CreatedAt is when the match was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the match was last changed
	UpdatedAt time.Time `json:"updated_at"`
}

// Current returns the player whose turn it is
func (m *Match) Current() *Player {
	return m.Players[m.CurrentPlayer]
}

// Opponent returns the player waiting for their turn
func (m *Match) Opponent() *Player {
	return m.Players[1-m.CurrentPlayer]
}

// SeatOf returns the seat of the player with the given ID, or -1
func (m *Match) SeatOf(playerID string) int {
	for i, p := range m.Players {
		if p != nil && p.ID == playerID {
			return i
		}
	}
	return -1
}

// HasPlayer returns true if the player is seated in the match
func (m *Match) HasPlayer(playerID string) bool {
	return m.SeatOf(playerID) >= 0
}
