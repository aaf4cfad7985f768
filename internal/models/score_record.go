package models

import (
	"time"
)

// ScoreRecord is a single entry in a match's score ledger
type ScoreRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// MatchID is the match the score was written in
	MatchID string `json:"match_id"`

	// PlayerID is the ID of the player who scored
	PlayerID string `json:"player_id"`

	// PlayerName is the display name of the player who scored
	PlayerName string `json:"player_name"`

	// Category is the slot that was filled
	Category Category `json:"category"`

	// Dice are the faces the score was taken from
	Dice [DiceCount]int `json:"dice"`

	// Score is the value written to the slot
	Score int `json:"score"`

	// RollCount is how many rolls were used before scoring
	RollCount int `json:"roll_count"`

	// Timestamp is when the category was scored
	Timestamp time.Time `json:"timestamp"`
}
