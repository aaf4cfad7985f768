package models

import (
	"time"
)

// DefaultRollBudget is the number of turn-opening rolls a player starts with
const DefaultRollBudget = 12

// Player is one seat at a match
type Player struct {
	// ID is the Discord user ID of the player (may be empty outside Discord)
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// ScoreCard holds the player's scored categories
	ScoreCard ScoreCard `json:"score_card"`

	// RollsLeft is the remaining roll budget; rerolls are refused once it hits zero
	RollsLeft int `json:"rolls_left"`
}

// PlayerRecord is the long-lived record kept for a player across matches
type PlayerRecord struct {
	// ID is the Discord user ID of the player
	ID string `json:"id"`

	// Name is the most recent display name of the player
	Name string `json:"name"`

	// GamesPlayed counts completed matches
	GamesPlayed int `json:"games_played"`

	// Wins, Losses and Ties count match outcomes
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`

	// BestScore is the highest final total the player has reached
	BestScore int `json:"best_score"`

	// LastPlayedAt is when the player last finished a match
	LastPlayedAt time.Time `json:"last_played_at"`
}
