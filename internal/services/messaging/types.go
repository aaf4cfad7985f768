package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/dicegame/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// RollKind is the best pattern showing on the dice
type RollKind string

const (
	RollKindYahtzee       RollKind = "yahtzee"
	RollKindLargeStraight RollKind = "large_straight"
	RollKindSmallStraight RollKind = "small_straight"
	RollKindFullHouse     RollKind = "full_house"
	RollKindFourOfAKind   RollKind = "four_of_a_kind"
	RollKindPlain         RollKind = "plain"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks between messages; seeded from the clock when nil
	Rand *rand.Rand
}

// GetRollResultMessageInput contains parameters for a roll message
type GetRollResultMessageInput struct {
	// PlayerName is the name of the player who rolled
	PlayerName string

	// Dice are the faces showing after the roll
	Dice [models.DiceCount]int

	// RollCount is the number of rolls made this turn
	RollCount int

	// MustScore is true when the player can no longer reroll
	MustScore bool
}

// GetRollResultMessageOutput contains the result of getting a roll message
type GetRollResultMessageOutput struct {
	Title   string
	Message string
	Kind    RollKind
	Tone    MessageTone
}

// GetScoreMessageInput contains parameters for a score message
type GetScoreMessageInput struct {
	PlayerName string
	Category   models.Category
	Score      int

	// NextPlayerName is who rolls next; empty once the match is over
	NextPlayerName string
}

// GetScoreMessageOutput contains the result of getting a score message
type GetScoreMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput contains parameters for the end of match message
type GetGameOverMessageInput struct {
	PlayerNames [2]string
	FinalScores [2]int
	Tie         bool
	WinnerName  string
}

// GetGameOverMessageOutput contains the end of match message
type GetGameOverMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the match service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
