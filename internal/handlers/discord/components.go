package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dicegame/internal/models"
)

// Component custom ID prefixes. The match ID is appended so a stale board
// never acts on a newer match in the same channel.
const (
	ButtonRollDice      = "roll_dice"
	ButtonHoldDie       = "hold_die"
	SelectScoreCategory = "score_category"
)

// ErrUnknownComponent is returned for custom IDs this bot did not create
var ErrUnknownComponent = errors.New("unknown component")

// componentAction is a parsed component custom ID
type componentAction struct {
	Kind     string
	MatchID  string
	DieIndex int
}

func rollDiceID(matchID string) string {
	return fmt.Sprintf("%s:%s", ButtonRollDice, matchID)
}

func holdDieID(matchID string, index int) string {
	return fmt.Sprintf("%s:%d:%s", ButtonHoldDie, index, matchID)
}

func scoreCategoryID(matchID string) string {
	return fmt.Sprintf("%s:%s", SelectScoreCategory, matchID)
}

// parseCustomID is the inverse of the ID builders above
func parseCustomID(customID string) (*componentAction, error) {
	parts := strings.Split(customID, ":")

	switch parts[0] {
	case ButtonRollDice, SelectScoreCategory:
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, customID)
		}
		return &componentAction{Kind: parts[0], MatchID: parts[1]}, nil
	case ButtonHoldDie:
		if len(parts) != 3 || parts[2] == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, customID)
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil || index < 0 || index >= models.DiceCount {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, customID)
		}
		return &componentAction{Kind: ButtonHoldDie, MatchID: parts[2], DieIndex: index}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, customID)
	}
}
