package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/KirkDiggler/dicegame/internal/scoring"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
)

// TieTitle is shown when both players finish level
const TieTitle = "No one, it's a tie!"

// Roll titles and messages, keyed by what the dice show. Messages take the
// player name.
var (
	rollTitles = map[RollKind][]string{
		RollKindYahtzee: {
			"YAHTZEE!",
			"Five of a kind!",
			"The dice gods have spoken!",
		},
		RollKindLargeStraight: {
			"Large Straight!",
			"All in a row!",
		},
		RollKindSmallStraight: {
			"Small Straight!",
			"Four in a row!",
		},
		RollKindFullHouse: {
			"Full House!",
			"A house, and it's full!",
		},
		RollKindFourOfAKind: {
			"Four of a kind!",
			"So close to a Yahtzee!",
		},
		RollKindPlain: {
			"The dice are out",
			"Rolled",
			"Let's see what we've got",
		},
	}

	rollMessages = map[RollKind][]string{
		RollKindYahtzee: {
			"%s rolled a Yahtzee! Frame it, that's fifty points right there.",
			"Incredible! %s just lined up all five dice!",
			"%s is on fire! Five matching dice!",
		},
		RollKindLargeStraight: {
			"%s lined up a large straight. Forty points are on the table.",
			"Smooth! %s rolled five in a row.",
		},
		RollKindSmallStraight: {
			"%s has a small straight going. Go for the large one?",
			"Four in a row for %s!",
		},
		RollKindFullHouse: {
			"%s rolled a full house. Twenty-five points, no questions asked.",
			"Three and two! %s has a full house.",
		},
		RollKindFourOfAKind: {
			"%s is one die away from a Yahtzee.",
			"Four matching dice for %s. Feeling lucky?",
		},
		RollKindPlain: {
			"%s rolled the dice.",
			"%s shakes the cup and lets them fly.",
			"The dice have landed for %s.",
			"%s rolls and hopes for the best.",
		},
	}

	lastRollNotes = []string{
		"No rerolls left, pick a category.",
		"That's the last roll, time to score.",
	}

	scratchMessages = []string{
		"%s scratches %s for 0. Sometimes you have to take one for the team.",
		"%s puts a big fat zero in %s.",
		"Ouch! %s takes 0 in %s.",
	}

	bigScoreMessages = []string{
		"%s banks %d in %s. Nice!",
		"Cha-ching! %s gets %d points in %s.",
		"%s locks in %d for %s. The scorecard is looking good!",
	}

	scoreMessages = []string{
		"%s takes %d in %s.",
		"%s writes %d into %s.",
		"%s scores %d for %s.",
	}

	nextTurnMessages = []string{
		"%s, you're up!",
		"Your roll, %s.",
		"Over to you, %s.",
	}

	winMessages = []string{
		"%s takes the match! Better luck next time.",
		"%s wins! The dice were kind today.",
		"Victory goes to %s!",
	}

	tieMessages = []string{
		"Dead even. Rematch?",
		"Both scorecards tell the same story.",
		"Perfectly balanced, as all things should be.",
	}

	errorMessages = map[error][]string{
		matchService.ErrNotYourTurn: {
			"Patience! It's not your turn yet.",
			"Hold your horses! Someone else is rolling now.",
			"Wait your turn! The dice will come to you soon.",
		},
		matchService.ErrPlayerNotInMatch: {
			"You're not playing in this match. Start your own with /yahtzee start!",
			"Spectators don't get to touch the dice.",
		},
		matchService.ErrMatchNotFound: {
			"There's no match in this channel. Start one with /yahtzee start!",
			"No dice here yet. Challenge someone with /yahtzee start.",
		},
		matchService.ErrMatchAlreadyExists: {
			"A match is already running in this channel. Finish it or abandon it first.",
			"One match at a time! This channel already has a game going.",
		},
		matchService.ErrSamePlayer: {
			"You can't play against yourself. Pick an opponent!",
			"Nice try, but you need a real opponent.",
		},
		engine.ErrGameOver: {
			"This match is over! Start a new one with /yahtzee start.",
			"The final scores are in. Time for a rematch?",
		},
		engine.ErrNoRerollsLeft: {
			"That was your third roll. Pick a category!",
			"No rerolls left this turn. Time to score.",
		},
		engine.ErrRollBudgetExhausted: {
			"You're out of rolls. Score what you have!",
			"Your roll budget is spent. Pick a category.",
		},
		engine.ErrRollNotAllowed: {
			"You can't roll right now. Pick a category!",
		},
		engine.ErrDiceNotRolled: {
			"Roll the dice first!",
			"Nothing to work with yet. Roll first!",
		},
		engine.ErrCategoryFilled: {
			"You already scored that category. Pick another one.",
			"That box is already filled!",
		},
		engine.ErrInvalidCategory: {
			"That's not a category I know.",
		},
		engine.ErrInvalidDieIndex: {
			"That die doesn't exist.",
		},
	}

	// errorOrder keeps matching deterministic when errors wrap each other
	errorOrder = []error{
		matchService.ErrNotYourTurn,
		matchService.ErrPlayerNotInMatch,
		matchService.ErrMatchNotFound,
		matchService.ErrMatchAlreadyExists,
		matchService.ErrSamePlayer,
		engine.ErrGameOver,
		engine.ErrNoRerollsLeft,
		engine.ErrRollBudgetExhausted,
		engine.ErrRollNotAllowed,
		engine.ErrDiceNotRolled,
		engine.ErrCategoryFilled,
		engine.ErrInvalidCategory,
		engine.ErrInvalidDieIndex,
	}

	defaultErrorMessages = []string{
		"Something went wrong! Try again later.",
		"Oops! The dice got confused. Try again.",
		"Technical difficulties! The dice are being recalibrated.",
	}
)

// bigScoreThreshold marks a score worth celebrating
const bigScoreThreshold = 25

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// ClassifyRoll returns the best pattern showing on the dice
func ClassifyRoll(dice [models.DiceCount]int) RollKind {
	switch {
	case scoring.CalculateScore(models.CategoryYahtzee, dice) > 0:
		return RollKindYahtzee
	case scoring.CalculateScore(models.CategoryLargeStraight, dice) > 0:
		return RollKindLargeStraight
	case scoring.CalculateScore(models.CategorySmallStraight, dice) > 0:
		return RollKindSmallStraight
	case scoring.CalculateScore(models.CategoryFullHouse, dice) > 0:
		return RollKindFullHouse
	case scoring.CalculateScore(models.CategoryFourOfAKind, dice) > 0:
		return RollKindFourOfAKind
	default:
		return RollKindPlain
	}
}

// GetRollResultMessage returns a dynamic message for a dice roll result
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	kind := ClassifyRoll(input.Dice)

	tone := ToneNeutral
	switch kind {
	case RollKindYahtzee:
		tone = ToneCelebration
	case RollKindLargeStraight, RollKindSmallStraight, RollKindFullHouse, RollKindFourOfAKind:
		tone = ToneEncouraging
	}

	message := fmt.Sprintf(s.pick(rollMessages[kind]), input.PlayerName)
	if input.MustScore {
		message = fmt.Sprintf("%s %s", message, s.pick(lastRollNotes))
	}

	return &GetRollResultMessageOutput{
		Title:   s.pick(rollTitles[kind]),
		Message: message,
		Kind:    kind,
		Tone:    tone,
	}, nil
}

// GetScoreMessage returns a message for a scored category
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	category := input.Category.DisplayName()

	var message string
	var tone MessageTone
	switch {
	case input.Score == 0:
		message = fmt.Sprintf(s.pick(scratchMessages), input.PlayerName, category)
		tone = ToneFunny
	case input.Score >= bigScoreThreshold:
		message = fmt.Sprintf(s.pick(bigScoreMessages), input.PlayerName, input.Score, category)
		tone = ToneCelebration
	default:
		message = fmt.Sprintf(s.pick(scoreMessages), input.PlayerName, input.Score, category)
		tone = ToneNeutral
	}

	if input.NextPlayerName != "" {
		message = fmt.Sprintf("%s %s", message, fmt.Sprintf(s.pick(nextTurnMessages), input.NextPlayerName))
	}

	return &GetScoreMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns the end of match announcement
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	standings := fmt.Sprintf("%s: %d, %s: %d",
		input.PlayerNames[0], input.FinalScores[0],
		input.PlayerNames[1], input.FinalScores[1])

	if input.Tie {
		return &GetGameOverMessageOutput{
			Title:   TieTitle,
			Message: fmt.Sprintf("%s %s", s.pick(tieMessages), standings),
			Tone:    ToneFunny,
		}, nil
	}

	return &GetGameOverMessageOutput{
		Title:   fmt.Sprintf("%s wins!", input.WinnerName),
		Message: fmt.Sprintf("%s %s", fmt.Sprintf(s.pick(winMessages), input.WinnerName), standings),
		Tone:    ToneCelebration,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Set default tone if not specified
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	messages := defaultErrorMessages
	for _, known := range errorOrder {
		if errors.Is(input.Err, known) {
			messages = errorMessages[known]
			break
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
