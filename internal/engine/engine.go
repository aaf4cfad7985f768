// Package engine is the turn state machine for a two-player match.
//
// A turn moves through
//
//	awaiting_first_roll -> awaiting_reroll_or_score -> awaiting_score
//
// and a chosen category either hands the dice to the other player or, once both
// scorecards are complete, ends the match. Every operation checks its
// precondition first and leaves the match untouched when it fails.
package engine

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/dicegame/internal/dice"
	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/KirkDiggler/dicegame/internal/scoring"
)

// SeatConfig describes one of the two players joining a match
type SeatConfig struct {
	// ID is the external identifier of the player, optional
	ID string

	// Name is the display name; defaults to "Player N"
	Name string
}

// MatchConfig holds the parameters for a new match
type MatchConfig struct {
	// ID is the match identifier
	ID string

	// ChannelID is the channel the match is played in
	ChannelID string

	// Seats are the two players in turn order
	Seats [2]SeatConfig

	// RollBudget is each player's starting roll budget; 0 means the default
	RollBudget int

	// Now is the creation time
	Now time.Time
}

// RollResult describes the outcome of a roll
type RollResult struct {
	Dice      [models.DiceCount]int
	Rerolled  [models.DiceCount]bool
	RollCount int
	RollsLeft int
	Phase     models.Phase
}

// ScoreResult describes a category assignment
type ScoreResult struct {
	Seat       int
	PlayerName string
	Category   models.Category
	Score      int
	Dice       [models.DiceCount]int
	RollCount  int
	GameOver   bool
	Result     *models.Result
}

// NewMatch creates a fresh match with empty scorecards and the first seat to act
func NewMatch(cfg *MatchConfig) (*models.Match, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RollBudget < 0 {
		return nil, ErrInvalidRollBudget
	}

	budget := cfg.RollBudget
	if budget == 0 {
		budget = models.DefaultRollBudget
	}

	a, b := cfg.Seats[0], cfg.Seats[1]
	if a.ID != "" && a.ID == b.ID {
		return nil, ErrSamePlayer
	}

	match := &models.Match{
		ID:        cfg.ID,
		ChannelID: cfg.ChannelID,
		Phase:     models.PhaseAwaitingFirstRoll,
		CreatedAt: cfg.Now,
		UpdatedAt: cfg.Now,
	}
	for i, seat := range cfg.Seats {
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		match.Players[i] = &models.Player{
			ID:        seat.ID,
			Name:      name,
			RollsLeft: budget,
		}
	}

	return match, nil
}

// Roll rolls every die on the first roll of a turn and every un-held die on a reroll
func Roll(m *models.Match, roller dice.Roller) (*RollResult, error) {
	if m == nil {
		return nil, ErrNilMatch
	}
	if roller == nil {
		return nil, ErrNilRoller
	}
	if err := checkCanRoll(m); err != nil {
		return nil, err
	}

	player := m.Current()
	firstRoll := m.Phase == models.PhaseAwaitingFirstRoll

	held := m.Held
	if firstRoll {
		held = [models.DiceCount]bool{}
	}

	next := m.Dice
	var rerolled [models.DiceCount]bool
	for i := range next {
		if held[i] {
			continue
		}
		v := roller.Roll(dice.DefaultSides)
		if v < 1 || v > dice.DefaultSides {
			return nil, ErrInvalidDieValue
		}
		next[i] = v
		rerolled[i] = true
	}

	m.Dice = next
	m.Held = held
	if firstRoll {
		m.RollCount = 1
		if player.RollsLeft > 0 {
			player.RollsLeft--
		}
		m.ScorePending = true
	} else {
		m.RollCount++
	}

	if m.RollCount >= models.MaxRollsPerTurn || player.RollsLeft <= 0 {
		m.Phase = models.PhaseAwaitingScore
	} else {
		m.Phase = models.PhaseAwaitingRerollOrScore
	}

	return &RollResult{
		Dice:      m.Dice,
		Rerolled:  rerolled,
		RollCount: m.RollCount,
		RollsLeft: player.RollsLeft,
		Phase:     m.Phase,
	}, nil
}

// CanRoll reports whether Roll would be accepted
func CanRoll(m *models.Match) bool {
	return m != nil && checkCanRoll(m) == nil
}

func checkCanRoll(m *models.Match) error {
	player := m.Current()

	switch m.Phase {
	case models.PhaseAwaitingFirstRoll:
		// The opening roll of a turn is never gated on the budget, otherwise the
		// last turn could not be played once the budget runs out.
		return nil
	case models.PhaseAwaitingRerollOrScore, models.PhaseAwaitingScore:
		if m.RollCount >= models.MaxRollsPerTurn {
			return ErrNoRerollsLeft
		}
		if player.RollsLeft <= 0 {
			return ErrRollBudgetExhausted
		}
		if m.Phase == models.PhaseAwaitingScore {
			return ErrRollNotAllowed
		}
		return nil
	case models.PhaseGameOver:
		return ErrGameOver
	default:
		return ErrRollNotAllowed
	}
}

// ToggleHold flips whether a die is kept on the next reroll
func ToggleHold(m *models.Match, index int) error {
	if m == nil {
		return ErrNilMatch
	}
	if m.Phase.IsGameOver() {
		return ErrGameOver
	}
	if !m.ScorePending || !m.Phase.DiceRevealed() {
		return ErrDiceNotRolled
	}
	if index < 0 || index >= models.DiceCount {
		return ErrInvalidDieIndex
	}

	m.Held[index] = !m.Held[index]
	return nil
}

// ChooseCategory scores the current dice in a category for the current player
func ChooseCategory(m *models.Match, category models.Category) (*ScoreResult, error) {
	if m == nil {
		return nil, ErrNilMatch
	}
	if m.Phase.IsGameOver() {
		return nil, ErrGameOver
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !m.ScorePending || !m.Phase.DiceRevealed() {
		return nil, ErrDiceNotRolled
	}

	seat := m.CurrentPlayer
	player := m.Current()
	if player.ScoreCard.IsFilled(category) {
		return nil, ErrCategoryFilled
	}

	score := scoring.CalculateScore(category, m.Dice)
	if err := player.ScoreCard.Fill(category, score); err != nil {
		return nil, ErrCategoryFilled
	}
	m.ScorePending = false

	out := &ScoreResult{
		Seat:       seat,
		PlayerName: player.Name,
		Category:   category,
		Score:      score,
		Dice:       m.Dice,
		RollCount:  m.RollCount,
	}

	if isComplete(m) {
		m.Phase = models.PhaseGameOver
		m.Held = [models.DiceCount]bool{}
		m.Result = computeResult(m)
		out.GameOver = true
		out.Result = m.Result
		return out, nil
	}

	m.CurrentPlayer = 1 - seat
	m.Dice = [models.DiceCount]int{}
	m.Held = [models.DiceCount]bool{}
	m.RollCount = 0
	m.Phase = models.PhaseAwaitingFirstRoll

	return out, nil
}

func isComplete(m *models.Match) bool {
	for _, p := range m.Players {
		if !p.ScoreCard.IsComplete() {
			return false
		}
	}
	return true
}

func computeResult(m *models.Match) *models.Result {
	result := &models.Result{WinnerIndex: -1}
	for i, p := range m.Players {
		result.FinalScores[i] = scoring.TotalScore(&p.ScoreCard)
	}

	switch {
	case result.FinalScores[0] > result.FinalScores[1]:
		result.WinnerIndex = 0
	case result.FinalScores[1] > result.FinalScores[0]:
		result.WinnerIndex = 1
	default:
		result.Tie = true
	}
	if !result.Tie {
		result.WinnerName = m.Players[result.WinnerIndex].Name
	}

	return result
}
