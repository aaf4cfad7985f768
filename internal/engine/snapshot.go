package engine

import (
	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/KirkDiggler/dicegame/internal/scoring"
)

// PlayerView is the read-only view of one seat
type PlayerView struct {
	ID             string
	Name           string
	ScoreCard      models.ScoreCard
	RollsLeft      int
	UpperSum       int
	Bonus          int
	Total          int
	TotalWithBonus int
}

// Snapshot is everything a presentation layer needs to draw the board
type Snapshot struct {
	MatchID       string
	CurrentPlayer int
	Dice          [models.DiceCount]int
	Held          [models.DiceCount]bool
	RollCount     int
	ScorePending  bool
	Phase         models.Phase
	Players       [2]PlayerView
	CanRoll       bool
	GameOver      bool
	Tie           bool
	WinnerName    string
	FinalScores   [2]int

	// PotentialScores previews every category for the current player while a
	// score is pending; nil otherwise
	PotentialScores map[models.Category]int
}

// TakeSnapshot copies the match into a Snapshot
func TakeSnapshot(m *models.Match) *Snapshot {
	if m == nil {
		return nil
	}

	snap := &Snapshot{
		MatchID:       m.ID,
		CurrentPlayer: m.CurrentPlayer,
		Dice:          m.Dice,
		Held:          m.Held,
		RollCount:     m.RollCount,
		ScorePending:  m.ScorePending,
		Phase:         m.Phase,
		CanRoll:       CanRoll(m),
		GameOver:      m.Phase.IsGameOver(),
	}

	for i, p := range m.Players {
		if p == nil {
			continue
		}
		snap.Players[i] = PlayerView{
			ID:             p.ID,
			Name:           p.Name,
			ScoreCard:      p.ScoreCard,
			RollsLeft:      p.RollsLeft,
			UpperSum:       scoring.UpperSectionSum(&p.ScoreCard),
			Bonus:          scoring.Bonus(&p.ScoreCard),
			Total:          scoring.SumFilled(&p.ScoreCard),
			TotalWithBonus: scoring.TotalScore(&p.ScoreCard),
		}
	}

	if m.ScorePending {
		snap.PotentialScores = scoring.CalculatePotentialScores(m.Current(), m.Dice)
	}

	if m.Result != nil {
		snap.Tie = m.Result.Tie
		snap.WinnerName = m.Result.WinnerName
		snap.FinalScores = m.Result.FinalScores
	}

	return snap
}

// Current returns the view of the player whose turn it is
func (s *Snapshot) Current() PlayerView {
	return s.Players[s.CurrentPlayer]
}
