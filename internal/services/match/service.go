package match

import (
	"context"
	"errors"

	"github.com/KirkDiggler/dicegame/internal/common/clock"
	"github.com/KirkDiggler/dicegame/internal/common/uuid"
	"github.com/KirkDiggler/dicegame/internal/dice"
	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	matchRepo "github.com/KirkDiggler/dicegame/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/dicegame/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/dicegame/internal/repositories/score_ledger"
	"github.com/KirkDiggler/dicegame/internal/scoring"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	rollBudget      int
	matchRepo       matchRepo.Repository
	playerRepo      playerRepo.Repository
	scoreLedgerRepo ledgerRepo.Repository
	diceRoller      dice.Roller
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	log             zerolog.Logger
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.ScoreLedgerRepo == nil {
		return nil, ErrNilScoreLedgerRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.RollBudget < 0 {
		return nil, engine.ErrInvalidRollBudget
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("service", "match").Logger()
	}

	return &service{
		rollBudget:      cfg.RollBudget,
		matchRepo:       cfg.MatchRepo,
		playerRepo:      cfg.PlayerRepo,
		scoreLedgerRepo: cfg.ScoreLedgerRepo,
		diceRoller:      cfg.DiceRoller,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		log:             log,
	}, nil
}

// CreateMatch starts a two-player match in a channel
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	a, b := input.Players[0], input.Players[1]
	if a.ID == "" || b.ID == "" {
		return nil, ErrInvalidInput
	}
	if a.ID == b.ID {
		return nil, ErrSamePlayer
	}

	// A finished match may stay on the channel, a running one may not
	existing, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err == nil && existing != nil && !existing.Phase.IsGameOver() {
		return nil, ErrMatchAlreadyExists
	}
	if err != nil && !errors.Is(err, matchRepo.ErrMatchNotFound) {
		return nil, err
	}

	m, err := engine.NewMatch(&engine.MatchConfig{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		Seats: [2]engine.SeatConfig{
			{ID: a.ID, Name: a.Name},
			{ID: b.ID, Name: b.Name},
		},
		RollBudget: s.rollBudget,
		Now:        s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: m}); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("match_id", m.ID).
		Str("channel_id", m.ChannelID).
		Str("player_one", a.ID).
		Str("player_two", b.ID).
		Msg("match created")

	return &CreateMatchOutput{
		Match:    m,
		Snapshot: engine.TakeSnapshot(m),
	}, nil
}

// GetMatch retrieves a match by ID
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &GetMatchOutput{
		Match:    m,
		Snapshot: engine.TakeSnapshot(m),
	}, nil
}

// GetMatchByChannel retrieves the latest match of a channel
func (s *service) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*GetMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return &GetMatchOutput{
		Match:    m,
		Snapshot: engine.TakeSnapshot(m),
	}, nil
}

// RollDice rolls for the current player
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if err := checkTurn(m, input.PlayerID); err != nil {
		return nil, err
	}

	roll, err := engine.Roll(m, s.diceRoller)
	if err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("match_id", m.ID).
		Str("player_id", input.PlayerID).
		Ints("dice", roll.Dice[:]).
		Int("roll_count", roll.RollCount).
		Int("rolls_left", roll.RollsLeft).
		Msg("dice rolled")

	return &RollDiceOutput{
		Match:      m,
		Snapshot:   engine.TakeSnapshot(m),
		Roll:       roll,
		PlayerName: m.Current().Name,
		MustScore:  roll.Phase == models.PhaseAwaitingScore,
	}, nil
}

// ToggleHold keeps or releases a die for the next reroll
func (s *service) ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if err := checkTurn(m, input.PlayerID); err != nil {
		return nil, err
	}

	if err := engine.ToggleHold(m, input.DieIndex); err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	return &ToggleHoldOutput{
		Match:    m,
		Snapshot: engine.TakeSnapshot(m),
		Held:     m.Held[input.DieIndex],
	}, nil
}

// ChooseCategory scores the current dice and passes the turn
func (s *service) ChooseCategory(ctx context.Context, input *ChooseCategoryInput) (*ChooseCategoryOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if err := checkTurn(m, input.PlayerID); err != nil {
		return nil, err
	}

	scorer := m.Current()
	score, err := engine.ChooseCategory(m, input.Category)
	if err != nil {
		return nil, err
	}

	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	log := s.log.With().
		Str("match_id", m.ID).
		Str("player_id", scorer.ID).
		Str("category", score.Category.Key()).
		Logger()
	log.Info().Int("score", score.Score).Msg("category scored")

	// The turn is already saved; ledger and record failures are logged only
	err = s.scoreLedgerRepo.AddRecord(ctx, &ledgerRepo.AddRecordInput{
		Record: &models.ScoreRecord{
			ID:         s.uuidGenerator.NewUUID(),
			MatchID:    m.ID,
			PlayerID:   scorer.ID,
			PlayerName: scorer.Name,
			Category:   score.Category,
			Dice:       score.Dice,
			Score:      score.Score,
			RollCount:  score.RollCount,
			Timestamp:  m.UpdatedAt,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to add score record")
	}

	output := &ChooseCategoryOutput{
		Match:    m,
		Snapshot: engine.TakeSnapshot(m),
		Score:    score,
	}

	if !score.GameOver {
		output.NextPlayerName = m.Current().Name
		return output, nil
	}

	if err := s.recordResult(ctx, m); err != nil {
		log.Error().Err(err).Msg("failed to record match result")
	}

	log.Info().
		Bool("tie", m.Result.Tie).
		Str("winner", m.Result.WinnerName).
		Ints("final_scores", m.Result.FinalScores[:]).
		Msg("match finished")

	return output, nil
}

// GetPotentialScores previews every category for the current dice
func (s *service) GetPotentialScores(ctx context.Context, input *GetPotentialScoresInput) (*GetPotentialScoresOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if m.Phase.IsGameOver() {
		return nil, engine.ErrGameOver
	}
	if !m.ScorePending {
		return nil, engine.ErrDiceNotRolled
	}

	return &GetPotentialScoresOutput{
		PlayerName: m.Current().Name,
		Dice:       m.Dice,
		Scores:     scoring.CalculatePotentialScores(m.Current(), m.Dice),
	}, nil
}

// GetHistory returns the scored categories of a match in order
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.scoreLedgerRepo.GetRecordsForMatch(ctx, &ledgerRepo.GetRecordsForMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Records: out.Records,
	}, nil
}

// AbandonMatch throws away the running match of a channel without recording results
func (s *service) AbandonMatch(ctx context.Context, input *AbandonMatchInput) (*AbandonMatchOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.matchRepo.GetMatchByChannel(ctx, &matchRepo.GetMatchByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if m.Phase.IsGameOver() {
		return nil, engine.ErrGameOver
	}
	if !m.HasPlayer(input.PlayerID) {
		return nil, ErrPlayerNotInMatch
	}

	if err := s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{MatchID: m.ID}); err != nil {
		return nil, err
	}

	if err := s.scoreLedgerRepo.DeleteRecordsForMatch(ctx, &ledgerRepo.DeleteRecordsForMatchInput{
		MatchID: m.ID,
	}); err != nil {
		s.log.Error().Err(err).Str("match_id", m.ID).Msg("failed to delete score records")
	}

	s.log.Info().
		Str("match_id", m.ID).
		Str("channel_id", m.ChannelID).
		Str("player_id", input.PlayerID).
		Msg("match abandoned")

	return &AbandonMatchOutput{
		MatchID: m.ID,
	}, nil
}

// UpdateMatchMessage remembers the message showing the board
func (s *service) UpdateMatchMessage(ctx context.Context, input *UpdateMatchMessageInput) (*UpdateMatchMessageOutput, error) {
	if input == nil || input.MatchID == "" || input.MessageID == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if m.MessageID == input.MessageID {
		return &UpdateMatchMessageOutput{Success: true}, nil
	}

	m.MessageID = input.MessageID
	if err := s.saveMatch(ctx, m); err != nil {
		return nil, err
	}

	return &UpdateMatchMessageOutput{
		Success: true,
	}, nil
}

// GetLeaderboard returns the best final scores across matches
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	out, err := s.playerRepo.GetTopScores(ctx, &playerRepo.GetTopScoresInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(out.Scores))
	for _, score := range out.Scores {
		entries = append(entries, LeaderboardEntry{
			PlayerID:    score.Record.ID,
			PlayerName:  score.Record.Name,
			BestScore:   score.Score,
			GamesPlayed: score.Record.GamesPlayed,
			Wins:        score.Record.Wins,
			Losses:      score.Record.Losses,
			Ties:        score.Record.Ties,
		})
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

func (s *service) loadMatch(ctx context.Context, matchID string) (*models.Match, error) {
	m, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) saveMatch(ctx context.Context, m *models.Match) error {
	m.UpdatedAt = s.clock.Now()
	return s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: m,
	})
}

func (s *service) recordResult(ctx context.Context, m *models.Match) error {
	participants := make([]playerRepo.Participant, 0, len(m.Players))
	for seat, p := range m.Players {
		outcome := playerRepo.OutcomeLoss
		switch {
		case m.Result.Tie:
			outcome = playerRepo.OutcomeTie
		case m.Result.WinnerIndex == seat:
			outcome = playerRepo.OutcomeWin
		}

		participants = append(participants, playerRepo.Participant{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      m.Result.FinalScores[seat],
			Outcome:    outcome,
		})
	}

	return s.playerRepo.RecordResult(ctx, &playerRepo.RecordResultInput{
		MatchID:      m.ID,
		Participants: participants,
		PlayedAt:     m.UpdatedAt,
	})
}

// checkTurn rejects actions from players who are not seated or not current.
// A finished match reports game over to everyone.
func checkTurn(m *models.Match, playerID string) error {
	if m.Phase.IsGameOver() {
		return engine.ErrGameOver
	}
	if !m.HasPlayer(playerID) {
		return ErrPlayerNotInMatch
	}
	if m.Current().ID != playerID {
		return ErrNotYourTurn
	}
	return nil
}
