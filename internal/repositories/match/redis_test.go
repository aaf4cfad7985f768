package match

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/dicegame/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newMatch(id, channelID string) *models.Match {
	match := &models.Match{
		ID:        id,
		ChannelID: channelID,
		Players: [2]*models.Player{
			{ID: "alice-id", Name: "Alice", RollsLeft: 11},
			{ID: "bob-id", Name: "Bob", RollsLeft: 12},
		},
		Dice:         [5]int{2, 2, 5, 5, 5},
		Held:         [5]bool{true, false, false, true, false},
		RollCount:    2,
		ScorePending: true,
		Phase:        models.PhaseAwaitingRerollOrScore,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
	s.Require().NoError(match.Players[0].ScoreCard.Fill(models.CategoryYahtzee, 0))
	s.Require().NoError(match.Players[0].ScoreCard.Fill(models.CategorySixes, 18))
	return match
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMatch() {
	match := s.newMatch("test-match-id", "test-channel-id")

	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: match,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-match-id", retrieved.ID)
	s.Equal("test-channel-id", retrieved.ChannelID)
	s.Equal(models.PhaseAwaitingRerollOrScore, retrieved.Phase)
	s.Equal([5]int{2, 2, 5, 5, 5}, retrieved.Dice)
	s.Equal([5]bool{true, false, false, true, false}, retrieved.Held)
	s.Equal(2, retrieved.RollCount)
	s.True(retrieved.ScorePending)
	s.Equal("Alice", retrieved.Players[0].Name)
	s.Equal(11, retrieved.Players[0].RollsLeft)

	v, ok := retrieved.Players[0].ScoreCard.Get(models.CategoryYahtzee)
	s.True(ok, "zero score survives the round trip as filled")
	s.Equal(0, v)
	v, ok = retrieved.Players[0].ScoreCard.Get(models.CategorySixes)
	s.True(ok)
	s.Equal(18, v)
	s.False(retrieved.Players[0].ScoreCard.IsFilled(models.CategoryOnes))
	s.Equal(0, retrieved.Players[1].ScoreCard.FilledCount())
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetMatch_NotFound() {
	_, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "missing",
	})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.repo.GetMatchByChannel(context.Background(), &GetMatchByChannelInput{
		ChannelID: "missing",
	})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestInvalidInputs() {
	ctx := context.Background()

	s.Error(s.repo.SaveMatch(ctx, nil))
	s.Error(s.repo.SaveMatch(ctx, &SaveMatchInput{Match: &models.Match{}}))

	_, err := s.repo.GetMatch(ctx, &GetMatchInput{})
	s.Error(err)

	_, err = s.repo.GetMatchByChannel(ctx, &GetMatchByChannelInput{})
	s.Error(err)

	s.Error(s.repo.DeleteMatch(ctx, &DeleteMatchInput{}))
}

func (s *RedisRepositoryTestSuite) TestGetMatchByChannel() {
	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: s.newMatch("test-match-id", "test-channel-id"),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatchByChannel(context.Background(), &GetMatchByChannelInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("test-match-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetActiveMatches() {
	active := s.newMatch("active-match-id", "active-channel-id")
	finished := s.newMatch("finished-match-id", "finished-channel-id")
	finished.Phase = models.PhaseGameOver

	for _, m := range []*models.Match{active, finished} {
		err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: m})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetActiveMatches(context.Background(), &GetActiveMatchesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)
	s.Equal("active-match-id", output.Matches[0].ID)

	// Finishing the active match removes it from the set
	active.Phase = models.PhaseGameOver
	err = s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: active})
	s.Require().NoError(err)

	output, err = s.repo.GetActiveMatches(context.Background(), &GetActiveMatchesInput{})
	s.Require().NoError(err)
	s.Empty(output.Matches)
}

func (s *RedisRepositoryTestSuite) TestDeleteMatch() {
	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: s.newMatch("test-match-id", "test-channel-id"),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteMatch(context.Background(), &DeleteMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetMatch(context.Background(), &GetMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.repo.GetMatchByChannel(context.Background(), &GetMatchByChannelInput{ChannelID: "test-channel-id"})
	s.ErrorIs(err, ErrMatchNotFound)

	output, err := s.repo.GetActiveMatches(context.Background(), &GetActiveMatchesInput{})
	s.Require().NoError(err)
	s.Empty(output.Matches)

	err = s.repo.DeleteMatch(context.Background(), &DeleteMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteMatch_KeepsNewerChannelMatch() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{Match: s.newMatch("old-match-id", "test-channel-id")}))
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{Match: s.newMatch("new-match-id", "test-channel-id")}))

	s.Require().NoError(s.repo.DeleteMatch(ctx, &DeleteMatchInput{MatchID: "old-match-id"}))

	retrieved, err := s.repo.GetMatchByChannel(ctx, &GetMatchByChannelInput{ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.Equal("new-match-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestSaveMatch_TTL() {
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)

	err = repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: s.newMatch("test-match-id", "test-channel-id"),
	})
	s.Require().NoError(err)

	s.Equal(time.Hour, s.mr.TTL(matchKey("test-match-id")))

	s.mr.FastForward(2 * time.Hour)

	_, err = repo.GetMatch(context.Background(), &GetMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)

	// An expired match left in the active set is skipped
	output, err := repo.GetActiveMatches(context.Background(), &GetActiveMatchesInput{})
	s.Require().NoError(err)
	s.Empty(output.Matches)
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)

	_, err = NewRedis(&Config{RedisClient: s.client, TTL: -time.Second})
	s.Error(err)
}
