package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	matchMocks "github.com/KirkDiggler/dicegame/internal/services/match/mocks"
	"github.com/KirkDiggler/dicegame/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/dicegame/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type YahtzeeCommandTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockMatchService *matchMocks.MockService
	mockMessaging    *messagingMocks.MockService
	cmd              *YahtzeeCommand
	ctx              context.Context

	channelID string
	alice     matchService.PlayerInput
}

func (s *YahtzeeCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatchService = matchMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.cmd = NewYahtzeeCommand(s.mockMatchService, s.mockMessaging, zerolog.Nop())
	s.ctx = context.Background()

	s.channelID = "test-channel-id"
	s.alice = matchService.PlayerInput{ID: "alice-id", Name: "Alice"}
}

func (s *YahtzeeCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestYahtzeeCommandSuite(t *testing.T) {
	suite.Run(t, new(YahtzeeCommandTestSuite))
}

func subcommand(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionData {
	return &discordgo.ApplicationCommandInteractionData{
		Name: "yahtzee",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name:    name,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: options,
			},
		},
	}
}

func startWithOpponent(user *discordgo.User, member *discordgo.Member) *discordgo.ApplicationCommandInteractionData {
	data := subcommand(subcommandStart, &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionOpponent,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: user.ID,
	})
	data.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{
		Users: map[string]*discordgo.User{user.ID: user},
	}
	if member != nil {
		data.Resolved.Members = map[string]*discordgo.Member{user.ID: member}
	}
	return data
}

func (s *YahtzeeCommandTestSuite) expectFriendlyError(err error, message string) {
	s.mockMessaging.EXPECT().
		GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{Err: err}).
		Return(&messaging.GetErrorMessageOutput{Message: message}, nil)
}

func (s *YahtzeeCommandTestSuite) TestGetCommand() {
	cmd := s.cmd.GetCommand()
	s.Equal("yahtzee", cmd.Name)

	names := make([]string, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"start", "board", "history", "abandon", "leaderboard"}, names)

	start := cmd.Options[0]
	s.Require().Len(start.Options, 1)
	s.Equal(discordgo.ApplicationCommandOptionUser, start.Options[0].Type)
	s.True(start.Options[0].Required)
}

func (s *YahtzeeCommandTestSuite) TestStart() {
	m := newTestMatch(s.T())
	s.mockMatchService.EXPECT().
		CreateMatch(gomock.Any(), &matchService.CreateMatchInput{
			ChannelID: s.channelID,
			Players: [2]matchService.PlayerInput{
				s.alice,
				{ID: "bob-id", Name: "Bobby"},
			},
		}).
		Return(&matchService.CreateMatchOutput{
			Match:    m,
			Snapshot: engine.TakeSnapshot(m),
		}, nil)

	data := startWithOpponent(
		&discordgo.User{ID: "bob-id", Username: "bob", GlobalName: "Bob"},
		&discordgo.Member{Nick: "Bobby"},
	)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, data)
	s.Equal(testMatchID, matchID, "the new board is tracked")
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal("<@alice-id> challenged <@bob-id> to Yahtzee!", resp.Data.Content)
	s.Zero(resp.Data.Flags, "the board is public")
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Yahtzee: Alice vs Bob", resp.Data.Embeds[0].Title)
	s.Len(resp.Data.Components, 1)
}

func (s *YahtzeeCommandTestSuite) TestStart_UsesGlobalNameWithoutNickname() {
	m := newTestMatch(s.T())
	s.mockMatchService.EXPECT().
		CreateMatch(gomock.Any(), &matchService.CreateMatchInput{
			ChannelID: s.channelID,
			Players: [2]matchService.PlayerInput{
				s.alice,
				{ID: "bob-id", Name: "Bob"},
			},
		}).
		Return(&matchService.CreateMatchOutput{Match: m, Snapshot: engine.TakeSnapshot(m)}, nil)

	data := startWithOpponent(&discordgo.User{ID: "bob-id", Username: "bob", GlobalName: "Bob"}, nil)

	_, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, data)
	s.Equal(testMatchID, matchID)
}

func (s *YahtzeeCommandTestSuite) TestStart_RejectsBots() {
	data := startWithOpponent(&discordgo.User{ID: "bot-id", Username: "dicebot", Bot: true}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, data)
	s.Empty(matchID)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("Bots don't play Yahtzee. Pick a human opponent!", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestStart_MissingOpponent() {
	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandStart))
	s.Empty(matchID)
	s.Equal("Pick someone to play against.", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestStart_AlreadyRunning() {
	s.mockMatchService.EXPECT().
		CreateMatch(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrMatchAlreadyExists)
	s.expectFriendlyError(matchService.ErrMatchAlreadyExists, "One match at a time!")

	data := startWithOpponent(&discordgo.User{ID: "bob-id", Username: "bob"}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, data)
	s.Empty(matchID)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("One match at a time!", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestBoard() {
	m := newRolledMatch(s.T())
	s.mockMatchService.EXPECT().
		GetMatchByChannel(gomock.Any(), &matchService.GetMatchByChannelInput{ChannelID: s.channelID}).
		Return(&matchService.GetMatchOutput{Match: m, Snapshot: engine.TakeSnapshot(m)}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandBoard))
	s.Equal(testMatchID, matchID)
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Len(resp.Data.Components, 3)
}

func (s *YahtzeeCommandTestSuite) TestBoard_FinishedIsNotTracked() {
	m := newTestMatch(s.T())
	m.Phase = models.PhaseGameOver
	m.Result = &models.Result{Tie: true, WinnerIndex: -1, FinalScores: [2]int{100, 100}}
	s.mockMatchService.EXPECT().
		GetMatchByChannel(gomock.Any(), gomock.Any()).
		Return(&matchService.GetMatchOutput{Match: m, Snapshot: engine.TakeSnapshot(m)}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandBoard))
	s.Empty(matchID)
	s.Empty(resp.Data.Components)
}

func (s *YahtzeeCommandTestSuite) TestBoard_NoMatch() {
	s.mockMatchService.EXPECT().
		GetMatchByChannel(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrMatchNotFound)
	s.expectFriendlyError(matchService.ErrMatchNotFound, "No dice here yet.")

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandBoard))
	s.Empty(matchID)
	s.Equal("No dice here yet.", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestHistory() {
	m := newTestMatch(s.T())
	s.mockMatchService.EXPECT().
		GetMatchByChannel(gomock.Any(), gomock.Any()).
		Return(&matchService.GetMatchOutput{Match: m, Snapshot: engine.TakeSnapshot(m)}, nil)
	s.mockMatchService.EXPECT().
		GetHistory(gomock.Any(), &matchService.GetHistoryInput{MatchID: testMatchID}).
		Return(&matchService.GetHistoryOutput{
			Records: []*models.ScoreRecord{
				{PlayerName: "Alice", Category: models.CategoryChance, Score: 21, Dice: [models.DiceCount]int{6, 5, 4, 3, 3}},
			},
		}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandHistory))
	s.Empty(matchID)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("1. Alice: Chance 21 [6 5 4 3 3]\n", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestHistory_Error() {
	m := newTestMatch(s.T())
	failure := errors.New("redis down")
	s.mockMatchService.EXPECT().
		GetMatchByChannel(gomock.Any(), gomock.Any()).
		Return(&matchService.GetMatchOutput{Match: m, Snapshot: engine.TakeSnapshot(m)}, nil)
	s.mockMatchService.EXPECT().
		GetHistory(gomock.Any(), gomock.Any()).
		Return(nil, failure)
	s.expectFriendlyError(failure, "Something went wrong!")

	resp, _ := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandHistory))
	s.Equal("Something went wrong!", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestAbandon() {
	s.mockMatchService.EXPECT().
		AbandonMatch(gomock.Any(), &matchService.AbandonMatchInput{
			ChannelID: s.channelID,
			PlayerID:  "alice-id",
		}).
		Return(&matchService.AbandonMatchOutput{MatchID: testMatchID}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandAbandon))
	s.Empty(matchID)
	s.Equal("Alice abandoned the match. No scores were recorded.", resp.Data.Content)
}

func (s *YahtzeeCommandTestSuite) TestAbandon_NotSeated() {
	s.mockMatchService.EXPECT().
		AbandonMatch(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrPlayerNotInMatch)
	s.expectFriendlyError(matchService.ErrPlayerNotInMatch, "Spectators don't get to touch the dice.")

	resp, _ := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandAbandon))
	s.Equal("Spectators don't get to touch the dice.", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestLeaderboard() {
	s.mockMatchService.EXPECT().
		GetLeaderboard(gomock.Any(), &matchService.GetLeaderboardInput{Limit: leaderboardLimit}).
		Return(&matchService.GetLeaderboardOutput{
			Entries: []matchService.LeaderboardEntry{
				{PlayerID: "alice-id", PlayerName: "Alice", BestScore: 210, GamesPlayed: 1, Wins: 1},
			},
		}, nil)

	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand(subcommandLeaderboard))
	s.Empty(matchID)
	s.Equal("Yahtzee High Scores", resp.Data.Embeds[0].Title)
	s.Equal("1. **Alice**: 210 (W1 L0 T0)\n", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestUnknownSubcommand() {
	resp, matchID := s.cmd.subcommandResponse(s.ctx, s.channelID, s.alice, subcommand("newsession"))
	s.Empty(matchID)
	s.Equal("I don't know that subcommand.", resp.Data.Embeds[0].Description)
}

func (s *YahtzeeCommandTestSuite) TestTrackBoardMessage() {
	s.mockMatchService.EXPECT().
		UpdateMatchMessage(gomock.Any(), &matchService.UpdateMatchMessageInput{
			MatchID:   testMatchID,
			MessageID: "message-id",
		}).
		Return(&matchService.UpdateMatchMessageOutput{Success: true}, nil)

	s.cmd.trackBoardMessage(s.ctx, testMatchID, "message-id")
}

func (s *YahtzeeCommandTestSuite) TestTrackBoardMessage_ErrorIsLogged() {
	s.mockMatchService.EXPECT().
		UpdateMatchMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	s.NotPanics(func() {
		s.cmd.trackBoardMessage(s.ctx, testMatchID, "message-id")
	})
}
