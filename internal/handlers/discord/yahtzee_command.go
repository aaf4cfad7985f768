package discord

import (
	"context"
	"fmt"

	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	"github.com/KirkDiggler/dicegame/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Subcommand and option names
const (
	subcommandStart       = "start"
	subcommandBoard       = "board"
	subcommandHistory     = "history"
	subcommandAbandon     = "abandon"
	subcommandLeaderboard = "leaderboard"

	optionOpponent = "opponent"

	leaderboardLimit = 10
)

// YahtzeeCommand handles the /yahtzee command
type YahtzeeCommand struct {
	BaseCommand
	matchService     matchService.Service
	messagingService messaging.Service
	log              zerolog.Logger
}

// NewYahtzeeCommand creates a new yahtzee command handler
func NewYahtzeeCommand(matchService matchService.Service, messagingService messaging.Service, log zerolog.Logger) *YahtzeeCommand {
	return &YahtzeeCommand{
		BaseCommand: BaseCommand{
			Name:        "yahtzee",
			Description: "Two-player Yahtzee",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStart,
					Description: "Challenge someone to a match in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        optionOpponent,
							Description: "Who you want to play against",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandBoard,
					Description: "Show the board of this channel's match",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandHistory,
					Description: "Show what has been scored in this channel's match",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandAbandon,
					Description: "Abandon the current match",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandLeaderboard,
					Description: "Show the best final scores",
				},
			},
		},
		matchService:     matchService,
		messagingService: messagingService,
		log:              log,
	}
}

// Handle processes a Discord interaction for the yahtzee command
func (c *YahtzeeCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	resp, boardMatchID := c.subcommandResponse(ctx, i.ChannelID, interactionUser(i), &data)
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		return fmt.Errorf("failed to respond to %s: %w", data.Options[0].Name, err)
	}

	// Remember the newly posted board so it can be kept current
	if boardMatchID != "" {
		msg, err := s.InteractionResponse(i.Interaction)
		if err != nil {
			c.log.Warn().Err(err).Str("match_id", boardMatchID).Msg("Failed to read board message")
			return nil
		}
		c.trackBoardMessage(ctx, boardMatchID, msg.ID)
	}

	return nil
}

// subcommandResponse builds the reply to a subcommand. The match ID is set
// when the reply posts a board.
func (c *YahtzeeCommand) subcommandResponse(ctx context.Context, channelID string, user matchService.PlayerInput, data *discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponse, string) {
	sub := data.Options[0]

	switch sub.Name {
	case subcommandStart:
		opponent, isBot := resolveUserOption(data, sub, optionOpponent)
		return c.startResponse(ctx, channelID, user, opponent, isBot)
	case subcommandBoard:
		return c.boardResponse(ctx, channelID)
	case subcommandHistory:
		return c.historyResponse(ctx, channelID), ""
	case subcommandAbandon:
		return c.abandonResponse(ctx, channelID, user), ""
	case subcommandLeaderboard:
		return c.leaderboardResponse(ctx), ""
	default:
		return errorResponse("I don't know that subcommand."), ""
	}
}

func (c *YahtzeeCommand) startResponse(ctx context.Context, channelID string, challenger, opponent matchService.PlayerInput, opponentIsBot bool) (*discordgo.InteractionResponse, string) {
	if opponent.ID == "" {
		return errorResponse("Pick someone to play against."), ""
	}
	if opponentIsBot {
		return errorResponse("Bots don't play Yahtzee. Pick a human opponent!"), ""
	}

	output, err := c.matchService.CreateMatch(ctx, &matchService.CreateMatchInput{
		ChannelID: channelID,
		Players:   [2]matchService.PlayerInput{challenger, opponent},
	})
	if err != nil {
		return userErrorResponse(ctx, c.messagingService, c.log, err), ""
	}

	c.log.Info().
		Str("match_id", output.Match.ID).
		Str("channel_id", channelID).
		Str("player_id", challenger.ID).
		Msg("Match started")

	content := fmt.Sprintf("<@%s> challenged <@%s> to Yahtzee!", challenger.ID, opponent.ID)
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: renderBoard(output.Snapshot, content),
	}, output.Match.ID
}

func (c *YahtzeeCommand) boardResponse(ctx context.Context, channelID string) (*discordgo.InteractionResponse, string) {
	output, err := c.matchService.GetMatchByChannel(ctx, &matchService.GetMatchByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return userErrorResponse(ctx, c.messagingService, c.log, err), ""
	}

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: renderBoard(output.Snapshot, ""),
	}

	// A finished board has nothing left to click
	if output.Snapshot.GameOver {
		return resp, ""
	}
	return resp, output.Match.ID
}

func (c *YahtzeeCommand) historyResponse(ctx context.Context, channelID string) *discordgo.InteractionResponse {
	matchOutput, err := c.matchService.GetMatchByChannel(ctx, &matchService.GetMatchByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return userErrorResponse(ctx, c.messagingService, c.log, err)
	}

	historyOutput, err := c.matchService.GetHistory(ctx, &matchService.GetHistoryInput{
		MatchID: matchOutput.Match.ID,
	})
	if err != nil {
		return userErrorResponse(ctx, c.messagingService, c.log, err)
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderHistory(historyOutput.Records)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}
}

func (c *YahtzeeCommand) abandonResponse(ctx context.Context, channelID string, user matchService.PlayerInput) *discordgo.InteractionResponse {
	output, err := c.matchService.AbandonMatch(ctx, &matchService.AbandonMatchInput{
		ChannelID: channelID,
		PlayerID:  user.ID,
	})
	if err != nil {
		return userErrorResponse(ctx, c.messagingService, c.log, err)
	}

	c.log.Info().
		Str("match_id", output.MatchID).
		Str("channel_id", channelID).
		Str("player_id", user.ID).
		Msg("Match abandoned")

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("%s abandoned the match. No scores were recorded.", user.Name),
		},
	}
}

func (c *YahtzeeCommand) leaderboardResponse(ctx context.Context) *discordgo.InteractionResponse {
	output, err := c.matchService.GetLeaderboard(ctx, &matchService.GetLeaderboardInput{
		Limit: leaderboardLimit,
	})
	if err != nil {
		return userErrorResponse(ctx, c.messagingService, c.log, err)
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderLeaderboard(output.Entries)},
		},
	}
}

func (c *YahtzeeCommand) trackBoardMessage(ctx context.Context, matchID, messageID string) {
	_, err := c.matchService.UpdateMatchMessage(ctx, &matchService.UpdateMatchMessageInput{
		MatchID:   matchID,
		MessageID: messageID,
	})
	if err != nil {
		c.log.Warn().Err(err).Str("match_id", matchID).Str("message_id", messageID).Msg("Failed to track board message")
	}
}

// resolveUserOption reads a user option of a subcommand, using the resolved
// data for the display name
func resolveUserOption(data *discordgo.ApplicationCommandInteractionData, sub *discordgo.ApplicationCommandInteractionDataOption, name string) (matchService.PlayerInput, bool) {
	for _, opt := range sub.Options {
		if opt.Name != name || opt.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}

		id := opt.UserValue(nil).ID

		var member *discordgo.Member
		var user *discordgo.User
		if data.Resolved != nil {
			member = data.Resolved.Members[id]
			user = data.Resolved.Users[id]
		}

		isBot := user != nil && user.Bot
		return matchService.PlayerInput{ID: id, Name: displayName(member, user)}, isBot
	}
	return matchService.PlayerInput{}, false
}
