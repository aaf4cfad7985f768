package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/dicegame/internal/engine"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	"github.com/KirkDiggler/dicegame/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// errorResponse is only shown to the user who caused it
func errorResponse(errorMessage string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Oops",
					Description: errorMessage,
					Color:       colorError,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// userErrorResponse turns a service error into a friendly ephemeral reply.
// Rejected moves are expected and only logged at debug level.
func userErrorResponse(ctx context.Context, messagingService messaging.Service, log zerolog.Logger, err error) *discordgo.InteractionResponse {
	var matchErr matchService.MatchError
	var engineErr engine.EngineError
	if errors.As(err, &matchErr) || errors.As(err, &engineErr) {
		log.Debug().Err(err).Msg("Action rejected")
	} else {
		log.Error().Err(err).Msg("Action failed")
	}

	msg, msgErr := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		log.Warn().Err(msgErr).Msg("Failed to get error message")
		return errorResponse("Something went wrong! Try again later.")
	}
	return errorResponse(msg.Message)
}

// interactionUser returns who triggered the interaction, preferring the
// guild nickname
func interactionUser(i *discordgo.InteractionCreate) matchService.PlayerInput {
	if i.Member != nil && i.Member.User != nil {
		return matchService.PlayerInput{
			ID:   i.Member.User.ID,
			Name: displayName(i.Member, i.Member.User),
		}
	}
	if i.User != nil {
		return matchService.PlayerInput{
			ID:   i.User.ID,
			Name: displayName(nil, i.User),
		}
	}
	return matchService.PlayerInput{}
}

func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
