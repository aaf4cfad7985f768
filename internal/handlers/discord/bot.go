package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dicegame/internal/engine"
	"github.com/KirkDiggler/dicegame/internal/models"
	matchService "github.com/KirkDiggler/dicegame/internal/services/match"
	"github.com/KirkDiggler/dicegame/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DefaultInteractionTimeout bounds the work done for one interaction.
// Discord drops responses that take longer than three seconds.
const DefaultInteractionTimeout = 3 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	matchService     matchService.Service
	messagingService messaging.Service
	config           *Config
	log              zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// InteractionTimeout bounds each interaction; 0 means the default
	InteractionTimeout time.Duration

	MatchService     matchService.Service
	MessagingService messaging.Service

	// Logger is optional
	Logger *zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.InteractionTimeout < 0 {
		return nil, errors.New("interaction timeout cannot be negative")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "discord").Logger()
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		matchService:     cfg.MatchService,
		messagingService: cfg.MessagingService,
		config:           cfg,
		log:              logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	yahtzeeCmd := NewYahtzeeCommand(b.matchService, b.messagingService, b.log)
	if err := b.RegisterCommand(yahtzeeCmd); err != nil {
		return fmt.Errorf("failed to register yahtzee command: %w", err)
	}

	b.log.Info().Msg("Bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Error().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("Failed to delete command")
		} else {
			b.log.Debug().Str("command", cmdName).Str("command_id", cmdID).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered
// for the configured guild, or globally when no guild is set.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("Registered command")

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

func (b *Bot) interactionTimeout() time.Duration {
	if b.config == nil || b.config.InteractionTimeout == 0 {
		return DefaultInteractionTimeout
	}
	return b.config.InteractionTimeout
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), b.interactionTimeout())
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(ctx, s, i); err != nil {
				b.log.Error().Err(err).Str("command", name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(ctx, s, i); err != nil {
			b.log.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("Error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks and the category menu
func (b *Bot) handleComponentInteraction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	resp, match := b.componentResponse(ctx, data.CustomID, data.Values, interactionUser(i))
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		return fmt.Errorf("failed to respond to component: %w", err)
	}

	if match != nil && i.Message != nil {
		b.syncBoardMessage(s, match, i.Message.ID, resp.Data)
	}
	return nil
}

// componentResponse runs the action behind a component and builds the reply.
// The match is returned when the board changed.
func (b *Bot) componentResponse(ctx context.Context, customID string, values []string, user matchService.PlayerInput) (*discordgo.InteractionResponse, *models.Match) {
	action, err := parseCustomID(customID)
	if err != nil {
		b.log.Warn().Err(err).Str("player_id", user.ID).Msg("Unknown component")
		return errorResponse("That button doesn't belong to any match I know."), nil
	}

	switch action.Kind {
	case ButtonRollDice:
		return b.rollResponse(ctx, action.MatchID, user)
	case ButtonHoldDie:
		return b.holdResponse(ctx, action.MatchID, action.DieIndex, user)
	default:
		if len(values) == 0 {
			return b.userErrorResponse(ctx, engine.ErrInvalidCategory), nil
		}
		category, err := models.ParseCategory(values[0])
		if err != nil {
			return b.userErrorResponse(ctx, engine.ErrInvalidCategory), nil
		}
		return b.scoreResponse(ctx, action.MatchID, category, user)
	}
}

func (b *Bot) rollResponse(ctx context.Context, matchID string, user matchService.PlayerInput) (*discordgo.InteractionResponse, *models.Match) {
	output, err := b.matchService.RollDice(ctx, &matchService.RollDiceInput{
		MatchID:  matchID,
		PlayerID: user.ID,
	})
	if err != nil {
		return b.userErrorResponse(ctx, err), nil
	}

	content := ""
	msg, err := b.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: output.PlayerName,
		Dice:       output.Roll.Dice,
		RollCount:  output.Roll.RollCount,
		MustScore:  output.MustScore,
	})
	if err != nil {
		b.log.Warn().Err(err).Str("match_id", matchID).Msg("Failed to get roll message")
	} else {
		content = fmt.Sprintf("**%s** %s", msg.Title, msg.Message)
	}

	return updateBoardResponse(output.Snapshot, content), output.Match
}

func (b *Bot) holdResponse(ctx context.Context, matchID string, index int, user matchService.PlayerInput) (*discordgo.InteractionResponse, *models.Match) {
	output, err := b.matchService.ToggleHold(ctx, &matchService.ToggleHoldInput{
		MatchID:  matchID,
		PlayerID: user.ID,
		DieIndex: index,
	})
	if err != nil {
		return b.userErrorResponse(ctx, err), nil
	}

	verb := "releases"
	if output.Held {
		verb = "holds"
	}
	content := fmt.Sprintf("%s %s die %d.", output.Snapshot.Current().Name, verb, index+1)

	return updateBoardResponse(output.Snapshot, content), output.Match
}

func (b *Bot) scoreResponse(ctx context.Context, matchID string, category models.Category, user matchService.PlayerInput) (*discordgo.InteractionResponse, *models.Match) {
	output, err := b.matchService.ChooseCategory(ctx, &matchService.ChooseCategoryInput{
		MatchID:  matchID,
		PlayerID: user.ID,
		Category: category,
	})
	if err != nil {
		return b.userErrorResponse(ctx, err), nil
	}

	content := ""
	msg, err := b.messagingService.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName:     output.Score.PlayerName,
		Category:       output.Score.Category,
		Score:          output.Score.Score,
		NextPlayerName: output.NextPlayerName,
	})
	if err != nil {
		b.log.Warn().Err(err).Str("match_id", matchID).Msg("Failed to get score message")
	} else {
		content = msg.Message
	}

	if output.Score.GameOver && output.Score.Result != nil {
		snap := output.Snapshot
		over, err := b.messagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
			PlayerNames: [2]string{snap.Players[0].Name, snap.Players[1].Name},
			FinalScores: output.Score.Result.FinalScores,
			Tie:         output.Score.Result.Tie,
			WinnerName:  output.Score.Result.WinnerName,
		})
		if err != nil {
			b.log.Warn().Err(err).Str("match_id", matchID).Msg("Failed to get game over message")
		} else {
			content = fmt.Sprintf("%s\n**%s** %s", content, over.Title, over.Message)
		}
	}

	return updateBoardResponse(output.Snapshot, content), output.Match
}

// userErrorResponse explains a rejected action to the user who tried it
func (b *Bot) userErrorResponse(ctx context.Context, err error) *discordgo.InteractionResponse {
	return userErrorResponse(ctx, b.messagingService, b.log, err)
}

// updateBoardResponse redraws the board in the message that was clicked
func updateBoardResponse(snap *engine.Snapshot, content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: renderBoard(snap, content),
	}
}

// syncBoardMessage edits the tracked board when a different copy of it was clicked
func (b *Bot) syncBoardMessage(s *discordgo.Session, m *models.Match, clickedID string, data *discordgo.InteractionResponseData) {
	if m.MessageID == "" || m.MessageID == clickedID || data == nil {
		return
	}

	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    m.ChannelID,
		ID:         m.MessageID,
		Content:    &data.Content,
		Embeds:     &data.Embeds,
		Components: &data.Components,
	})
	if err != nil {
		b.log.Warn().Err(err).Str("match_id", m.ID).Str("message_id", m.MessageID).Msg("Error updating board message")
	}
}
