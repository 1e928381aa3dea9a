package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eidetic/internal/services/game"
	"github.com/KirkDiggler/eidetic/internal/services/messaging"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	messaging   messaging.Service
	logger      *slog.Logger
	config      *Config

	// ready is set once the gateway session is open
	ready atomic.Bool
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	GameService game.Service
	Messaging   messaging.Service
	Logger      *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		logger:      logger.With("component", "discord"),
		config:      cfg,
	}

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleDisconnect)
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// SpeechReady reports whether TTS messages can be delivered
func (b *Bot) SpeechReady() bool {
	return b.ready.Load()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.ready.Store(true)
	b.logger.Info("gateway ready", "user", r.User.Username)
}

func (b *Bot) handleDisconnect(s *discordgo.Session, d *discordgo.Disconnect) {
	b.ready.Store(false)
	b.logger.Warn("gateway disconnected")
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewEideticCommand(b)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register eidetic command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Error("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	b.ready.Store(false)
	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, per guild when GuildID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		"command", cmd.GetName(),
		"id", createdCmd.ID,
		"guild_id", b.config.GuildID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("command failed", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("component interaction failed",
				"custom_id", i.MessageComponentData().CustomID,
				"error", err)
		}
	}
}

// handleComponentInteraction handles button clicks and the language menu
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	id, err := parseComponentID(data.CustomID)
	if err != nil {
		return err
	}

	userID := interactionUserID(i)
	if userID == "" {
		return errors.New("interaction has no user")
	}
	pid := profileID(userID)
	ctx := context.Background()

	switch id.Action {
	case ActionTap:
		return b.tap(ctx, s, i, pid, id)
	case ActionReload:
		return b.reload(ctx, s, i, pid)
	case ActionSound:
		return b.toggleSound(ctx, s, i, pid)
	case ActionDifficulty:
		return b.toggleDifficulty(ctx, s, i, pid)
	case ActionStats:
		return b.stats(ctx, s, i, pid)
	case ActionLanguage:
		if len(data.Values) == 0 {
			return nil
		}
		lang, err := strconv.Atoi(data.Values[0])
		if err != nil {
			return fmt.Errorf("bad language value %q: %w", data.Values[0], err)
		}
		return b.changeLanguage(ctx, s, i, pid, lang)
	case ActionReplay:
		return b.play(ctx, s, i, pid, true)
	case ActionQuit:
		return b.quit(ctx, s, i, pid)
	case ActionReadAloud:
		return b.readAloud(ctx, s, i, pid, id.RoundID)
	default:
		return fmt.Errorf("%w: %s", ErrBadCustomID, data.CustomID)
	}
}

func (b *Bot) newSpeaker(i *discordgo.InteractionCreate) *speaker {
	return newSpeaker(b.session, i.ChannelID, b.SpeechReady, b.logger)
}

// play shows the player's board, dealing a fresh one when fresh is set
func (b *Bot) play(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string, fresh bool) error {
	var board *game.BoardView
	if fresh {
		out, err := b.gameService.StartRound(ctx, &game.StartRoundInput{ProfileID: pid})
		if err != nil {
			return b.respondError(ctx, s, i, err)
		}
		board = out.Board
	} else {
		out, err := b.gameService.GetBoard(ctx, &game.GetBoardInput{ProfileID: pid})
		if err != nil {
			return b.respondError(ctx, s, i, err)
		}
		board = out.Board
	}

	return respondBoard(s, i, renderBoard(board, "", nil))
}

func (b *Bot) tap(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string, id componentID) error {
	spk := b.newSpeaker(i)
	out, err := b.gameService.Tap(ctx, &game.TapInput{
		ProfileID: pid,
		RoundID:   id.RoundID,
		Value:     id.Value,
		Feedback:  spk,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	if out.Summary != nil {
		return respondUpdate(s, i, renderResult(out, spk.Cues))
	}
	return respondUpdate(s, i, renderBoard(out.Board, out.Prompt, spk.Cues))
}

func (b *Bot) reload(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string) error {
	out, err := b.gameService.Reload(ctx, &game.ReloadInput{ProfileID: pid})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return respondBoard(s, i, renderBoard(out.Board, "Reloaded. Streak cleared.", nil))
}

func (b *Bot) toggleSound(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string) error {
	out, err := b.gameService.ToggleSounds(ctx, &game.ToggleSoundsInput{ProfileID: pid})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	if i.Type != discordgo.InteractionMessageComponent {
		return RespondWithEphemeralMessage(s, i, out.Message)
	}

	board, err := b.gameService.GetBoard(ctx, &game.GetBoardInput{ProfileID: pid})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return respondUpdate(s, i, renderBoard(board.Board, out.Message, nil))
}

func (b *Bot) toggleDifficulty(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string) error {
	out, err := b.gameService.ToggleDifficulty(ctx, &game.ToggleDifficultyInput{ProfileID: pid})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return respondBoard(s, i, renderBoard(out.Board, out.Message, nil))
}

func (b *Bot) changeLanguage(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string, lang int) error {
	out, err := b.gameService.ChangeLanguage(ctx, &game.ChangeLanguageInput{
		ProfileID:  pid,
		LanguageID: lang,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	notice := "Numerals: " + languageName(lang)
	if !out.Relabeled {
		notice += " (from the next round)"
	}

	if out.Board == nil || i.Type != discordgo.InteractionMessageComponent {
		return RespondWithEphemeralMessage(s, i, notice)
	}
	return respondUpdate(s, i, renderBoard(out.Board, notice, nil))
}

func (b *Bot) stats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string) error {
	out, err := b.gameService.GetStats(ctx, &game.GetStatsInput{ProfileID: pid})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return respond(s, i, renderStats(out))
}

func (b *Bot) quit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid string) error {
	if _, err := b.gameService.Quit(ctx, &game.QuitInput{ProfileID: pid}); err != nil {
		return b.respondError(ctx, s, i, err)
	}
	return respondUpdate(s, i, &discordgo.InteractionResponseData{
		Content:    "Thanks for playing! Use `/eidetic play` to start again.",
		Embeds:     []*discordgo.MessageEmbed{},
		Components: []discordgo.MessageComponent{},
	})
}

func (b *Bot) readAloud(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, pid, roundID string) error {
	out, err := b.gameService.ReadResultAloud(ctx, &game.ReadResultAloudInput{
		ProfileID: pid,
		RoundID:   roundID,
		Feedback:  b.newSpeaker(i),
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}
	if !out.Spoken {
		return RespondWithEphemeralMessage(s, i, "Sounds are off.")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// respondError turns a service error into an ephemeral explanation
func (b *Bot) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch {
	case errors.Is(err, game.ErrStaleRound):
		return RespondWithError(s, i, "Old board", "This board belongs to an earlier round. Use `/eidetic play` for your current one.")
	case errors.Is(err, game.ErrNoActiveRound):
		return RespondWithError(s, i, "No round", "You have no round in play. Use `/eidetic play` to start.")
	case errors.Is(err, game.ErrNoResult):
		return RespondWithError(s, i, "Nothing to read", "Only a won round can be read aloud.")
	case errors.Is(err, game.ErrUnknownLanguage):
		return RespondWithError(s, i, "Unknown numerals", err.Error())
	}

	msg, msgErr := b.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return errors.Join(err, msgErr)
	}
	if respErr := RespondWithError(s, i, msg.Title, msg.Message); respErr != nil {
		return errors.Join(err, respErr)
	}
	return err
}
