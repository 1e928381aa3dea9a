package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eidetic/internal/numerals"
)

// Subcommand names
const (
	SubcommandPlay       = "play"
	SubcommandStats      = "stats"
	SubcommandLanguage   = "language"
	SubcommandSound      = "sound"
	SubcommandDifficulty = "difficulty"
	SubcommandReload     = "reload"
)

// EideticCommand handles the /eidetic command
type EideticCommand struct {
	BaseCommand
	bot *Bot
}

// NewEideticCommand creates a new eidetic command handler
func NewEideticCommand(bot *Bot) *EideticCommand {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, sys := range numerals.Languages() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  sys.Name,
			Value: sys.ID,
		})
	}

	return &EideticCommand{
		BaseCommand: BaseCommand{
			Name:        "eidetic",
			Description: "Tap the numbers 1 to 9 in order, from memory",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandPlay,
					Description: "Show your board",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStats,
					Description: "Show your statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLanguage,
					Description: "Change the numerals on the board",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "numerals",
							Description: "Numeral script",
							Required:    true,
							Choices:     choices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSound,
					Description: "Turn sounds and read-aloud on or off",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDifficulty,
					Description: "Switch between easy and hard mode; starts a new round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReload,
					Description: "Clear your streak and start a new round",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the eidetic command
func (c *EideticCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID := interactionUserID(i)
	if userID == "" {
		return errors.New("interaction has no user")
	}
	pid := profileID(userID)
	ctx := context.Background()

	sub := data.Options[0]
	switch sub.Name {
	case SubcommandPlay:
		return c.bot.play(ctx, s, i, pid, false)
	case SubcommandStats:
		return c.bot.stats(ctx, s, i, pid)
	case SubcommandLanguage:
		if len(sub.Options) == 0 {
			return errors.New("language subcommand without numerals option")
		}
		return c.bot.changeLanguage(ctx, s, i, pid, int(sub.Options[0].IntValue()))
	case SubcommandSound:
		return c.bot.toggleSound(ctx, s, i, pid)
	case SubcommandDifficulty:
		return c.bot.toggleDifficulty(ctx, s, i, pid)
	case SubcommandReload:
		return c.bot.reload(ctx, s, i, pid)
	default:
		return errors.New("unknown subcommand")
	}
}
