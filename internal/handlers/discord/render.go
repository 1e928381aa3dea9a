package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eidetic/internal/common/uuid"
	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/numerals"
	"github.com/KirkDiggler/eidetic/internal/services/game"
)

// Custom ID layout: eidetic:<action>[:<roundID>[:<value>]]
const (
	customIDPrefix = "eidetic"

	ActionTap        = "tap"
	ActionReload     = "reload"
	ActionSound      = "sound"
	ActionDifficulty = "difficulty"
	ActionStats      = "stats"
	ActionLanguage   = "language"
	ActionReplay     = "replay"
	ActionQuit       = "quit"
	ActionReadAloud  = "read"
)

const (
	colorPlaying = 0x3498db
	colorWon     = 0x00ff00
	colorLost    = 0xff0000

	// buttons per action row
	rowWidth = 5
)

// ErrBadCustomID is returned for component IDs this bot did not issue
var ErrBadCustomID = errors.New("unrecognized custom ID")

// componentID is a parsed custom ID
type componentID struct {
	Action  string
	RoundID string
	Value   int
}

func (c componentID) String() string {
	parts := []string{customIDPrefix, c.Action}
	if c.RoundID != "" {
		parts = append(parts, c.RoundID)
	}
	if c.Action == ActionTap {
		parts = append(parts, strconv.Itoa(c.Value))
	}
	return strings.Join(parts, ":")
}

func parseComponentID(id string) (componentID, error) {
	parts := strings.Split(id, ":")
	if len(parts) < 2 || parts[0] != customIDPrefix {
		return componentID{}, fmt.Errorf("%w: %s", ErrBadCustomID, id)
	}

	c := componentID{Action: parts[1]}
	if len(parts) > 2 {
		c.RoundID = parts[2]
	}
	if c.Action == ActionTap {
		if len(parts) != 4 {
			return componentID{}, fmt.Errorf("%w: %s", ErrBadCustomID, id)
		}
		v, err := strconv.Atoi(parts[3])
		if err != nil {
			return componentID{}, fmt.Errorf("%w: %s", ErrBadCustomID, id)
		}
		c.Value = v
	}
	return c, nil
}

// slotTag names the k-th occupied slot once labels are hidden, so the
// player can still match a button to its place on the grid
func slotTag(k int) string {
	return string(rune('A' + k))
}

// gridText draws the board as a fixed-width block
func gridText(board *game.BoardView) string {
	cells := make(map[models.Slot]string, len(board.Slots))
	for k, sv := range board.Slots {
		switch {
		case sv.Cleared:
			cells[sv.Slot] = "✓"
		case sv.Hidden:
			cells[sv.Slot] = slotTag(k)
		default:
			cells[sv.Slot] = sv.Label
		}
	}

	var b strings.Builder
	b.WriteString("```\n")
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			cell, ok := cells[models.Slot{Row: r, Col: c}]
			if !ok {
				cell = "·"
			}
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String()
}

func starsText(n int) string {
	if n <= 0 {
		return "none"
	}
	return strings.Repeat("⭐", n)
}

func modeText(hard bool) string {
	if hard {
		return "Hard"
	}
	return "Easy"
}

func languageName(id int) string {
	if sys, ok := numerals.Lookup(id); ok {
		return sys.Name
	}
	return strconv.Itoa(id)
}

// cueText turns recorded feedback into emoji shown with the response
func cueText(cues []feedback.Cue) string {
	var b strings.Builder
	for _, c := range cues {
		switch {
		case c.Speech != "":
			continue
		case c.Error:
			b.WriteString("⛔")
		case c.Tone == feedback.ToneVictory:
			b.WriteString("🎉")
		case c.Tone == feedback.ToneMistake:
			b.WriteString("💥")
		default:
			b.WriteString("🎵")
		}
	}
	return b.String()
}

func boardEmbed(board *game.BoardView, title string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: gridText(board),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Next", Value: nextText(board), Inline: true},
			{Name: "Stars", Value: starsText(board.StarsAvailable), Inline: true},
			{Name: "Streak", Value: strconv.Itoa(board.Streak), Inline: true},
			{Name: "Mode", Value: modeText(board.HardMode), Inline: true},
			{Name: "Numerals", Value: languageName(board.LanguageID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Round " + uuid.Short(board.RoundID),
		},
	}
}

func nextText(board *game.BoardView) string {
	if board.Status.IsOver() {
		return "-"
	}
	if board.Status.IsNotStarted() {
		return numerals.Glyph(board.LanguageID, 1)
	}
	return "?"
}

// slotButtons lays the occupied slots out in reading order
func slotButtons(board *game.BoardView) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent

	for k, sv := range board.Slots {
		btn := discordgo.Button{
			Style: discordgo.SecondaryButton,
			CustomID: componentID{
				Action:  ActionTap,
				RoundID: board.RoundID,
				Value:   sv.Value,
			}.String(),
		}
		switch {
		case sv.Cleared:
			btn.Label = "✓"
			btn.Style = discordgo.SuccessButton
			btn.Disabled = true
		case sv.Hidden:
			btn.Label = slotTag(k)
			btn.Style = discordgo.PrimaryButton
		default:
			btn.Label = sv.Label
		}
		if board.Status.IsOver() {
			btn.Disabled = true
		}

		row = append(row, btn)
		if len(row) == rowWidth {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}

func menuRow(board *game.BoardView) discordgo.ActionsRow {
	sound := "Sound off"
	soundEmoji := "🔇"
	if !board.SoundsOn {
		sound = "Sound on"
		soundEmoji = "🔊"
	}
	difficulty := "Hard mode"
	if board.HardMode {
		difficulty = "Easy mode"
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Reload",
				Style:    discordgo.DangerButton,
				CustomID: componentID{Action: ActionReload}.String(),
				Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
			},
			discordgo.Button{
				Label:    sound,
				Style:    discordgo.SecondaryButton,
				CustomID: componentID{Action: ActionSound}.String(),
				Emoji:    &discordgo.ComponentEmoji{Name: soundEmoji},
			},
			discordgo.Button{
				Label:    difficulty,
				Style:    discordgo.SecondaryButton,
				CustomID: componentID{Action: ActionDifficulty}.String(),
			},
			discordgo.Button{
				Label:    "Stats",
				Style:    discordgo.SecondaryButton,
				CustomID: componentID{Action: ActionStats}.String(),
				Emoji:    &discordgo.ComponentEmoji{Name: "📊"},
			},
		},
	}
}

func languageRow(current int) discordgo.ActionsRow {
	var options []discordgo.SelectMenuOption
	for _, sys := range numerals.Languages() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       sys.Name,
			Value:       strconv.Itoa(sys.ID),
			Description: numerals.Glyph(sys.ID, 1) + " " + numerals.Glyph(sys.ID, 2) + " " + numerals.Glyph(sys.ID, 3),
			Default:     sys.ID == current,
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    componentID{Action: ActionLanguage}.String(),
				Placeholder: "Change numerals",
				Options:     options,
			},
		},
	}
}

// renderBoard builds the message for a round in play
func renderBoard(board *game.BoardView, notice string, cues []feedback.Cue) *discordgo.InteractionResponseData {
	content := strings.TrimSpace(cueText(cues) + " " + notice)

	components := slotButtons(board)
	components = append(components, menuRow(board), languageRow(board.LanguageID))

	return &discordgo.InteractionResponseData{
		Content:    content,
		Embeds:     []*discordgo.MessageEmbed{boardEmbed(board, "Tap 1 to 9 in order", colorPlaying)},
		Components: components,
		Flags:      discordgo.MessageFlagsEphemeral,
	}
}

// renderResult builds the end-of-round modal
func renderResult(out *game.TapOutput, cues []feedback.Cue) *discordgo.InteractionResponseData {
	color := colorLost
	if out.Summary.Won {
		color = colorWon
	}

	embed := boardEmbed(out.Board, out.ResultTitle, color)
	embed.Description = out.ResultMessage + "\n" + embed.Description

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Replay",
			Style:    discordgo.PrimaryButton,
			CustomID: componentID{Action: ActionReplay, RoundID: out.Summary.RoundID}.String(),
			Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
		},
		discordgo.Button{
			Label:    "Quit",
			Style:    discordgo.SecondaryButton,
			CustomID: componentID{Action: ActionQuit}.String(),
		},
	}
	if out.Summary.Won {
		buttons = append(buttons, discordgo.Button{
			Label:    "Read result aloud",
			Style:    discordgo.SecondaryButton,
			CustomID: componentID{Action: ActionReadAloud, RoundID: out.Summary.RoundID}.String(),
			Emoji:    &discordgo.ComponentEmoji{Name: "🗣️"},
			Disabled: !out.Board.SoundsOn,
		})
	}

	return &discordgo.InteractionResponseData{
		Content:    cueText(cues),
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
		Flags:      discordgo.MessageFlagsEphemeral,
	}
}

// renderStats builds the statistics message
func renderStats(out *game.GetStatsOutput) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       out.Title,
				Description: out.Message,
				Color:       colorPlaying,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}
