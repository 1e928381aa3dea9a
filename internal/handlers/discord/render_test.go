package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/services/game"
)

func testBoard(status models.RoundStatus) *game.BoardView {
	b := &game.BoardView{
		RoundID:        "0123abcd-0000-4000-8000-000000000000",
		Rows:           models.BoardRows,
		Cols:           models.BoardCols,
		Status:         status,
		StarsAvailable: 2,
		SoundsOn:       true,
	}
	for v := 1; v <= models.MaxValue; v++ {
		sv := game.SlotView{
			Slot:  models.Slot{Row: (v - 1) / 3, Col: (v - 1) % 3},
			Value: v,
			Label: string(rune('0' + v)),
		}
		if !status.IsNotStarted() {
			sv.Hidden = true
			sv.Label = game.HiddenLabel
		}
		b.Slots = append(b.Slots, sv)
	}
	return b
}

func TestComponentIDRoundTrip(t *testing.T) {
	id := componentID{Action: ActionTap, RoundID: "round-1", Value: 7}

	parsed, err := parseComponentID(id.String())

	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.Equal(t, "eidetic:tap:round-1:7", id.String())
	assert.Equal(t, "eidetic:reload", componentID{Action: ActionReload}.String())
}

func TestParseComponentIDRejectsForeignIDs(t *testing.T) {
	for _, id := range []string{"", "roll_dice", "eidetic", "eidetic:tap:round-1", "eidetic:tap:round-1:x"} {
		_, err := parseComponentID(id)
		assert.True(t, errors.Is(err, ErrBadCustomID), id)
	}
}

func TestRenderBoardLayout(t *testing.T) {
	data := renderBoard(testBoard(models.RoundStatusNotStarted), "Please start with 1", []feedback.Cue{{Error: true}})

	// two rows of slot buttons, the menu and the language select
	require.Len(t, data.Components, 4)
	first := data.Components[0].(discordgo.ActionsRow)
	second := data.Components[1].(discordgo.ActionsRow)
	assert.Len(t, first.Components, 5)
	assert.Len(t, second.Components, 4)

	btn := first.Components[0].(discordgo.Button)
	assert.Equal(t, "1", btn.Label)
	assert.Equal(t, "eidetic:tap:0123abcd-0000-4000-8000-000000000000:1", btn.CustomID)

	assert.Equal(t, "⛔ Please start with 1", data.Content)
	assert.Equal(t, "Round 0123abcd", data.Embeds[0].Footer.Text)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
}

func TestRenderBoardHidesLabelsBehindTags(t *testing.T) {
	board := testBoard(models.RoundStatusInProgress)
	board.Slots[0].Cleared = true
	board.Slots[0].Hidden = false
	board.Slots[0].Label = ""

	data := renderBoard(board, "", nil)

	row := data.Components[0].(discordgo.ActionsRow)
	cleared := row.Components[0].(discordgo.Button)
	assert.True(t, cleared.Disabled)
	assert.Equal(t, "✓", cleared.Label)
	assert.Equal(t, "B", row.Components[1].(discordgo.Button).Label)
	assert.NotContains(t, data.Embeds[0].Description, "5")
}

func TestGridText(t *testing.T) {
	grid := gridText(testBoard(models.RoundStatusNotStarted))

	assert.Contains(t, grid, " 1  2  3 \n")
	assert.Contains(t, grid, " ·  ·  · \n")
}

func TestRenderResultReadAloudFollowsSound(t *testing.T) {
	board := testBoard(models.RoundStatusWon)
	out := &game.TapOutput{
		Board:       board,
		Summary:     &models.RoundSummary{RoundID: board.RoundID, Won: true},
		ResultTitle: "🤩 You win!",
	}

	data := renderResult(out, []feedback.Cue{{Tone: 9}, {Tone: feedback.ToneVictory, Long: true}})
	buttons := data.Components[0].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 3)
	assert.False(t, buttons[2].(discordgo.Button).Disabled)
	assert.Equal(t, "🎵🎉", data.Content)

	board.SoundsOn = false
	data = renderResult(out, nil)
	buttons = data.Components[0].(discordgo.ActionsRow).Components
	assert.True(t, buttons[2].(discordgo.Button).Disabled)
}

func TestRenderResultLossHasNoReadAloud(t *testing.T) {
	board := testBoard(models.RoundStatusLost)
	out := &game.TapOutput{
		Board:   board,
		Summary: &models.RoundSummary{RoundID: board.RoundID},
	}

	data := renderResult(out, nil)

	assert.Len(t, data.Components[0].(discordgo.ActionsRow).Components, 2)
	assert.Equal(t, colorLost, data.Embeds[0].Color)
}

type fakeSender struct {
	sent []*discordgo.MessageSend
	err  error
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, data)
	return &discordgo.Message{}, f.err
}

func TestSpeakerSendsTTS(t *testing.T) {
	sender := &fakeSender{}
	spk := newSpeaker(sender, "channel-1", func() bool { return true }, nil)

	spk.PlayTone(3, false)
	spk.Say("You took 4 seconds.")

	require.Len(t, sender.sent, 1)
	assert.True(t, sender.sent[0].TTS)
	assert.Equal(t, "You took 4 seconds.", sender.sent[0].Content)
	assert.Len(t, spk.Cues, 2)
}

func TestSpeakerWaitsForGateway(t *testing.T) {
	sender := &fakeSender{}
	spk := newSpeaker(sender, "channel-1", func() bool { return false }, nil)

	spk.Say("hello")

	assert.Empty(t, sender.sent)
}
