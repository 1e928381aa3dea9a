package game

import (
	"log/slog"

	"github.com/KirkDiggler/eidetic/internal/common/clock"
	"github.com/KirkDiggler/eidetic/internal/common/uuid"
	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/random"
	profileRepo "github.com/KirkDiggler/eidetic/internal/repositories/profile"
	"github.com/KirkDiggler/eidetic/internal/round"
	"github.com/KirkDiggler/eidetic/internal/services/messaging"
)

// HiddenLabel replaces uncleared labels once the round has started
const HiddenLabel = "?"

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	ProfileRepo profileRepo.Repository

	// Service dependencies
	Messaging     messaging.Service
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// Feedback is the default sink; a TapInput may carry its own
	Feedback feedback.Sink

	// SpeechReady reports whether the speech engine is up; nil means always
	SpeechReady func() bool

	Logger *slog.Logger

	// MaxPlacementPasses caps the randomized board scans; board.DefaultMaxPasses when zero
	MaxPlacementPasses int
}

// SlotView is one occupied slot as a front end should draw it
type SlotView struct {
	Slot  models.Slot
	Value int

	// Label is the glyph to show; empty once cleared, HiddenLabel in puzzle mode
	Label string

	Cleared bool
	Hidden  bool
}

// BoardView is a render-ready snapshot of a profile's round
type BoardView struct {
	RoundID string
	Rows    int
	Cols    int

	// Slots are the occupied slots in row-major order
	Slots []SlotView

	Status         models.RoundStatus
	Expected       int
	StarsAvailable int

	HardMode   bool
	SoundsOn   bool
	LanguageID int
	Streak     int
}

// At returns the slot view at slot, if occupied
func (v *BoardView) At(slot models.Slot) (SlotView, bool) {
	for _, sv := range v.Slots {
		if sv.Slot == slot {
			return sv, true
		}
	}
	return SlotView{}, false
}

// GetBoardInput contains parameters for fetching the board
type GetBoardInput struct {
	ProfileID string
}

// GetBoardOutput contains the current board
type GetBoardOutput struct {
	Board *BoardView
}

// StartRoundInput contains parameters for dealing a round
type StartRoundInput struct {
	ProfileID string
}

// StartRoundOutput contains the fresh board
type StartRoundOutput struct {
	Board *BoardView
}

// TapInput contains parameters for a tap
type TapInput struct {
	ProfileID string

	// RoundID is the round the tapped board belongs to; empty skips the check
	RoundID string

	Value int

	// Feedback overrides the default sink for this tap
	Feedback feedback.Sink
}

// TapOutput contains the result of a tap
type TapOutput struct {
	Result *round.Result
	Board  *BoardView

	// Prompt is the short notice for the tap, e.g. "Please start with 1"
	Prompt string

	// Summary is set on the tap that ended the round
	Summary *models.RoundSummary

	// ResultTitle and ResultMessage are the end-of-round modal text
	ResultTitle   string
	ResultMessage string
}

// ReloadInput contains parameters for reloading
type ReloadInput struct {
	ProfileID string
}

// ReloadOutput contains the fresh board
type ReloadOutput struct {
	Board *BoardView
}

// ToggleDifficultyInput contains parameters for toggling difficulty
type ToggleDifficultyInput struct {
	ProfileID string
}

// ToggleDifficultyOutput contains the new mode and the reloaded board
type ToggleDifficultyOutput struct {
	HardMode bool
	Message  string
	Board    *BoardView
}

// ToggleSoundsInput contains parameters for toggling sounds
type ToggleSoundsInput struct {
	ProfileID string
}

// ToggleSoundsOutput contains the new sound setting
type ToggleSoundsOutput struct {
	SoundsOn bool
	Message  string
}

// ChangeLanguageInput contains parameters for changing the numeral script
type ChangeLanguageInput struct {
	ProfileID  string
	LanguageID int
}

// ChangeLanguageOutput contains the board after the change
type ChangeLanguageOutput struct {
	// Relabeled is false when the round had already started; the new
	// script then applies from the next round
	Relabeled bool
	Board     *BoardView
}

// GetStatsInput contains parameters for fetching statistics
type GetStatsInput struct {
	ProfileID string
}

// GetStatsOutput contains aggregate statistics and their display text
type GetStatsOutput struct {
	Stats          models.Stats
	FastestTime    int
	HasFastestTime bool
	Streak         int

	// Empty is set when there is nothing to display
	Empty   bool
	Title   string
	Message string
}

// ReadResultAloudInput contains parameters for reading the result aloud
type ReadResultAloudInput struct {
	ProfileID string

	// RoundID is the round whose result is requested; empty means the latest
	RoundID string

	Feedback feedback.Sink
}

// ReadResultAloudOutput contains the spoken text
type ReadResultAloudOutput struct {
	Text string

	// Spoken is false when sounds are off and nothing was said
	Spoken bool
}

// QuitInput contains parameters for quitting
type QuitInput struct {
	ProfileID string
}

// QuitOutput is empty
type QuitOutput struct{}
