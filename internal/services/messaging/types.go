package messaging

import (
	"golang.org/x/text/language"

	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/random"
	"github.com/KirkDiggler/eidetic/internal/round"
)

// Config holds configuration for the messaging service
type Config struct {
	// Random picks between message variants; a fresh generator is used when nil
	Random random.Source

	// Locale controls number formatting; English when empty
	Locale language.Tag
}

// GetTapMessageInput contains parameters for the tap prompt
type GetTapMessageInput struct {
	Outcome        round.Outcome
	StarsRemaining int
}

// GetTapMessageOutput contains the tap prompt. Message is empty when
// the tap needs no prompt.
type GetTapMessageOutput struct {
	Message string
}

// GetRoundResultMessageInput contains the finished round
type GetRoundResultMessageInput struct {
	Summary *models.RoundSummary
}

// GetRoundResultMessageOutput contains the modal text
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
}

// GetStatsMessageInput contains the profile statistics
type GetStatsMessageInput struct {
	Stats          models.Stats
	FastestTime    int
	HasFastestTime bool
	Streak         int
}

// GetStatsMessageOutput contains the statistics dialog text
type GetStatsMessageOutput struct {
	Title   string
	Message string

	// Empty is set when there is nothing to display yet
	Empty bool
}

// GetReadAloudTextInput contains the finished round
type GetReadAloudTextInput struct {
	Summary *models.RoundSummary
}

// GetReadAloudTextOutput contains the text handed to the speech sink
type GetReadAloudTextOutput struct {
	Text string
}

// Mode identifies a toggled setting
type Mode string

const (
	ModeDifficulty Mode = "difficulty"
	ModeSound      Mode = "sound"
)

// GetModeMessageInput contains the toggled setting and its new value
type GetModeMessageInput struct {
	Mode Mode
	On   bool
}

// GetModeMessageOutput contains the notice
type GetModeMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains a user-friendly description
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
