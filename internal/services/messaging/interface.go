package messaging

import "context"

// Service composes every piece of user-facing text
type Service interface {
	// GetTapMessage returns the prompt shown after a tap, if any
	GetTapMessage(ctx context.Context, input *GetTapMessageInput) (*GetTapMessageOutput, error)

	// GetRoundResultMessage returns the title and body of the end-of-round modal
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetStatsMessage returns the statistics dialog text
	GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error)

	// GetReadAloudText returns what is spoken when the result is read aloud
	GetReadAloudText(ctx context.Context, input *GetReadAloudTextInput) (*GetReadAloudTextOutput, error)

	// GetModeMessage returns the notice shown after toggling difficulty or sound
	GetModeMessage(ctx context.Context, input *GetModeMessageInput) (*GetModeMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
