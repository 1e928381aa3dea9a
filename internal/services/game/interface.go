package game

import "context"

// Service defines the interface for game operations. Every call names the
// profile it acts for; calls for the same profile are applied one at a time.
type Service interface {
	// GetBoard returns the current round, dealing one if the profile has none
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)

	// StartRound deals a fresh round, replacing the current one
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// Tap applies a tap on a board value
	Tap(ctx context.Context, input *TapInput) (*TapOutput, error)

	// Reload clears streak and stars and deals a fresh round
	Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error)

	// ToggleDifficulty flips hard mode and reloads
	ToggleDifficulty(ctx context.Context, input *ToggleDifficultyInput) (*ToggleDifficultyOutput, error)

	// ToggleSounds flips the sound setting
	ToggleSounds(ctx context.Context, input *ToggleSoundsInput) (*ToggleSoundsOutput, error)

	// ChangeLanguage stores the numeral script, relabelling the board if the round has not started
	ChangeLanguage(ctx context.Context, input *ChangeLanguageInput) (*ChangeLanguageOutput, error)

	// GetStats returns aggregate statistics
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// ReadResultAloud speaks the result of the last won round
	ReadResultAloud(ctx context.Context, input *ReadResultAloudInput) (*ReadResultAloudOutput, error)

	// Quit drops the profile's current round
	Quit(ctx context.Context, input *QuitInput) (*QuitOutput, error)
}
