package models

import (
	"time"
)

// RoundStatus represents the current state of a round
type RoundStatus string

const (
	// RoundStatusNotStarted indicates the board is dealt but 1 has not been tapped yet
	RoundStatusNotStarted RoundStatus = "not_started"

	// RoundStatusInProgress indicates the first correct tap happened and labels are hidden
	RoundStatusInProgress RoundStatus = "in_progress"

	// RoundStatusWon indicates every value was tapped in order
	RoundStatusWon RoundStatus = "won"

	// RoundStatusLost indicates a mistake was made with no stars left
	RoundStatusLost RoundStatus = "lost"
)

// IsNotStarted reports whether the round is waiting for its first tap
func (s RoundStatus) IsNotStarted() bool {
	return s == RoundStatusNotStarted
}

// IsInProgress reports whether puzzle mode is active
func (s RoundStatus) IsInProgress() bool {
	return s == RoundStatusInProgress
}

// IsOver reports whether the round reached a terminal state
func (s RoundStatus) IsOver() bool {
	return s == RoundStatusWon || s == RoundStatusLost
}

// RoundSummary is the end-of-round snapshot shown in the result modal
type RoundSummary struct {
	// RoundID is the round that finished
	RoundID string

	// Won is false for a lost round
	Won bool

	// ElapsedSeconds is the truncated time between round start and the last tap
	ElapsedSeconds int

	// PreviousRecord is the fastest time before this round, if any
	PreviousRecord int

	// HadPreviousRecord is false on a profile's first win
	HadPreviousRecord bool

	// NewRecord is set when this round beat the previous fastest time
	NewRecord bool

	// Streak is the streak after the round was applied
	Streak int

	// FinishedAt is when the final tap happened
	FinishedAt time.Time
}
