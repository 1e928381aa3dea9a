// Package round implements the tap-in-order state machine for a single round.
//
// A round starts NotStarted with every label visible. The first correct tap
// (always 1) moves it to InProgress and hides the remaining labels. Tapping
// values in ascending order ends in Won; a mistake with no stars left ends in
// Lost. The machine is pure: it never touches persistence or feedback, the
// caller reacts to the returned Result.
package round

import (
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/eidetic/internal/models"
)

var (
	// ErrRoundOver is returned for taps after the round reached Won or Lost
	ErrRoundOver = errors.New("round is over")

	// ErrInvalidValue is returned for values that are not on the board
	ErrInvalidValue = errors.New("value not on board")

	// ErrNilBoard is returned when a round is created without a board
	ErrNilBoard = errors.New("board cannot be nil")
)

// Outcome classifies a tap
type Outcome string

const (
	// OutcomeAccepted is a correct, in-order tap
	OutcomeAccepted Outcome = "accepted"

	// OutcomeRejectedPreStart is a first tap on anything but 1. Nothing changes.
	OutcomeRejectedPreStart Outcome = "rejected_pre_start"

	// OutcomeForgiven is a mistake paid for with a star
	OutcomeForgiven Outcome = "forgiven"

	// OutcomeFatal is a mistake with no star left; the round is lost
	OutcomeFatal Outcome = "fatal"
)

// Result describes what a tap did
type Result struct {
	Outcome Outcome

	// Value is the tapped value
	Value int

	// Slot is where the tapped value sits
	Slot models.Slot

	// Expected is the next value the round waits for after this tap
	Expected int

	// Status is the round status after this tap
	Status models.RoundStatus

	// PuzzleModeActivated is set on the tap that started the round
	PuzzleModeActivated bool

	// Completed is set on the tap that won the round
	Completed bool

	// StarsRemaining is the star count after this tap
	StarsRemaining int
}

// Round is the mutable state of one play-through
type Round struct {
	id        string
	board     *models.Board
	status    models.RoundStatus
	expected  int
	startTime time.Time
	stars     int
	mistakes  int
	cleared   [models.MaxValue + 1]bool
}

// New deals a fresh round. stars is the mistake allowance for the round.
func New(id string, board *models.Board, stars int, startTime time.Time) (*Round, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	if stars < 0 {
		stars = 0
	}

	return &Round{
		id:        id,
		board:     board,
		status:    models.RoundStatusNotStarted,
		expected:  1,
		startTime: startTime,
		stars:     stars,
	}, nil
}

// Tap applies a tap on value.
func (r *Round) Tap(value int) (*Result, error) {
	if r.status.IsOver() {
		return nil, ErrRoundOver
	}

	slot, ok := r.board.SlotOf(value)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}

	result := &Result{
		Value: value,
		Slot:  slot,
	}

	switch {
	case value == r.expected:
		if r.status.IsNotStarted() {
			r.status = models.RoundStatusInProgress
			result.PuzzleModeActivated = true
		}
		r.cleared[value] = true
		r.expected++
		result.Outcome = OutcomeAccepted

		if r.expected > models.MaxValue {
			r.status = models.RoundStatusWon
			result.Completed = true
		}

	case r.status.IsNotStarted():
		result.Outcome = OutcomeRejectedPreStart

	case r.stars > 0:
		r.stars--
		r.mistakes++
		result.Outcome = OutcomeForgiven

	default:
		r.mistakes++
		r.status = models.RoundStatusLost
		result.Outcome = OutcomeFatal
	}

	result.Expected = r.expected
	result.Status = r.status
	result.StarsRemaining = r.stars

	return result, nil
}

// ID returns the round identifier
func (r *Round) ID() string { return r.id }

// Board returns the dealt board
func (r *Round) Board() *models.Board { return r.board }

// Status returns the current status
func (r *Round) Status() models.RoundStatus { return r.status }

// Expected returns the next value the round waits for; MaxValue+1 once won
func (r *Round) Expected() int { return r.expected }

// Started reports whether the first correct tap happened
func (r *Round) Started() bool { return !r.status.IsNotStarted() }

// StartTime returns when the round was dealt
func (r *Round) StartTime() time.Time { return r.startTime }

// StarsAvailable returns the remaining mistake allowance
func (r *Round) StarsAvailable() int { return r.stars }

// Mistakes returns how many wrong taps were made after the round started
func (r *Round) Mistakes() int { return r.mistakes }

// IsCleared reports whether value has already been tapped correctly
func (r *Round) IsCleared(value int) bool {
	if value < 1 || value > models.MaxValue {
		return false
	}
	return r.cleared[value]
}

// LabelsHidden reports whether puzzle mode is hiding uncleared labels
func (r *Round) LabelsHidden() bool {
	return r.Started()
}

// ElapsedSeconds returns the whole seconds between the round start and now.
func (r *Round) ElapsedSeconds(now time.Time) int {
	d := now.Sub(r.startTime)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
