// Package clock is the time seam used for round timing.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/eidetic/internal/common/clock Clock

// Clock supplies the current time. Rounds measure elapsed seconds as the
// difference of two readings.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock. Values keep their monotonic reading so the
// elapsed time of a round is unaffected by wall clock adjustments.
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current time
func (c *System) Now() time.Time {
	return time.Now()
}
