// Package board deals a shuffled sequence onto the 6×3 grid.
//
// Slots are scanned in row-major order and each unclaimed slot is taken with
// probability one half, so boards come out sparse and irregular. Full scans
// repeat until every value is placed. Because that loop has no worst-case
// bound, the number of scans is capped; values still unplaced after the cap
// take the first unclaimed slots in row-major order.
package board

import (
	"fmt"

	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/random"
	"github.com/KirkDiggler/eidetic/internal/sequence"
)

// DefaultMaxPasses is the scan cap used when no option overrides it
const DefaultMaxPasses = 64

// acceptProbability is the chance an unclaimed candidate slot is taken
const acceptProbability = 0.5

type options struct {
	maxPasses int
}

// Option configures Place
type Option func(*options)

// WithMaxPasses caps the number of randomized full-grid scans. Values below 0
// are treated as 0, which places everything first-fit.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxPasses = n
	}
}

// Place assigns every value of seq to a distinct slot of the grid.
func Place(seq []int, src random.Source, opts ...Option) (*models.Board, error) {
	if err := sequence.Validate(seq); err != nil {
		return nil, fmt.Errorf("invalid sequence: %w", err)
	}

	o := options{maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		opt(&o)
	}

	b := &models.Board{
		Rows:       models.BoardRows,
		Cols:       models.BoardCols,
		Placements: make([]models.Placement, 0, len(seq)),
	}
	taken := make(map[models.Slot]bool, len(seq))

	k := 0
	for pass := 0; pass < o.maxPasses && k < len(seq); pass++ {
		for r := 0; r < b.Rows && k < len(seq); r++ {
			for c := 0; c < b.Cols && k < len(seq); c++ {
				if src.Float64() >= acceptProbability {
					continue
				}
				slot := models.Slot{Row: r, Col: c}
				if taken[slot] {
					continue
				}
				taken[slot] = true
				b.Placements = append(b.Placements, models.Placement{Slot: slot, Value: seq[k]})
				k++
			}
		}
	}

	// first-fit for whatever the randomized scans left over
	for r := 0; r < b.Rows && k < len(seq); r++ {
		for c := 0; c < b.Cols && k < len(seq); c++ {
			slot := models.Slot{Row: r, Col: c}
			if taken[slot] {
				continue
			}
			taken[slot] = true
			b.Placements = append(b.Placements, models.Placement{Slot: slot, Value: seq[k]})
			k++
		}
	}

	return b, nil
}
