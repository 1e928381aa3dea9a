// Package sequence produces the order in which values are dealt onto the board.
package sequence

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/random"
)

var (
	// ErrWrongLength is returned when a sequence does not hold exactly MaxValue values
	ErrWrongLength = errors.New("sequence has wrong length")

	// ErrValueOutOfRange is returned for values outside 1..MaxValue
	ErrValueOutOfRange = errors.New("sequence value out of range")

	// ErrDuplicateValue is returned when a value appears more than once
	ErrDuplicateValue = errors.New("sequence value repeated")
)

// Generate returns a uniformly random permutation of 1..MaxValue.
func Generate(src random.Source) []int {
	seq := make([]int, models.MaxValue)
	for i := range seq {
		seq[i] = i + 1
	}
	src.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}

// Validate reports whether seq is a permutation of 1..MaxValue.
func Validate(seq []int) error {
	if len(seq) != models.MaxValue {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongLength, len(seq), models.MaxValue)
	}

	var seen [models.MaxValue + 1]bool
	for i, v := range seq {
		if v < 1 || v > models.MaxValue {
			return fmt.Errorf("%w: %d at index %d", ErrValueOutOfRange, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d at index %d", ErrDuplicateValue, v, i)
		}
		seen[v] = true
	}
	return nil
}
