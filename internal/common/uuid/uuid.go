// Package uuid issues round identifiers.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/eidetic/internal/common/uuid Generator

// Generator issues a fresh identifier for every round
type Generator interface {
	NewID() string
}

// Random issues version 4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewID returns a new random UUID string
func (r *Random) NewID() string {
	return uuid.NewString()
}

// Short trims an identifier to its first 8 characters for display
func Short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
