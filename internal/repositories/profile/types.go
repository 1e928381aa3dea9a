package profile

import (
	"errors"

	"github.com/KirkDiggler/eidetic/internal/models"
)

// ErrProfileNotFound is returned when a profile is not found
var ErrProfileNotFound = errors.New("profile not found")

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	ProfileID string
}

// DeleteProfileInput contains parameters for removing a profile
type DeleteProfileInput struct {
	ProfileID string
}
