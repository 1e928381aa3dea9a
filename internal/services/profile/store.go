// Package profile exposes the player record as the store the game core talks to.
//
// A Store is loaded once per profile and written back after every mutation.
// It is not safe for concurrent use; the game service serializes access per profile.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/eidetic/internal/models"
	profileRepo "github.com/KirkDiggler/eidetic/internal/repositories/profile"
)

var (
	// ErrNilConfig is returned when Load is called without a config
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilRepository is returned when no repository is configured
	ErrNilRepository = errors.New("profile repository cannot be nil")

	// ErrEmptyProfileID is returned when no profile ID is configured
	ErrEmptyProfileID = errors.New("profile ID cannot be empty")
)

// Config holds configuration for a profile store
type Config struct {
	// Repository persists the profile
	Repository profileRepo.Repository

	// ProfileID selects the profile to load
	ProfileID string
}

// Store is the persisted player record of a single profile
type Store struct {
	repo    profileRepo.Repository
	profile *models.Profile
}

// Load reads the profile, falling back to first-launch defaults when it does not exist yet.
func Load(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	p, err := cfg.Repository.GetProfile(ctx, &profileRepo.GetProfileInput{
		ProfileID: cfg.ProfileID,
	})
	if err != nil {
		if !errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load profile %s: %w", cfg.ProfileID, err)
		}
		p = models.NewProfile(cfg.ProfileID)
	}

	return &Store{
		repo:    cfg.Repository,
		profile: p,
	}, nil
}

func (s *Store) save(ctx context.Context) error {
	if err := s.repo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: s.profile,
	}); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", s.profile.ID, err)
	}
	return nil
}

// ID returns the profile ID
func (s *Store) ID() string {
	return s.profile.ID
}

// Snapshot returns a copy of the record
func (s *Store) Snapshot() models.Profile {
	return *s.profile
}

// Language returns the selected numeral system
func (s *Store) Language() int {
	return s.profile.LanguageID
}

// SetLanguage selects a numeral system
func (s *Store) SetLanguage(ctx context.Context, languageID int) error {
	s.profile.LanguageID = languageID
	return s.save(ctx)
}

// Streak returns the current win streak
func (s *Store) Streak() int {
	return s.profile.CurrentStreak
}

// IncrementStreak adds one win to the streak
func (s *Store) IncrementStreak(ctx context.Context) error {
	s.profile.CurrentStreak++
	return s.save(ctx)
}

// ResetStreak sets the streak back to zero
func (s *Store) ResetStreak(ctx context.Context) error {
	s.profile.CurrentStreak = 0
	return s.save(ctx)
}

// FastestTime returns the record in seconds and whether one exists
func (s *Store) FastestTime() (int, bool) {
	return s.profile.FastestTimeSeconds, s.profile.HasFastestTime
}

// UpdateFastestTime records seconds when there is no record yet or it beats
// the current one strictly. It reports whether a new record was set.
func (s *Store) UpdateFastestTime(ctx context.Context, seconds int) (bool, error) {
	if s.profile.HasFastestTime && seconds >= s.profile.FastestTimeSeconds {
		return false, nil
	}

	s.profile.FastestTimeSeconds = seconds
	s.profile.HasFastestTime = true
	return true, s.save(ctx)
}

// StarsAvailable returns the remaining mistake allowance
func (s *Store) StarsAvailable() int {
	return s.profile.StarsAvailable
}

// DecrementStarsAvailable spends a star. It never goes below zero.
func (s *Store) DecrementStarsAvailable(ctx context.Context) error {
	if s.profile.StarsAvailable > 0 {
		s.profile.StarsAvailable--
	}
	return s.save(ctx)
}

// ResetStars restores the allowance for the current difficulty
func (s *Store) ResetStars(ctx context.Context) error {
	s.profile.StarsAvailable = s.profile.BaseStars()
	return s.save(ctx)
}

// SoundsOn reports whether tones and speech are enabled
func (s *Store) SoundsOn() bool {
	return s.profile.SoundsEnabled
}

// ToggleSounds flips the sound setting
func (s *Store) ToggleSounds(ctx context.Context) error {
	s.profile.SoundsEnabled = !s.profile.SoundsEnabled
	return s.save(ctx)
}

// HardModeOn reports whether hard mode is enabled
func (s *Store) HardModeOn() bool {
	return s.profile.HardModeEnabled
}

// ToggleDifficulty flips between easy and hard mode
func (s *Store) ToggleDifficulty(ctx context.Context) error {
	s.profile.HardModeEnabled = !s.profile.HardModeEnabled
	return s.save(ctx)
}

// Stats returns the aggregate counters
func (s *Store) Stats() models.Stats {
	return models.Stats{
		TotalGames: s.profile.TotalGames,
		TotalWins:  s.profile.TotalWins,
	}
}

// UpdateStats counts a finished round
func (s *Store) UpdateStats(ctx context.Context, won bool) error {
	s.profile.TotalGames++
	if won {
		s.profile.TotalWins++
	}
	return s.save(ctx)
}
