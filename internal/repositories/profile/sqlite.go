package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/eidetic/internal/models"

	// registers the "sqlite" driver with database/sql
	_ "modernc.org/sqlite"
)

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
	id                   TEXT PRIMARY KEY,
	fastest_time_seconds INTEGER NOT NULL DEFAULT 0,
	has_fastest_time     INTEGER NOT NULL DEFAULT 0,
	current_streak       INTEGER NOT NULL DEFAULT 0,
	stars_available      INTEGER NOT NULL DEFAULT 0,
	total_games          INTEGER NOT NULL DEFAULT 0,
	total_wins           INTEGER NOT NULL DEFAULT 0,
	sounds_enabled       INTEGER NOT NULL DEFAULT 1,
	hard_mode_enabled    INTEGER NOT NULL DEFAULT 0,
	language_id          INTEGER NOT NULL DEFAULT 0
);`

// SQLiteConfig holds configuration for the SQLite profile repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps everything in memory
	Path string
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite opens (and creates if needed) a SQLite-backed profile repository
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// a single local profile never needs more than one connection, and
	// ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, createProfilesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("can't create profiles table: %w", err)
	}

	return &sqliteRepository{db: db}, nil
}

// Close releases the database handle
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

// SaveProfile upserts a profile row
func (r *sqliteRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	p := input.Profile
	if p.ID == "" {
		return errors.New("profile ID cannot be empty")
	}

	q := `
	INSERT OR REPLACE INTO profiles (
		id, fastest_time_seconds, has_fastest_time, current_streak, stars_available,
		total_games, total_wins, sounds_enabled, hard_mode_enabled, language_id
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.FastestTimeSeconds, p.HasFastestTime, p.CurrentStreak, p.StarsAvailable,
		p.TotalGames, p.TotalWins, p.SoundsEnabled, p.HardModeEnabled, p.LanguageID,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile loads a profile row
func (r *sqliteRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	q := `
	SELECT id, fastest_time_seconds, has_fastest_time, current_streak, stars_available,
		total_games, total_wins, sounds_enabled, hard_mode_enabled, language_id
	FROM profiles WHERE id = ?;
	`
	var p models.Profile
	err := r.db.QueryRowContext(ctx, q, input.ProfileID).Scan(
		&p.ID, &p.FastestTimeSeconds, &p.HasFastestTime, &p.CurrentStreak, &p.StarsAvailable,
		&p.TotalGames, &p.TotalWins, &p.SoundsEnabled, &p.HardModeEnabled, &p.LanguageID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// DeleteProfile removes a profile row
func (r *sqliteRepository) DeleteProfile(ctx context.Context, input *DeleteProfileInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?;`, input.ProfileID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
