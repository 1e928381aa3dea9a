// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

var (
	// ErrUnknownStore is returned when STORE names an unsupported backend
	ErrUnknownStore = errors.New("unknown store")

	// ErrMissingToken is returned by ValidateBot when no Discord token is set
	ErrMissingToken = errors.New("DISCORD_TOKEN is required")
)

// Config is every setting either binary reads
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Store string `env:"STORE" envDefault:"redis"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"eidetic.db"`

	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// RandomSeed makes boards reproducible; zero seeds from the OS
	RandomSeed         int64 `env:"RANDOM_SEED" envDefault:"0"`
	MaxPlacementPasses int   `env:"MAX_PLACEMENT_PASSES" envDefault:"64"`

	// ProfileID is the local profile of the terminal client
	ProfileID string `env:"PROFILE_ID" envDefault:"local"`
}

// Load reads the given .env files, if present, then parses the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	switch cfg.Store {
	case StoreRedis, StoreSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}

	return &cfg, nil
}

// ValidateBot checks the settings the Discord bot cannot run without
func (c *Config) ValidateBot() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	return nil
}

// Level maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewJSONLogger returns a JSON logger at the configured level
func (c *Config) NewJSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// NewTextLogger returns a text logger at the configured level
func (c *Config) NewTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
