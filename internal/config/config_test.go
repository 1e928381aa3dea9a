package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "eidetic.db", cfg.SQLitePath)
	assert.Equal(t, 64, cfg.MaxPlacementPasses)
	assert.Equal(t, "local", cfg.ProfileID)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadFromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EIDETIC_TEST_ONLY=1\nGUILD_ID=guild-from-file\n"), 0o600))
	t.Setenv("GUILD_ID", "guild-from-env")
	t.Cleanup(func() { os.Unsetenv("EIDETIC_TEST_ONLY") })

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "guild-from-env", cfg.GuildID)
	assert.Equal(t, "1", os.Getenv("EIDETIC_TEST_ONLY"))
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE", "mongo")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestValidateBot(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.ValidateBot(), ErrMissingToken)

	cfg.DiscordToken = "token"
	assert.NoError(t, cfg.ValidateBot())
}

func TestLoggerHonorsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := (&Config{LogLevel: "warn"}).NewJSONLogger(buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
