package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/fetchbot/internal/validation"
)

var configKeys = []string{
	"TELEGRAM_BOT_TOKEN", "DOWNLOAD_DIR", "DATA_DIR", "MAX_CONCURRENT_DOWNLOADS",
	"YTDLP_PATH", "CLEANUP_SCHEDULE", "SUPPORTED_DOMAINS", "ACTION_LOG_PATH",
	"ADMIN_ADDR", "ADMIN_USER", "ADMIN_PASSWORD_HASH", "ADMIN_BEHIND_PROXY",
	"LOG_LEVEL",
}

// cleanEnv clears every config variable and points ENV_FILE at a file that
// does not exist, so a developer's .env cannot leak into the test.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "./downloads", cfg.DownloadDir)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 5, cfg.MaxConcurrent)
	assert.Equal(t, "yt-dlp", cfg.YtDlpPath)
	assert.Equal(t, "0 0 * * *", cfg.CleanupSchedule)
	assert.Equal(t, validation.DefaultSupportedDomains, cfg.SupportedDomains)
	assert.Equal(t, filepath.Join("./data", "actions.log"), cfg.ActionLogPath)
	assert.False(t, cfg.AdminEnabled())
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingToken(t *testing.T) {
	cleanEnv(t)

	_, err := Load()
	assert.ErrorContains(t, err, "TELEGRAM_BOT_TOKEN is required")
}

func TestLoad_Overrides(t *testing.T) {
	cleanEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("DATA_DIR", "/var/lib/fetchbot")
	t.Setenv("MAX_CONCURRENT_DOWNLOADS", "2")
	t.Setenv("SUPPORTED_DOMAINS", "YouTube.com, vimeo.com ,")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CLEANUP_SCHEDULE", "@hourly")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxConcurrent)
	assert.Equal(t, []string{"youtube.com", "vimeo.com"}, cfg.SupportedDomains)
	assert.Equal(t, "/var/lib/fetchbot/actions.log", cfg.ActionLogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "@hourly", cfg.CleanupSchedule)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	for _, v := range []string{"abc", "0", "-3"} {
		t.Run(v, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
			t.Setenv("MAX_CONCURRENT_DOWNLOADS", v)

			_, err := Load()
			assert.ErrorContains(t, err, "MAX_CONCURRENT_DOWNLOADS")
		})
	}
}

func TestLoad_Admin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("requires hash", func(t *testing.T) {
		cleanEnv(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
		t.Setenv("ADMIN_ADDR", ":9090")

		_, err := Load()
		assert.ErrorContains(t, err, "ADMIN_PASSWORD_HASH is required")
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		cleanEnv(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
		t.Setenv("ADMIN_ADDR", ":9090")
		t.Setenv("ADMIN_PASSWORD_HASH", "plaintext")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid ADMIN_PASSWORD_HASH")
	})

	t.Run("enabled", func(t *testing.T) {
		cleanEnv(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
		t.Setenv("ADMIN_ADDR", "127.0.0.1:9090")
		t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
		t.Setenv("ADMIN_BEHIND_PROXY", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.AdminEnabled())
		assert.True(t, cfg.AdminBehindProxy)
	})
}

func TestLoad_EnvFile(t *testing.T) {
	cleanEnv(t)
	envFile := filepath.Join(t.TempDir(), "bot.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TELEGRAM_BOT_TOKEN=from-file\nYTDLP_PATH=/opt/yt-dlp\n"), 0600))
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("YTDLP_PATH", "/usr/local/bin/yt-dlp")
	t.Cleanup(func() { _ = os.Unsetenv("TELEGRAM_BOT_TOKEN") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.BotToken)
	assert.Equal(t, "/usr/local/bin/yt-dlp", cfg.YtDlpPath, "environment wins over the file")
}
