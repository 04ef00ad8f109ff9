package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/fetchbot/internal/validation"
)

type Config struct {
	BotToken          string
	DownloadDir       string
	DataDir           string
	MaxConcurrent     int
	YtDlpPath         string
	CleanupSchedule   string
	SupportedDomains  []string
	ActionLogPath     string
	AdminAddr         string
	AdminUser         string
	AdminPasswordHash string
	AdminBehindProxy  bool
	LogLevel          string
}

// AdminEnabled reports whether the admin HTTP server should run.
func (c *Config) AdminEnabled() bool {
	return c.AdminAddr != ""
}

// Load reads the configuration from the environment. A .env file in the
// working directory, or the file named by ENV_FILE, is applied first without
// overriding variables that are already set.
func Load() (*Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	maxConcurrent, err := strconv.Atoi(getEnv("MAX_CONCURRENT_DOWNLOADS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CONCURRENT_DOWNLOADS: %w", err)
	}
	if maxConcurrent < 1 {
		return nil, fmt.Errorf("invalid MAX_CONCURRENT_DOWNLOADS: must be at least 1")
	}

	behindProxy, err := strconv.ParseBool(getEnv("ADMIN_BEHIND_PROXY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_BEHIND_PROXY: %w", err)
	}

	dataDir := getEnv("DATA_DIR", "./data")

	domains := validation.DefaultSupportedDomains
	if raw := os.Getenv("SUPPORTED_DOMAINS"); raw != "" {
		domains = validation.ParseDomainList(raw)
		if len(domains) == 0 {
			return nil, fmt.Errorf("invalid SUPPORTED_DOMAINS: no domains listed")
		}
	}

	cfg := &Config{
		BotToken:          botToken,
		DownloadDir:       getEnv("DOWNLOAD_DIR", "./downloads"),
		DataDir:           dataDir,
		MaxConcurrent:     maxConcurrent,
		YtDlpPath:         getEnv("YTDLP_PATH", "yt-dlp"),
		CleanupSchedule:   getEnv("CLEANUP_SCHEDULE", "0 0 * * *"),
		SupportedDomains:  domains,
		ActionLogPath:     getEnv("ACTION_LOG_PATH", filepath.Join(dataDir, "actions.log")),
		AdminAddr:         os.Getenv("ADMIN_ADDR"),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminBehindProxy:  behindProxy,
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.AdminEnabled() {
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required when ADMIN_ADDR is set")
		}
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid ADMIN_PASSWORD_HASH: %w", err)
		}
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
