// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultModel is the live audio model used unless overridden.
const DefaultModel = "gemini-2.5-flash-native-audio-preview-09-2025"

// Config is the resolved process configuration. The API key may be empty at
// load time; connecting without one is a precondition failure surfaced by
// the tutoring engine, not a config-load error.
type Config struct {
	// APIKey is the service credential (GEMINI_API_KEY or GOOGLE_API_KEY).
	APIKey string

	Model string
	Voice string

	// Endpoint overrides the live service URL; empty means the default.
	Endpoint string

	ConnectTimeout time.Duration

	// BotAPIURL is the subscription API base; empty means free tier only.
	BotAPIURL string

	// UserID identifies the user against the subscription API.
	UserID int64

	// ExportDir receives downloaded lesson study sheets.
	ExportDir string

	// DumpWAVPath, when set, records tutor audio to a WAV file on disconnect.
	DumpWAVPath string

	LogLevel slog.Level
}

// LoadFromEnv resolves the configuration.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIKey:         envOr("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),
		Model:          envOr("TRENDOSPEAK_MODEL", DefaultModel),
		Voice:          envOr("TRENDOSPEAK_VOICE", "Kore"),
		Endpoint:       envOr("TRENDOSPEAK_ENDPOINT", ""),
		ConnectTimeout: envDurationOr("TRENDOSPEAK_CONNECT_TIMEOUT", 15*time.Second),
		BotAPIURL:      envOr("TRENDOSPEAK_BOT_API_URL", ""),
		UserID:         envInt64Or("TRENDOSPEAK_USER_ID", 0),
		ExportDir:      envOr("TRENDOSPEAK_EXPORT_DIR", "."),
		DumpWAVPath:    envOr("TRENDOSPEAK_DUMP_WAV", ""),
	}

	level, err := parseLogLevel(envOr("TRENDOSPEAK_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if cfg.Model == "" {
		return Config{}, fmt.Errorf("TRENDOSPEAK_MODEL must not be empty")
	}
	if cfg.Voice == "" {
		return Config{}, fmt.Errorf("TRENDOSPEAK_VOICE must not be empty")
	}
	if cfg.ConnectTimeout <= 0 {
		return Config{}, fmt.Errorf("TRENDOSPEAK_CONNECT_TIMEOUT must be > 0")
	}
	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("TRENDOSPEAK_LOG_LEVEL must be one of debug|info|warn|error")
}

func envOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt64Or(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func envDurationOr(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
