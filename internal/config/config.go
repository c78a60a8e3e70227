package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const defaultSessionTTL = 24 * time.Hour

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string // console only; empty discards logs so the TUI stays clean

	RedisURL     string // empty uses in-memory storage
	SessionTTL   time.Duration
	ResumeGameID string
}

func Load() *Config {
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:      getEnv("LOG_FILE", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		SessionTTL:   parseDuration(getEnv("SESSION_TTL", ""), defaultSessionTTL),
		ResumeGameID: getEnv("RESUME_GAME_ID", ""),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
