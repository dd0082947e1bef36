// Package config provides configuration management functionality.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	APIURL      string // Base URL of the ETF data service
	SessionFile string // Path of the session-scoped key/value store
	LogFile     string // Log destination; empty discards log output
	LogLevel    string
}

// Load reads configuration from an optional .env file and the environment.
func Load() Config {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	return Config{
		APIURL:      getEnv("ETFDASH_API_URL", "http://localhost:8080"),
		SessionFile: getEnv("ETFDASH_SESSION_FILE", filepath.Join(os.TempDir(), "etfdash-session.json")),
		LogFile:     getEnv("ETFDASH_LOG_FILE", ""),
		LogLevel:    getEnv("ETFDASH_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
