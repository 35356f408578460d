// internal/config/config.go
//
// Environment-driven configuration with .env support for development.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backends for the statistics store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Answer-selection modes.
const (
	ModeRotate = "rotate" // persisted rotating word tracker
	ModeDaily  = "daily"  // deterministic date-based pick
)

type Config struct {
	LogLevel     string // zerolog level name
	AnswersFile  string // optional answers list path (embedded default otherwise)
	AllowedFile  string // optional allowed-guess list path
	StatsBackend string // "file" or "sqlite"
	StatsPath    string // stats file path (file backend)
	DBPath       string // sqlite database path (sqlite backend)
	ErrorLogPath string // append-only error sink
	GameMode     string // "rotate" or "daily"
	DailySalt    string // salt for daily word selection
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing.
func Load() Config {
	// Ignore error so the game still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		LogLevel:     envOr("LOG_LEVEL", "info"),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),
		StatsBackend: strings.ToLower(envOr("STATS_BACKEND", BackendFile)),
		StatsPath:    envOr("STATS_PATH", "data/stats.json"),
		DBPath:       envOr("DB_PATH", "data/stats.db"),
		ErrorLogPath: envOr("ERROR_LOG_PATH", "data/error-log.txt"),
		GameMode:     strings.ToLower(envOr("GAME_MODE", ModeRotate)),
		DailySalt:    envOr("DAILY_SALT", "local_dev_salt"),
	}
}

// Validate reports configuration values no component can work with.
func (c Config) Validate() error {
	if c.StatsBackend != BackendFile && c.StatsBackend != BackendSQLite {
		return fmt.Errorf("STATS_BACKEND must be %q or %q, got %q",
			BackendFile, BackendSQLite, c.StatsBackend)
	}
	if c.GameMode != ModeRotate && c.GameMode != ModeDaily {
		return fmt.Errorf("GAME_MODE must be %q or %q, got %q",
			ModeRotate, ModeDaily, c.GameMode)
	}
	if c.StatsBackend == BackendFile && c.StatsPath == "" {
		return fmt.Errorf("STATS_PATH cannot be empty")
	}
	if c.StatsBackend == BackendSQLite && c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
