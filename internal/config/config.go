// internal/config/config.go
//
// Runtime configuration for the wordle command.
// Values come from the environment (optionally seeded from a .env file) and
// may be overridden by command-line flags in main.

package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every setting the commands read.
type Config struct {
	WordsFile    string // secret word list, indexed by the positional argument
	AllowedFile  string // dictionary for guess validation; empty means WordsFile
	StatsFile    string // CSV result store
	StatsDB      string // SQLite result store; takes precedence over StatsFile when set
	LogLevel     string
	DailySalt    string
	Port         string
	ClientOrigin string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		WordsFile:    getEnv("WORDS_ANSWERS_FILE", "wordle-words.txt"),
		AllowedFile:  getEnv("WORDS_ALLOWED_FILE", ""),
		StatsFile:    getEnv("STATS_FILE", "stats.csv"),
		StatsDB:      getEnv("STATS_DB", ""),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		DailySalt:    getEnv("DAILY_SALT", "wordle-daily"),
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// DictionaryFile is the file used to validate guesses.
func (c Config) DictionaryFile() string {
	if c.AllowedFile != "" {
		return c.AllowedFile
	}
	return c.WordsFile
}

// Level parses LogLevel, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
