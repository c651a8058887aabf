// Package config loads StudyBuddy settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/teamlowkey/studybuddy/internal/llm"
	"github.com/teamlowkey/studybuddy/internal/logging"
	"github.com/teamlowkey/studybuddy/internal/validation"
)

// DefaultEnvFile is read when present and no other file is named.
const DefaultEnvFile = ".env"

// Keys consulted, in order, when STUDYBUDDY_GEMINI_API_KEY is unset.
var geminiKeyFallbacks = []string{"GEMINI_API_KEY", "VITE_GEMINI_API_KEY"}

type Config struct {
	LLM llm.Config     `env:""`
	Log logging.Config `env:""`

	// FetchTimeout bounds a single recommendation request.
	FetchTimeout time.Duration `env:"STUDYBUDDY_FETCH_TIMEOUT,default=15s" validate:"gt=0"`

	// DBPath overrides the database location. Empty means the per-user
	// data directory.
	DBPath string `env:"STUDYBUDDY_DB"`
}

// Load reads envFile (or .env when envFile is empty and the file exists)
// into the process environment without overriding variables that are
// already set, then decodes and validates the configuration.
func Load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.LLM.Gemini.APIKey == "" {
		for _, k := range geminiKeyFallbacks {
			if v := os.Getenv(k); v != "" {
				cfg.LLM.Gemini.APIKey = v
				break
			}
		}
	}

	if err := validation.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", DefaultEnvFile, err)
	}
	return nil
}
