// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"tour-itinerary-service/internal/domain"
)

type Config struct {
	Port             string
	DatabaseURL      string
	SeedPath         string
	DefaultStartTime string
	DefaultTimeLimit float64
	TransferPenalty  time.Duration
	StrictWindows    bool
	LogFormat        string
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads every setting, applying defaults, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		Port:             Get("PORT", "8080"),
		DatabaseURL:      Get("DATABASE_URL", ""),
		SeedPath:         Get("SEED_PATH", "data/seeds/locations.json"),
		DefaultStartTime: Get("DEFAULT_START_TIME", "08:00"),
		LogFormat:        Get("LOG_FORMAT", "json"),
	}

	if _, err := domain.ParseClock(cfg.DefaultStartTime); err != nil {
		return Config{}, fmt.Errorf("config: DEFAULT_START_TIME: %w", err)
	}

	hours, err := strconv.ParseFloat(Get("DEFAULT_TIME_LIMIT_HOURS", "6"), 64)
	if err != nil || hours < 0 {
		return Config{}, errors.New("config: DEFAULT_TIME_LIMIT_HOURS must be a non-negative number")
	}
	cfg.DefaultTimeLimit = hours

	penalty, err := strconv.Atoi(Get("TRANSFER_PENALTY_MINUTES", "5"))
	if err != nil || penalty < 0 {
		return Config{}, errors.New("config: TRANSFER_PENALTY_MINUTES must be a non-negative integer")
	}
	cfg.TransferPenalty = time.Duration(penalty) * time.Minute

	strict, err := strconv.ParseBool(Get("STRICT_WINDOWS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("config: STRICT_WINDOWS: %w", err)
	}
	cfg.StrictWindows = strict

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", cfg.LogFormat)
	}

	return cfg, nil
}
