package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FromEnv overlays environment overrides on base. Unset or unparsable
// variables leave the base value alone.
func FromEnv(base Balance) Balance {
	cfg := base

	if v, ok := getEnvInt64("BUFFET_SEED"); ok {
		cfg.Content.Seed = v
	}
	if v, ok := getEnvDuration("BUFFET_TICK_INTERVAL"); ok && v > 0 {
		cfg.TickInterval = v
	}
	if v, ok := getEnvDuration("BUFFET_REWARD_INTERVAL"); ok && v >= 0 {
		cfg.RewardInterval = v
	}
	if v, ok := getEnvFloat("BUFFET_HUNT_CHANCE"); ok {
		cfg.Start.HuntChance = v
	}

	return cfg
}

func getEnvInt64(key string) (int64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvDuration(key string) (time.Duration, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
