package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; real
// environment variables win over file entries (godotenv.Load never
// overwrites existing variables).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FEEDLINE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FEEDLINE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("FEEDLINE_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("FEEDLINE_STREAMABLE_API"); v != "" {
		cfg.StreamableAPIURL = v
	}
	if v := os.Getenv("FEEDLINE_DEFAULT_AVATAR"); v != "" {
		cfg.DefaultAvatarURL = v
	}
}
