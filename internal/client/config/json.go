package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/okoshkin/feedline/internal/flagx"
	"github.com/okoshkin/feedline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	BaseURL          string         `json:"base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	DatabasePath     string         `json:"database_path"`
	StreamableAPIURL string         `json:"streamable_api_url"`
	DefaultAvatarURL string         `json:"default_avatar_url"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. With no such flag, nothing is loaded. Only fields
// present in the file override; zero values are left alone.
//
// Panics on read or unmarshal errors (the caller treats a broken explicit
// config file as fatal misconfiguration).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.StreamableAPIURL != "" {
		cfg.StreamableAPIURL = jc.StreamableAPIURL
	}
	if jc.DefaultAvatarURL != "" {
		cfg.DefaultAvatarURL = jc.DefaultAvatarURL
	}
}
