package config

import "time"

// Config holds runtime settings for the feedline CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, no trailing slash.
//   - RequestTimeout: applied to every backend call; expiry is treated as a
//     network failure.
//   - DatabasePath: SQLite file for the local credential store.
//   - StreamableAPIURL: root of the external video-hosting lookup API.
//   - DefaultAvatarURL: image shown for authors without a profile picture;
//     empty means the built-in default.
type Config struct {
	BaseURL          string
	RequestTimeout   time.Duration
	DatabasePath     string
	StreamableAPIURL string
	DefaultAvatarURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "feedline.db"
	c.StreamableAPIURL = "https://api.streamable.com"
	c.DefaultAvatarURL = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
