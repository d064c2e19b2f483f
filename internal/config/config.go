// Package config assembles runtime settings for the DayKeeper CLI from
// defaults, an optional JSON file and command-line flags, in that order of
// precedence.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the DayKeeper CLI.
//
// Fields:
//   - DataDir: directory holding the working image and the durable slot.
//     Empty means a ".daykeeper" directory under the user's home.
//   - AIAPIKey: key for the natural-language parser; empty disables it.
//   - AIModel: completion model name; empty selects the client default.
//   - NotificationsEnabled: whether due-today desktop reminders run.
//   - NotifyInterval: how often the reminder sweep fires.
type Config struct {
	DataDir              string
	AIAPIKey             string
	AIModel              string
	NotificationsEnabled bool
	NotifyInterval       time.Duration
}

// LoadDefaults populates c with sensible defaults. The AI key is taken from
// the GEMINI_API_KEY environment variable when present.
func (c *Config) LoadDefaults() {
	c.DataDir = ""
	c.AIAPIKey = os.Getenv("GEMINI_API_KEY")
	c.AIModel = ""
	c.NotificationsEnabled = true
	c.NotifyInterval = time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
