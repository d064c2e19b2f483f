package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/flagx"
	"github.com/dmitrijs2005/daykeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1m"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DataDir              string         `json:"data_dir"`
	AIAPIKey             string         `json:"ai_api_key"`
	AIModel              string         `json:"ai_model"`
	NotificationsEnabled *bool          `json:"notifications_enabled"`
	NotifyInterval       timex.Duration `json:"notify_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; without one, no JSON is loaded.
// Read or unmarshal errors panic (the config stage has no way to continue).
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.AIAPIKey != "" {
		cfg.AIAPIKey = jc.AIAPIKey
	}
	if jc.AIModel != "" {
		cfg.AIModel = jc.AIModel
	}
	if jc.NotificationsEnabled != nil {
		cfg.NotificationsEnabled = *jc.NotificationsEnabled
	}
	if jc.NotifyInterval.Duration != 0 {
		cfg.NotifyInterval = time.Duration(jc.NotifyInterval.Duration)
	}
}
