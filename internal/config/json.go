package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/goteller/internal/flagx"
	"github.com/dmitrijs2005/goteller/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "300s"
// or as integer nanoseconds.
type JsonConfig struct {
	DataDir          string         `json:"data_dir"`
	SessionDuration  timex.Duration `json:"session_duration"`
	LockoutWindow    timex.Duration `json:"lockout_window"`
	MaxLoginAttempts int            `json:"max_login_attempts"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. Absent flags mean no JSON is loaded. Only fields
// present in the file override the config; zero values are ignored so the
// file can stay partial.
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
	if jc.SessionDuration.Duration != 0 {
		cfg.SessionDuration = jc.SessionDuration.Duration
	}
	if jc.LockoutWindow.Duration != 0 {
		cfg.LockoutWindow = jc.LockoutWindow.Duration
	}
	if jc.MaxLoginAttempts != 0 {
		cfg.MaxLoginAttempts = jc.MaxLoginAttempts
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
