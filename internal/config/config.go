// Package config holds runtime settings for the goteller CLI.
package config

import "time"

// Config holds runtime settings for the terminal.
//
// Fields:
//   - DataDir: directory holding the users/sessions/accounts record files.
//   - SessionDuration: lifetime granted to a session at login and on renewal.
//   - LockoutWindow: how long a locked account rejects logins.
//   - MaxLoginAttempts: failed logins tolerated before the account locks.
//   - LogLevel: minimum level for structured log output.
type Config struct {
	DataDir          string
	SessionDuration  time.Duration
	LockoutWindow    time.Duration
	MaxLoginAttempts int
	LogLevel         string
}

// LoadDefaults populates c with the stock behavior: record files in the
// current directory, hour-long sessions, a five-minute lockout after three
// failures.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.SessionDuration = time.Hour
	c.LockoutWindow = 5 * time.Minute
	c.MaxLoginAttempts = 3
	c.LogLevel = "info"
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
