package cliconfig

import "os"

// Environment variables overriding the config file.
const (
	EnvSerial    = "IBISIBI_SERIAL"
	EnvLogLevel  = "IBISIBI_LOG_LEVEL"
	EnvInterval  = "IBISIBI_INTERVAL"
	EnvLookahead = "IBISIBI_LOOKAHEAD"
)

// ApplyEnvConfig applies IBISIBI_* environment variables to cfg, skipping
// the flags in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("serial", os.Getenv(EnvSerial), &cfg.Serial)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)

	if err := s.setDuration("interval", os.Getenv(EnvInterval), &cfg.Interval); err != nil {
		return err
	}
	return s.setDuration("lookahead", os.Getenv(EnvLookahead), &cfg.Lookahead)
}
