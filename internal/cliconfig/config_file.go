package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with durations as strings, e.g. "10s".
type FileConfig struct {
	Serial    string `toml:"serial"`
	LogLevel  string `toml:"log_level"`
	Interval  string `toml:"interval"`
	Lookahead string `toml:"lookahead"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.ibisibi/config.toml, or "" without a home
// directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ibisibi", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping the flags in
// changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("serial", fc.Serial, &cfg.Serial)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("interval", fc.Interval, &cfg.Interval); err != nil {
		return err
	}
	return s.setDuration("lookahead", fc.Lookahead, &cfg.Lookahead)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
