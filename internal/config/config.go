package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the gtflist binary
type Config struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	SeqURL   string `toml:"seq_url"`   // empty disables the Seq log sink
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		LogLevel: "info",
		SeqURL:   "http://localhost:5341",
	}
}

// Load reads a TOML config file, falling back to defaults when the file
// does not exist. Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
