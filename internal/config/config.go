// Package config loads server and solver settings from a TOML file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Addr     string `toml:"addr"`
	DataDir  string `toml:"data_dir"`
	Engine   string `toml:"engine"` // propagate|backtrack
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Addr:     ":8080",
		DataDir:  "./data",
		Engine:   "propagate",
		LogLevel: "info",
	}
}

// Load decodes path over the defaults. An empty path returns the defaults
// unchanged; a missing file is an error so that typos do not silently fall
// back.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
