package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// gofcConfig holds defaults read from ~/.gofcrc (or --config). A positive
// resync_lines or buffer_lines here is used whenever the parsed command
// line holds the built-in default for that option, so an explicit /2 or
// /LB100 is not told apart from an absent one and is replaced too.
// verbose and color have no command-line counterpart. Modeled on
// pkg/serve/httpserver/config.go's ServerConfig, which is loaded the
// same way with the same library.
type gofcConfig struct {
	Verbose     bool `toml:"verbose"`
	Color       bool `toml:"color"`
	ResyncLines int  `toml:"resync_lines"`
	BufferLines int  `toml:"buffer_lines"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gofcrc")
}

// loadConfig reads a TOML defaults file. A missing file at the default
// location is not an error; a missing file explicitly named with
// --config is.
func loadConfig(path string, explicit bool) (*gofcConfig, error) {
	cfg := &gofcConfig{Color: true}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
