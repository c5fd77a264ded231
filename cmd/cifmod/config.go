package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config holds defaults for command line flags. Flags given on the
// command line take precedence.
type config struct {
	Instructions     string  `toml:"instructions" yaml:"instructions"`
	Suffix           string  `toml:"suffix" yaml:"suffix"`
	Jobs             int     `toml:"jobs" yaml:"jobs"`
	Seed             *uint64 `toml:"seed" yaml:"seed"`
	NaturalPrecision bool    `toml:"natural_precision" yaml:"natural_precision"`
	Verbose          bool    `toml:"verbose" yaml:"verbose"`
}

// loadConfig reads TOML or YAML depending on the file extension.
func loadConfig(path string) (cfg config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format '%s'", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
