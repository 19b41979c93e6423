package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.{yaml,toml} ->
// ./configs/breakout.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatOf(customPath))
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"breakout.yaml", "breakout.yml", "breakout.toml"} {
		path := userConfigPath(name)
		if path == "" {
			break
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data, formatOf(path)); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := Parse(data, FormatYAML); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBreakoutYAML, FormatYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte, format Format) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DefaultBreakoutConfig(), err
	}

	if err := cfg.Validate(); err != nil {
		return DefaultBreakoutConfig(), err
	}
	return cfg, nil
}

// formatOf picks the decoder from the file extension. Unknown extensions
// are read as YAML.
func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}
