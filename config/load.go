package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a TOML or YAML file (chosen by extension) on top of the
// defaults. Keys missing from the file keep their default value, except that
// a kind or profile table present in the file replaces that entry whole.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every kind and profile name is known.
func (c *Config) Validate() error {
	for name := range c.Kinds {
		if _, err := ParseKind(name); err != nil {
			return fmt.Errorf("kinds: %w", err)
		}
	}
	for name, p := range c.Spawner.Profiles {
		if _, err := ParseKind(name); err != nil {
			return fmt.Errorf("spawner profiles: %w", err)
		}
		if p.Cap < 0 {
			return fmt.Errorf("spawner profile %q: negative cap %d", name, p.Cap)
		}
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("loop: tick rate must be positive, got %d", c.Loop.TickRate)
	}
	return nil
}
