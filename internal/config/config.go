package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/rvrdev/portfolio/internal/logging"
)

// EnvPrefix prefixes environment overrides: PORTFOLIO_BASE_PATH -> base_path.
const EnvPrefix = "PORTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// hosting platforms set PORT
	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"ADDR") == "" {
		cfg.Addr = ":" + port
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("invalid mode %q: must be development or production", c.Mode)
	}

	if c.BasePathRaw != "" {
		if !strings.HasPrefix(c.BasePathRaw, "/") {
			return fmt.Errorf("base_path %q must start with /", c.BasePathRaw)
		}
		if strings.HasSuffix(c.BasePathRaw, "/") {
			return fmt.Errorf("base_path %q must not end with /", c.BasePathRaw)
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if len(c.Assets) == 0 {
		return fmt.Errorf("assets needs at least one pattern")
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// BasePath returns the URL prefix the site is hosted under.
func (c *Config) BasePath() string {
	if c.Mode != ModeProduction {
		return ""
	}
	return c.BasePathRaw
}

// Production reports whether this is a production build.
func (c *Config) Production() bool {
	return c.Mode == ModeProduction
}
