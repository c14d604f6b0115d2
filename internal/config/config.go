package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	// NASA API key. Empty routes fetches to the bundled archive.
	APIKey    string `yaml:"api_key" env:"NASA_API_KEY"`
	FactsFeed string `yaml:"facts_feed" env:"SPACE_EXPLORER_FACTS_FEED"`
	LogLevel  string `yaml:"log_level" env:"SPACE_EXPLORER_LOG_LEVEL"`
}

// HasKey reports whether a NASA API key is configured, from the file or
// the environment.
func (c *Config) HasKey() bool {
	return c.APIKey != ""
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "space-explorer", "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "space-explorer", "space-explorer.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file, writing the embedded defaults on first
// run, then applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading env overrides: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to the config path on first run. Non-fatal:
			// fall back to the embedded defaults either way.
			writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Fields the user left out keep their defaults.
	if cfg.FactsFeed == "" {
		cfg.FactsFeed = defaults.FactsFeed
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.FactsFeed != "" {
		u, err := url.Parse(cfg.FactsFeed)
		if err != nil {
			return fmt.Errorf("facts_feed: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("facts_feed: url scheme must be http or https, got %q", u.Scheme)
		}
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}
	return nil
}
