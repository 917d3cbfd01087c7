// Package config carries the environment-driven application configuration and
// the optional YAML catalog override.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config is decoded from DASHBOARD_* environment variables.
type Config struct {
	LogLevel        string `env:"DASHBOARD_LOG_LEVEL,default=info"`
	ThemePath       string `env:"DASHBOARD_THEME_PATH,default=.dashboard/theme"`
	DefaultTheme    string `env:"DASHBOARD_DEFAULT_THEME,default=light"`
	EventBufferSize int    `env:"DASHBOARD_EVENT_BUFFER,default=256"`
	CatalogPath     string `env:"DASHBOARD_CATALOG_PATH,default="`
	SimulateLatency bool   `env:"DASHBOARD_SIMULATE_LATENCY,default=true"`
}

// FromEnv decodes the configuration from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when the environment is not
// consulted, matching the env tag defaults.
func Default() Config {
	return Config{
		LogLevel:        "info",
		ThemePath:       ".dashboard/theme",
		DefaultTheme:    "light",
		EventBufferSize: 256,
		SimulateLatency: true,
	}
}
