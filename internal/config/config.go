// Package config loads gridui settings from a TOML file and GRIDUI_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Grid   GridConfig
	Render RenderConfig
	Demo   DemoConfig
	Trace  TraceConfig
	Log    LogConfig
}

// GridConfig holds the display surface size.
type GridConfig struct {
	Rows int
	Cols int
}

// RenderConfig selects the render scheduling policy.
type RenderConfig struct {
	// Mode is "immediate" or "tick".
	Mode     string
	Interval time.Duration
}

// DemoConfig holds settings for the bundled catalogue interface.
type DemoConfig struct {
	Items int
}

// TraceConfig holds OTLP export settings. An empty endpoint disables export.
type TraceConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbose bool
	File    string
}

// Render modes.
const (
	ModeImmediate = "immediate"
	ModeTick      = "tick"
)

// Load reads configuration from file and env. Env var overrides use prefix GRIDUI_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("grid.rows", 6)
	v.SetDefault("grid.cols", 9)
	v.SetDefault("render.mode", ModeTick)
	v.SetDefault("render.interval", 50*time.Millisecond)
	v.SetDefault("demo.items", 100)
	v.SetDefault("trace.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("trace.service_name", "gridui")
	v.SetDefault("log.verbose", false)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GRIDUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gridui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GRIDUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		if cfgPath != "" {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values Load cannot default its way out of.
func (c Config) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 3 {
		return fmt.Errorf("grid must be at least 1x3, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	switch c.Render.Mode {
	case ModeImmediate, ModeTick:
	default:
		return fmt.Errorf("unknown render mode %q", c.Render.Mode)
	}
	if c.Render.Mode == ModeTick && c.Render.Interval <= 0 {
		return fmt.Errorf("render interval must be positive, got %s", c.Render.Interval)
	}
	if c.Demo.Items < 0 {
		return fmt.Errorf("demo items must not be negative, got %d", c.Demo.Items)
	}
	return nil
}
