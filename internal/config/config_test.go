package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRIDUI_CONFIG", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, c.Grid.Rows)
	assert.Equal(t, 9, c.Grid.Cols)
	assert.Equal(t, ModeTick, c.Render.Mode)
	assert.Equal(t, 50*time.Millisecond, c.Render.Interval)
	assert.Equal(t, 100, c.Demo.Items)
	assert.Empty(t, c.Trace.Endpoint)
	assert.Equal(t, "gridui", c.Trace.ServiceName)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridui.toml")
	body := `
[grid]
rows = 3
cols = 5

[render]
mode = "immediate"

[trace]
service_name = "catalogue"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("GRIDUI_CONFIG", path)
	t.Setenv("GRIDUI_DEMO_ITEMS", "12")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Grid.Rows)
	assert.Equal(t, 5, c.Grid.Cols)
	assert.Equal(t, ModeImmediate, c.Render.Mode)
	assert.Equal(t, 12, c.Demo.Items)
	assert.Equal(t, "catalogue", c.Trace.ServiceName)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("GRIDUI_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := Config{
		Grid:   GridConfig{Rows: 1, Cols: 3},
		Render: RenderConfig{Mode: ModeTick, Interval: time.Second},
	}
	require.NoError(t, good.Validate())

	tests := []struct {
		name string
		mut  func(c *Config)
	}{
		{"narrow grid", func(c *Config) { c.Grid.Cols = 2 }},
		{"no rows", func(c *Config) { c.Grid.Rows = 0 }},
		{"bad mode", func(c *Config) { c.Render.Mode = "vsync" }},
		{"zero interval", func(c *Config) { c.Render.Interval = 0 }},
		{"negative items", func(c *Config) { c.Demo.Items = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mut(&c)
			assert.Error(t, c.Validate())
		})
	}
}
