package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
routing:
  bus_wait_time: 6
  bus_velocity: 40
  max_route_spans: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 6.0, cfg.Routing.BusWaitTime)
	assert.Equal(t, 40.0, cfg.Routing.BusVelocity)
	assert.Equal(t, 10, cfg.Routing.MaxRouteSpans)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
routing:
  bus_wait_time: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, 2.0, cfg.Routing.BusWaitTime)
	assert.Zero(t, cfg.Routing.BusVelocity)
}

func TestLoadInvalidPort(t *testing.T) {
	path := writeConfig(t, `
server:
  port: -1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Zero(t, cfg.Routing.BusWaitTime)
}
