package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canopyforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
output:
  dir: /tmp/canopy-out
  preview: true
geometry:
  phi_steps: 120
  theta_steps: 60
  inflation: 1.1
server:
  port: 9090
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/canopy-out", cfg.Output.Dir)
	assert.True(t, cfg.Output.Preview)
	assert.Equal(t, 120, cfg.Geometry.PhiSteps)
	assert.Equal(t, 60, cfg.Geometry.ThetaSteps)
	assert.Equal(t, 1.1, cfg.Geometry.Inflation)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset fields still receive defaults.
	assert.Equal(t, DefaultCurveResolution, cfg.Geometry.CurveResolution)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeTempConfig(t, `
geometry:
  inflation: -2.0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CANOPYFORGE_OUTPUT_DIR", "/srv/canopy")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/srv/canopy", cfg.Output.Dir)
	assert.Equal(t, DefaultPhiSteps, cfg.Geometry.PhiSteps)
}
