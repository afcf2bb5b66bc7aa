package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_FILE", "ADDR", "PARKS_PATH", "STATES_PATH", "API_DOCS_ENABLED",
		"METRICS_ENABLED", "TLS_ENABLE", "TLS_CERT_PATH", "TLS_KEY_PATH", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigIsFixedDeployment(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, filepath.Join("data", "parks.json"), cfg.ParksPath)
	assert.Equal(t, filepath.Join("data", "states.json"), cfg.StatesPath)
	assert.False(t, cfg.TLS.Enable)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutOverrides(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9000")
	t.Setenv("PARKS_PATH", "/srv/parks.json")
	t.Setenv("API_DOCS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadEnv())
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/srv/parks.json", cfg.ParksPath)
	assert.False(t, cfg.APIDocs)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TLS_ENABLE", "maybe")
	assert.Error(t, DefaultConfig().LoadEnv())

	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	assert.Error(t, DefaultConfig().LoadEnv())
}

func TestLoadFileOverlaysYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("addr: \":8443\"\nstates_path: /tmp/states.json\ntls:\n  enable: true\nshutdown_timeout: 2s\n"), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFile(p))
	assert.Equal(t, ":8443", cfg.Addr)
	assert.Equal(t, "/tmp/states.json", cfg.StatesPath)
	assert.Equal(t, filepath.Join("data", "parks.json"), cfg.ParksPath)
	assert.True(t, cfg.TLS.Enable)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.TLS.Enable = true
	cfg.TLS.KeyPath = ""
	assert.Error(t, cfg.Validate())
}
