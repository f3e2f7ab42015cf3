package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rc "github.com/comalice/rivercrossing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, rc.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("RC_EXPORT_DIR", "/tmp/rc-reports")
	path := filepath.Join(t.TempDir(), "rivercrossing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: 127.0.0.1:9000
  shutdown_timeout: 2s
solver:
  max_iterations: 500
log:
  level: debug
  format: json
export:
  dir: ${RC_EXPORT_DIR}
  format: yaml
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Server.RateLimit)
	assert.Equal(t, 500, cfg.Solver.MaxIterations)
	assert.Equal(t, 128, cfg.Cache.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/rc-reports", cfg.Export.Dir)
	assert.Equal(t, "yaml", cfg.Export.Format)

	lc := cfg.Logging()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrConfigNotFound))

	_, err = Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = Parse([]byte("server: [nope"), Default())
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ""
	cfg.Solver.MaxIterations = 0
	cfg.Log.Level = "loud"
	cfg.Export.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	for _, want := range []string{"server.addr", "solver.max_iterations", "log.level", "export.format"} {
		assert.Contains(t, err.Error(), want)
	}
}
