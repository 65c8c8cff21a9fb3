package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/utm/internal/engine"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, engine.DefaultStepLimit, cfg.StepLimit)
	assert.Equal(t, engine.DefaultWindowRadius, cfg.WindowRadius)
	assert.Empty(t, cfg.Database)
}

func TestLoadConfigProbedFileMissing(t *testing.T) {
	// No utm.yaml in the test working directory: defaults apply silently.
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utm.yaml")
	content := "step_limit: 500\nwindow_radius: 7\ndatabase: traces.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.StepLimit)
	assert.Equal(t, 7, cfg.WindowRadius)
	assert.Equal(t, "traces.db", cfg.Database)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: traces.db\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultStepLimit, cfg.StepLimit)
	assert.Equal(t, engine.DefaultWindowRadius, cfg.WindowRadius)
	assert.Equal(t, "traces.db", cfg.Database)
}

func TestLoadConfigClampsNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step_limit: -5\nwindow_radius: 0\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultStepLimit, cfg.StepLimit)
	assert.Equal(t, engine.DefaultWindowRadius, cfg.WindowRadius)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step_limit: [not an int\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestFlagOverridesConfig(t *testing.T) {
	opts := &RootOptions{Config: Config{StepLimit: 100, WindowRadius: 5, Database: "cfg.db"}}

	assert.Equal(t, 42, opts.stepLimit(42))
	assert.Equal(t, 100, opts.stepLimit(0))
	assert.Equal(t, 3, opts.windowRadius(3))
	assert.Equal(t, 5, opts.windowRadius(0))
	assert.Equal(t, "flag.db", opts.database("flag.db"))
	assert.Equal(t, "cfg.db", opts.database(""))
}
