package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/utm/internal/engine"
)

// DefaultConfigFile is the config file probed in the working directory
// when --config is not given.
const DefaultConfigFile = "utm.yaml"

// Config carries the runner defaults that would otherwise be embedded
// literals: the run step bound, the rendered window radius, and the trace
// database path. Flags override config values; config values override the
// built-in defaults.
type Config struct {
	StepLimit    int    `yaml:"step_limit"`
	WindowRadius int    `yaml:"window_radius"`
	Database     string `yaml:"database"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		StepLimit:    engine.DefaultStepLimit,
		WindowRadius: engine.DefaultWindowRadius,
	}
}

// LoadConfig reads a yaml config file, filling unset fields with the
// built-in defaults. An empty path probes for DefaultConfigFile; a missing
// probed file is not an error, a missing explicit file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.StepLimit <= 0 {
		cfg.StepLimit = engine.DefaultStepLimit
	}
	if cfg.WindowRadius <= 0 {
		cfg.WindowRadius = engine.DefaultWindowRadius
	}

	return cfg, nil
}

// stepLimit resolves the effective step bound: flag, then config.
func (o *RootOptions) stepLimit(flag int) int {
	if flag > 0 {
		return flag
	}
	return o.Config.StepLimit
}

// windowRadius resolves the effective window radius: flag, then config.
func (o *RootOptions) windowRadius(flag int) int {
	if flag > 0 {
		return flag
	}
	return o.Config.WindowRadius
}

// database resolves the effective trace database path: flag, then config.
func (o *RootOptions) database(flag string) string {
	if flag != "" {
		return flag
	}
	return o.Config.Database
}
