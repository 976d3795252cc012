// Package config defines all configuration structures for CanopyForge.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
)

// OutputConfig holds artifact destination settings.
type OutputConfig struct {
	// Dir is the directory all generated files are written to.  Created on
	// demand; creation is idempotent.
	Dir string `mapstructure:"dir"`

	// Preview enables the additional wireframe PNG for every 3-D export.
	Preview bool `mapstructure:"preview"`
}

// GeometryConfig holds default sampling densities for the geometry pipeline.
// Individual requests may override any of them.
type GeometryConfig struct {
	// CurveResolution is the number of segments along the 2-D gore outline.
	CurveResolution int `mapstructure:"curve_resolution"`

	// PhiSteps and ThetaSteps are the 3-D patch grid dimensions per gore.
	PhiSteps   int `mapstructure:"phi_steps"`
	ThetaSteps int `mapstructure:"theta_steps"`

	// Inflation scales canopy height relative to a true hemisphere.
	Inflation float64 `mapstructure:"inflation"`
}

// ServerConfig holds HTTP server tunables for canopyd.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// WatchConfig holds parameter-file watch-mode tunables.
type WatchConfig struct {
	// Debounce is how long the watcher waits after the last write event
	// before running the pipeline, coalescing editor save bursts.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config is the root configuration object.
type Config struct {
	Output   OutputConfig      `mapstructure:"output"`
	Geometry GeometryConfig    `mapstructure:"geometry"`
	Server   ServerConfig      `mapstructure:"server"`
	Watch    WatchConfig       `mapstructure:"watch"`
	Log      logging.LogConfig `mapstructure:"log"`
}

// Validate checks internal consistency of the configuration.  It does not
// validate per-design physical parameters; those are validated by the domain
// layer per request.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Geometry.CurveResolution < 1 {
		return fmt.Errorf("geometry.curve_resolution must be at least 1, got %d", c.Geometry.CurveResolution)
	}
	if c.Geometry.PhiSteps < 2 || c.Geometry.ThetaSteps < 2 {
		return fmt.Errorf("geometry.phi_steps and geometry.theta_steps must be at least 2, got %d and %d",
			c.Geometry.PhiSteps, c.Geometry.ThetaSteps)
	}
	if c.Geometry.Inflation <= 0 {
		return fmt.Errorf("geometry.inflation must be positive, got %g", c.Geometry.Inflation)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release, or test, got %q", c.Server.Mode)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}
