package config

import "time"

// Default sampling densities.  PhiSteps/ThetaSteps match the resolution the
// reference canopy drawings were produced at; CurveResolution is high enough
// that the plotted outline is visually smooth at print scale.
const (
	DefaultCurveResolution = 200
	DefaultPhiSteps        = 100
	DefaultThetaSteps      = 50
	DefaultInflation       = 1.0
)

// ApplyDefaults fills every unset field of cfg with its default value.
// It never overwrites a field the user has set.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}

	if cfg.Geometry.CurveResolution == 0 {
		cfg.Geometry.CurveResolution = DefaultCurveResolution
	}
	if cfg.Geometry.PhiSteps == 0 {
		cfg.Geometry.PhiSteps = DefaultPhiSteps
	}
	if cfg.Geometry.ThetaSteps == 0 {
		cfg.Geometry.ThetaSteps = DefaultThetaSteps
	}
	if cfg.Geometry.Inflation == 0 {
		cfg.Geometry.Inflation = DefaultInflation
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}
