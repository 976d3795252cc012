package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "CANOPYFORGE"

// newViper builds a pre-configured Viper instance: YAML file type,
// CANOPYFORGE_ env prefix, automatic env binding, and a key replacer mapping
// "." → "_" so that nested keys like "output.dir" resolve to
// "CANOPYFORGE_OUTPUT_DIR".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key so environment overrides are visible to Unmarshal
	// even when the key is absent from the config file.  Zero values here are
	// replaced by ApplyDefaults after unmarshalling.
	for _, key := range []string{
		"output.dir", "output.preview",
		"geometry.curve_resolution", "geometry.phi_steps", "geometry.theta_steps", "geometry.inflation",
		"server.port", "server.mode", "server.read_timeout", "server.write_timeout", "server.shutdown_timeout",
		"watch.debounce",
		"log.level", "log.format", "log.output_paths",
	} {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges CANOPYFORGE_* environment
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CANOPYFORGE_* environment
// variables and defaults, with no config file required.  This is also the
// path taken when the user passes no --config flag.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies defaults,
// and validates.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
