package orrery

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of the `conf` file.
const ConfigEnv = "ORRERY_CONFIG"

// DefaultResolution is the number of samples per orbit when none is configured.
const DefaultResolution = 300

// Config defines how a system is propagated and exported.
type Config struct {
	Resolution    int       // Samples per orbit
	Tolerance     float64   // Kepler solver tolerance, radians
	MaxIterations int       // Kepler solver iteration cap
	OutputDir     string    // Where exports are written
	Catalog       string    // YAML system file, empty for the built-in solar system
	Epoch         time.Time // Epoch of the orbital elements, only used to annotate exports
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		Resolution:    DefaultResolution,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		OutputDir:     ".",
		Epoch:         time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// NewSystem returns an empty system using the solver settings of this configuration.
func (c Config) NewSystem(name string) *System {
	return NewPreciseSystem(name, c.Tolerance, c.MaxIterations)
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.Resolution < MinResolution {
		return fmt.Errorf("%w: %d < %d", ErrResolution, c.Resolution, MinResolution)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("solver tolerance must be positive (got %g)", c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("solver iteration cap must be positive (got %d)", c.MaxIterations)
	}
	return nil
}

// SetDefaults registers the default configuration in v, under the keys read by ConfigFrom.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("general.resolution", d.Resolution)
	v.SetDefault("general.output_path", d.OutputDir)
	v.SetDefault("general.catalog", d.Catalog)
	v.SetDefault("general.epoch", d.Epoch)
	v.SetDefault("solver.tolerance", d.Tolerance)
	v.SetDefault("solver.max_iterations", d.MaxIterations)
}

// ConfigFrom reads the configuration from an already loaded viper instance.
func ConfigFrom(v *viper.Viper) (Config, error) {
	conf := Config{
		Resolution:    v.GetInt("general.resolution"),
		OutputDir:     v.GetString("general.output_path"),
		Catalog:       v.GetString("general.catalog"),
		Epoch:         v.GetTime("general.epoch").UTC(),
		Tolerance:     v.GetFloat64("solver.tolerance"),
		MaxIterations: v.GetInt("solver.max_iterations"),
	}
	return conf, conf.Validate()
}

// ReadConfig reads the configuration file at path into v. When path is empty, the `conf`
// file of the directory named by ORRERY_CONFIG is read instead, and nothing is read if
// that variable is unset either. It returns the file used, if any.
func ReadConfig(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return v.ConfigFileUsed(), nil
	}
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		return "", nil
	}
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("%s/conf.{toml,yaml,json} not found: %w", confPath, err)
	}
	return v.ConfigFileUsed(), nil
}

// LoadConfig reads the configuration file (TOML, YAML or JSON) at path. Missing keys take
// their default value.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("no configuration file provided")
	}
	v := viper.New()
	SetDefaults(v)
	if _, err := ReadConfig(v, path); err != nil {
		return Config{}, err
	}
	return ConfigFrom(v)
}

// ConfigFromEnv reads the `conf` file from the directory named by ORRERY_CONFIG.
// The default configuration is returned if the variable is unset.
func ConfigFromEnv() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	if _, err := ReadConfig(v, ""); err != nil {
		return Config{}, err
	}
	return ConfigFrom(v)
}
