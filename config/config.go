// Package config loads the constants table and logging settings from a
// config file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/TheMlok/meteo-tools/calculations"
	"github.com/TheMlok/meteo-tools/internal/constants"
)

// ErrInvalidConfig is returned by Load when a setting would make every
// formula meaningless or names an unknown option.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the library
type Config struct {
	Log       LogConfig
	Constants ConstantsConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json, tint
}

// ConstantsConfig holds the overridable physical constants. Unit conversion
// factors and regression coefficients are definitions and cannot be changed.
type ConstantsConfig struct {
	SVPReference       float64 `mapstructure:"svp_reference"`
	SVPBase            float64 `mapstructure:"svp_base"`
	MagnusA            float64 `mapstructure:"magnus_a"`
	MagnusB            float64 `mapstructure:"magnus_b"`
	StandardPressure   float64 `mapstructure:"standard_pressure"`
	PressureCorrection float64 `mapstructure:"pressure_correction"`
	GasConstant        float64 `mapstructure:"gas_constant"`
	MolarMassWater     float64 `mapstructure:"molar_mass_water"`
	HumidexOffset      float64 `mapstructure:"humidex_offset"`
	HumidityScale      float64 `mapstructure:"humidity_scale"`
}

// Load reads configuration from a meteo.yaml file and METEO_ prefixed
// environment variables. paths are searched before the default locations.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("meteo")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.meteo-tools")

	// Set defaults
	table := constants.Default()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("constants.svp_reference", table.SVPReference)
	v.SetDefault("constants.svp_base", table.SVPBase)
	v.SetDefault("constants.magnus_a", table.MagnusA)
	v.SetDefault("constants.magnus_b", table.MagnusB)
	v.SetDefault("constants.standard_pressure", table.StandardPressure)
	v.SetDefault("constants.pressure_correction", table.PressureCorrection)
	v.SetDefault("constants.gas_constant", table.GasConstant)
	v.SetDefault("constants.molar_mass_water", table.MolarMassWater)
	v.SetDefault("constants.humidex_offset", table.HumidexOffset)
	v.SetDefault("constants.humidity_scale", table.HumidityScale)

	// Read from environment variables
	v.SetEnvPrefix("METEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q (allowed: debug, info, warn, error)", ErrInvalidConfig, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "tint":
	default:
		return fmt.Errorf("%w: log format %q (allowed: text, json, tint)", ErrInvalidConfig, c.Log.Format)
	}

	if c.Constants.SVPReference <= 0 {
		return fmt.Errorf("%w: svp_reference must be positive, got %v", ErrInvalidConfig, c.Constants.SVPReference)
	}
	if c.Constants.SVPBase <= 0 || c.Constants.SVPBase == 1 {
		return fmt.Errorf("%w: svp_base must be positive and not 1, got %v", ErrInvalidConfig, c.Constants.SVPBase)
	}
	if c.Constants.HumidityScale <= 0 {
		return fmt.Errorf("%w: humidity_scale must be positive, got %v", ErrInvalidConfig, c.Constants.HumidityScale)
	}
	if c.Constants.StandardPressure <= 0 {
		return fmt.Errorf("%w: standard_pressure must be positive, got %v", ErrInvalidConfig, c.Constants.StandardPressure)
	}

	return nil
}

// Table returns the reference constants with the configured overrides applied.
func (c *Config) Table() constants.Table {
	table := constants.Default()
	table.SVPReference = c.Constants.SVPReference
	table.SVPBase = c.Constants.SVPBase
	table.MagnusA = c.Constants.MagnusA
	table.MagnusB = c.Constants.MagnusB
	table.StandardPressure = c.Constants.StandardPressure
	table.PressureCorrection = c.Constants.PressureCorrection
	table.GasConstant = c.Constants.GasConstant
	table.MolarMassWater = c.Constants.MolarMassWater
	table.HumidexOffset = c.Constants.HumidexOffset
	table.HumidityScale = c.Constants.HumidityScale
	return table
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "tint":
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		})
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// NewCalculator builds a Calculator over the configured constants that logs
// through the configured logger.
func (c *Config) NewCalculator() *calculations.Calculator {
	return c.newCalculator(c.NewLogger())
}

func (c *Config) newCalculator(logger *slog.Logger) *calculations.Calculator {
	table := c.Table()
	logger.Debug("constants loaded",
		"svp_reference", table.SVPReference,
		"svp_base", table.SVPBase,
		"standard_pressure", table.StandardPressure,
	)
	return calculations.New(table, logger)
}
