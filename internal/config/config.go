package config

import (
	"errors"
	"strconv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	InputDir     string
	InputPattern string
	OutputDir    string
	LogLevel     string
	LogFormat    string

	// StdDevDDOF is the delta degrees of freedom for station variability.
	// Zero gives the population standard deviation.
	StdDevDDOF int

	// MetricsFile is the Prometheus textfile written after each run.
	// Empty disables metrics output.
	MetricsFile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	ddof, err := parseDDOF()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputDir:     sharedcfg.EnvOrDefault("TEMPERATURES_DIR", "temperatures"),
		InputPattern: sharedcfg.EnvOrDefault("INPUT_PATTERN", "*.csv"),
		OutputDir:    sharedcfg.EnvOrDefault("OUTPUT_DIR", "."),
		LogLevel:     sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		StdDevDDOF:   ddof,
		MetricsFile:  sharedcfg.EnvOrDefault("METRICS_FILE", ""),
	}

	if cfg.InputDir == "" {
		return nil, errors.New("TEMPERATURES_DIR is required")
	}
	if cfg.InputPattern == "" {
		return nil, errors.New("INPUT_PATTERN is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid LOG_LEVEL: must be debug, info, warn or error")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.New("invalid LOG_FORMAT: must be text or json")
	}

	return cfg, nil
}

func parseDDOF() (int, error) {
	n, err := strconv.Atoi(sharedcfg.EnvOrDefault("STDDEV_DDOF", "0"))
	if err != nil || n < 0 {
		return 0, errors.New("invalid STDDEV_DDOF: must be a non-negative integer")
	}
	return n, nil
}
