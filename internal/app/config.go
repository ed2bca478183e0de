package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string

	// Seed fixes the dice; 0 picks a random seed.
	Seed uint64
	// BlueprintPath is an optional HCL file overriding part quantities.
	BlueprintPath string
	// Robots builds this many robots without asking; 0 asks interactively.
	Robots int
	// Diagnose prints the completion diagnostic after every added part.
	Diagnose bool
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.Robots < 0 {
		return nil, errors.New("robots must not be negative")
	}

	return &cfg, nil
}
