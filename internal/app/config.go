package app

import (
	"errors"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Files      []string // input CSV paths, processed in this order
	ReportType string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Files) == 0 {
		return nil, errors.New("Files is a required configuration field and cannot be empty")
	}
	if cfg.ReportType == "" {
		return nil, errors.New("ReportType is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// Defaults are the pre-flag settings the CLI starts from. Precedence, lowest
// first: built-in values, the optional brandreport.yaml file in the working
// directory, then BRANDREPORT_* environment variables. Flags override all of
// these.
type Defaults struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

const defaultsFile = "brandreport.yaml"

// LoadDefaults resolves the default log settings. A malformed defaults file
// is reported and otherwise ignored; it must never block a run.
func LoadDefaults() Defaults {
	defaults := Defaults{LogLevel: "info", LogFormat: "text"}

	if data, err := os.ReadFile(defaultsFile); err == nil {
		if err := yaml.Unmarshal(data, &defaults); err != nil {
			slog.Warn("Ignoring malformed defaults file.", "path", defaultsFile, "error", err)
			defaults = Defaults{LogLevel: "info", LogFormat: "text"}
		}
	}

	if v := os.Getenv("BRANDREPORT_LOG_LEVEL"); v != "" {
		defaults.LogLevel = v
	}
	if v := os.Getenv("BRANDREPORT_LOG_FORMAT"); v != "" {
		defaults.LogFormat = v
	}
	return defaults
}
