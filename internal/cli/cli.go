package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/avolkov/brandreport/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
// Usage mistakes get code 2; runtime failures map to code 1 in main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := app.LoadDefaults()

	flagSet := pflag.NewFlagSet("brandreport", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
brandreport - ranks product brands by the average rating of their products.

Usage:
  brandreport --files FILE [FILE...] --report average-rating [options]

The report grid is written to standard output; all diagnostics go to
standard error.

Options:
`)
		fmt.Fprint(output, flagSet.FlagUsages())
	}

	filesFlag := flagSet.StringSlice("files", nil, "Paths to the product CSV files, processed in the given order.")
	reportFlag := flagSet.String("report", "", "Report type to render. Only 'average-rating' is supported.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// argparse-style file lists: `--files a.csv b.csv` leaves everything after
	// the first path as positional arguments, so fold those back in.
	files := append([]string{}, *filesFlag...)
	files = append(files, flagSet.Args()...)
	slog.Debug("Input file list determined.", "files", files)

	if len(files) == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "--files is required: name at least one input CSV file"}
	}
	if *reportFlag == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "--report is required"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Files:      files,
		ReportType: *reportFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
