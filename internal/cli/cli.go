package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/robotbuilder/internal/app"
	"github.com/specialistvlad/robotbuilder/internal/builder"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("robotbuilder", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
robotbuilder - Build toy robots one seven-sided die roll at a time.

Usage:
  robotbuilder [options]

Without -robots, you are asked before every build whether to make a robot.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	seedFlag := flagSet.Uint64("seed", 0, "Seed for the dice. 0 picks a random seed.")
	blueprintFlag := flagSet.String("blueprint", "", "Path to an HCL blueprint overriding part quantities.")
	robotsFlag := flagSet.Int("robots", 0, "Build this many robots without asking. 0 asks interactively.")
	diagnoseFlag := flagSet.Bool("verbose-complete", false, "Print which part is still missing after every addition.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	config, err := app.NewConfig(app.Config{
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
		Seed:          *seedFlag,
		BlueprintPath: *blueprintFlag,
		Robots:        *robotsFlag,
		Diagnose:      *diagnoseFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// ExitErrorFor maps an application error to the process exit it calls for.
// A build that hit its safety limit exits 1 with the safety message; other
// errors keep their message and exit 1. A nil error maps to nil.
func ExitErrorFor(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, builder.ErrSafetyLimit) {
		return &ExitError{Code: 1, Message: builder.ErrSafetyLimit.Error()}
	}
	return &ExitError{Code: 1, Message: err.Error()}
}
