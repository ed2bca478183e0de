package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/robotbuilder/internal/app"
	"github.com/specialistvlad/robotbuilder/internal/cli"
)

// main is the entrypoint for the robotbuilder application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if exitErr := cli.ExitErrorFor(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])); exitErr != nil {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	robotApp, err := app.NewApp(in, outW, logW, appConfig)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	return robotApp.Run(context.Background())
}
