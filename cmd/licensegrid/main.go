package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/licensegrid/internal/app"
	"github.com/specialistvlad/licensegrid/internal/cli"
	"github.com/specialistvlad/licensegrid/internal/hcl"
	"github.com/specialistvlad/licensegrid/internal/plugin"
)

// main is the entrypoint for the licensegrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	licenseApp, err := app.NewApp(ctx, outW, logW, appConfig, hcl.NewLoader(), plugin.Options{})
	if err != nil {
		return err
	}
	return licenseApp.Run(ctx)
}
