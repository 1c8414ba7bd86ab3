package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/licensegrid/internal/app"
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
	flagSet := flag.NewFlagSet("licensegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
licensegrid - License header compliance tasks for source trees.

Usage:
  licensegrid [options] [TASK...]

Arguments:
  TASK
    Tasks to run with their dependencies. Defaults to "check".

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the build description file or directory. Defaults to the project directory.")
	fFlag := flagSet.String("f", "", "Path to the build description file or directory (shorthand).")
	projectDirFlag := flagSet.String("project-dir", ".", "Project root directory.")
	logFormatFlag := flagSet.String("log-format", app.LogFormatText, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listFlag := flagSet.Bool("list", false, "List tasks instead of running them.")
	outputFlag := flagSet.String("output", app.OutputText, "Task listing format. Options: 'text' or 'yaml'.")
	dumpFlag := flagSet.Bool("dump-config", false, "Print the resolved configuration instead of running tasks.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	file := *fileFlag
	if file == "" {
		file = *fFlag
	}

	config, err := app.NewConfig(app.Config{
		ProjectDir: *projectDirFlag,
		BuildFile:  file,
		Tasks:      flagSet.Args(),
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
		List:       *listFlag,
		Output:     strings.ToLower(*outputFlag),
		DumpConfig: *dumpFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
