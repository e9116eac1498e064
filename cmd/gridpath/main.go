// Command gridpath searches terrain maps from the command line and serves the
// search API over HTTP.
//
// Usage:
//
//	gridpath [--log-level LEVEL] [--log-format text|json] COMMAND [flags]
//
// Commands:
//
//	search    find a path on a map file
//	profiles  list the search profiles
//	serve     run the HTTP API
//
// Exit codes: 0 success, 1 failure, 2 invalid input, 3 no path.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	exitFailure = 1
	exitInvalid = 2
	exitNoPath  = 3
)

// main is the entrypoint for the gridpath binary.
func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exitErr.ExitCode()
	}
	fmt.Fprintln(stderr, err)
	return exitFailure
}

// app carries the writers and the logger shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: slog.New(slog.DiscardHandler)}

	return &cli.Command{
		Name:      "gridpath",
		Usage:     "multi-heuristic A* on weighted terrain grids",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level: debug, info, warn or error",
				Sources: cli.EnvVars("GRIDPATH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "log format: text or json",
				Sources: cli.EnvVars("GRIDPATH_LOG_FORMAT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			a.logger = newLogger(cmd.String("log-level"), cmd.String("log-format"), stderr)
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.searchCommand(),
			a.profilesCommand(),
			a.serveCommand(),
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return cli.Exit(err.Error(), exitInvalid)
		},
		// Errors are turned into exit codes by run, never by the library.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}
