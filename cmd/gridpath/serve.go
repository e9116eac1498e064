package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/server"
)

// shutdownGrace bounds how long in-flight requests may finish after a signal.
const shutdownGrace = 15 * time.Second

func (a *app) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the search API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address", Sources: cli.EnvVars("GRIDPATH_ADDR")},
			&cli.StringFlag{Name: "profiles", Usage: "HCL file with extra profiles"},
			&cli.DurationFlag{Name: "search-timeout", Value: server.DefaultSearchTimeout, Usage: "per-search time limit"},
			&cli.IntFlag{Name: "max-cells", Value: server.DefaultMaxCells, Usage: "largest accepted grid, in cells"},
		},
		Action: a.serve,
	}
}

func (a *app) serve(ctx context.Context, cmd *cli.Command) error {
	ps := config.Builtin()
	if file := cmd.String("profiles"); file != "" {
		var err error
		if ps, err = config.LoadFile(file); err != nil {
			return cli.Exit(err.Error(), exitInvalid)
		}
	}

	handler := server.NewServer(
		server.WithProfiles(ps),
		server.WithLogger(a.logger),
		server.WithSearchTimeout(cmd.Duration("search-timeout")),
		server.WithMaxCells(cmd.Int("max-cells")),
	)
	srv := &http.Server{
		Addr:              cmd.String("addr"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		a.logger.Info("listening", slog.String("addr", srv.Addr), slog.Int("profiles", ps.Len()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return cli.Exit(err.Error(), exitFailure)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	return nil
}
