// Command tutor is the student-code evaluation worker. It consumes
// submissions from NATS or SQS, runs them in a sandbox, analyzes them
// and streams results back.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
)

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)

	cmd := &cli.Command{
		Name:  "tutor",
		Usage: "evaluate student Python submissions",
		Commands: []*cli.Command{
			serveCmd(log),
			runCmd(log),
			checkCmd(log),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
