// Package main is the entry point for the gosmell CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/yaklabco/gosmell/internal/cli"
	"github.com/yaklabco/gosmell/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.ExecuteContext(logging.WithLogger(ctx, logging.Default()))
	if err != nil && !errors.Is(err, cli.ErrSmellsFound) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeFor(err)
}
