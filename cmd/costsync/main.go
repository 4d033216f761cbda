// Package main provides the entry point for the costsync CLI tool.
package main

import (
	"context"
	"os"

	"github.com/costsync/costsync/cmd/costsync/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancellation comes from the invoking scheduler's signals; the sync
	// pipeline itself enforces no timeout.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
