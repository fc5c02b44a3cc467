// Package main provides the entry point for the skymap CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/skymap/cmd/skymap/app"
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

	// Cancel the build on SIGINT/SIGTERM so a half-finished catalog is
	// never left behind.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
