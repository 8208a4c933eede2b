// Package main is the entry point for roomcrawl.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roomcrawl/internal/cli"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

var (
	version = ""
	commit  = "none"
	date    = "unknown"
)

func main() {
	// .env is optional; variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	cli.SetVersion(version, commit, date)

	cfg := telemetry.ConfigFromEnv()
	cfg.ServiceVersion = cli.Version()
	shutdown, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		shutdown = func(context.Context) error { return nil }
	}

	runErr := cli.Execute(ctx)

	if err := shutdown(ctx); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
