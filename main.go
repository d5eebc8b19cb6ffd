package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vmhealth/internal/routes"

	"github.com/urfave/cli/v2"
)

// Version is set at build time via ldflags.
var Version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:    "vmhealth",
		Usage:   "one-shot CPU, memory, disk and uptime health check for this host",
		Version: Version,
	}
	routes.RegisterCheckRoutes(app)

	if err := app.RunContext(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\n\nHealth check interrupted by user.")
			return 130
		}
		fmt.Fprintf(os.Stderr, "\n❌ Error during health check: %v\n", err)
		return 1
	}
	return 0
}
