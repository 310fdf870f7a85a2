// Command server runs the tango HTTP API.
//
// Usage:
//
//	server
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. AUTH_JWT_SECRET is required.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/tango-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
