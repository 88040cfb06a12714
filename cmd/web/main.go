// Command web runs the Labor Pulse backend: CSV/XLSX ingestion, aggregation
// endpoints, live websocket updates, and Prometheus metrics.
package main

import (
	"context"
	"log/slog"
	"os"

	"laborcli/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
