// Command ingestcsv runs a data file through the ingestion pipeline offline
// and writes the reconciled records plus derived views, without starting the
// server. Useful for validating a file before uploading it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"laborcli/internal/config"
	"laborcli/internal/dataprocessing"
	"laborcli/internal/exporter"
	"laborcli/internal/infrastructure"
	"laborcli/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "input data file (.csv or .xlsx)")
	out := flag.String("out", "", "output file; extension picks the format (.csv or .xlsx), defaults to <in>-report.xlsx")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: ingestcsv -in data.csv [-out report.xlsx]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		defaults := config.Default()
		cfg = &defaults
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	content, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("failed to read input", slog.String("path", *in), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	pipeline := dataprocessing.NewPipeline(logger)

	var (
		records   []domain.LaborRecord
		ingestErr error
	)
	if strings.EqualFold(filepath.Ext(*in), ".xlsx") {
		records, ingestErr = pipeline.IngestWorkbook(ctx, content)
	} else {
		records, ingestErr = pipeline.Ingest(ctx, content)
	}
	if ingestErr != nil {
		logger.Error("ingestion failed", slog.String("error", ingestErr.Error()))
		os.Exit(1)
	}

	target := *out
	if target == "" {
		base := strings.TrimSuffix(*in, filepath.Ext(*in))
		target = base + "-report.xlsx"
	}

	f, err := os.Create(target)
	if err != nil {
		logger.Error("failed to create output", slog.String("path", target), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(target)) {
	case ".csv":
		err = exporter.WriteRecordsCSV(f, records)
	default:
		err = exporter.WriteWorkbook(f, exporter.BuildReport(records))
	}
	if err != nil {
		logger.Error("failed to write report", slog.String("path", target), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("report written",
		slog.String("input", *in),
		slog.String("output", target),
		slog.Int("records", len(records)))
}
