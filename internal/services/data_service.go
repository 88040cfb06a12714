// Package services wires the ingestion engine, the store, and the analytics
// layer into the operations the transport layer exposes.
package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"laborcli/internal/analytics"
	"laborcli/internal/dataprocessing"
	"laborcli/internal/exporter"
	"laborcli/internal/metrics"
	"laborcli/internal/store"
	v1 "laborcli/pkg/contracts/api/v1"
	"laborcli/pkg/contracts/domain"
)

// Broadcaster notifies connected dashboards that the record set changed.
// Satisfied by *websocket.Hub; tests substitute a recorder.
type Broadcaster interface {
	BroadcastDataUpdate(ctx context.Context, recordCount int, source string)
}

// DataService orchestrates imports and serves all read operations over the
// current record set. Reads are pure and recomputed per call; the only state
// transition is the store replacement after a successful import.
type DataService struct {
	store       *store.Store
	pipeline    *dataprocessing.Pipeline
	broadcaster Broadcaster
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewDataService creates a data service. broadcaster and m may be nil; both
// concerns are then skipped.
func NewDataService(st *store.Store, pipeline *dataprocessing.Pipeline, broadcaster Broadcaster, m *metrics.Metrics, logger *slog.Logger) *DataService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataService{
		store:       st,
		pipeline:    pipeline,
		broadcaster: broadcaster,
		metrics:     m,
		logger:      logger.With(slog.String("component", "data_service")),
	}
}

// Import runs the whole file through the ingestion pipeline and, on success,
// replaces the store contents wholesale. On failure the store is untouched
// and the typed pipeline error propagates to the caller. The file format is
// chosen by extension: .xlsx goes through the workbook reader, everything
// else is treated as CSV.
func (s *DataService) Import(ctx context.Context, filename string, content []byte) (int, error) {
	start := time.Now()

	var (
		records []domain.LaborRecord
		err     error
	)
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		records, err = s.pipeline.IngestWorkbook(ctx, content)
	} else {
		records, err = s.pipeline.Ingest(ctx, content)
	}

	if err != nil {
		s.observeImport("failure", 0, start)
		s.logger.ErrorContext(ctx, "import failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return 0, err
	}

	s.store.Replace(records)
	s.observeImport("success", len(records), start)

	s.logger.InfoContext(ctx, "import succeeded",
		slog.String("filename", filename),
		slog.Int("records", len(records)))

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDataUpdate(ctx, len(records), filename)
	}

	return len(records), nil
}

// Records returns the current record set, filtered by the optional query
// parameters. Geography filtering and date-range filtering compose.
func (s *DataService) Records(ctx context.Context, query v1.RecordsQuery) []domain.LaborRecord {
	from := query.From
	to := query.To
	if to == "" {
		// Lexicographic upper bound above any YYYY-MM key
		to = "\xff"
	}
	hasDates := query.From != "" || query.To != ""

	switch {
	case query.Geography != "":
		records := s.store.FilterByGeography(query.Geography)
		if hasDates {
			records = filterDateRange(records, from, to)
		}
		return records
	case hasDates:
		return s.store.FilterByDateRange(from, to)
	default:
		return s.store.All()
	}
}

// TimeSeries returns the per-date aggregation of the current record set.
func (s *DataService) TimeSeries(ctx context.Context) []domain.TimeSeriesPoint {
	return analytics.TimeSeries(s.store.All())
}

// GeographySummaries returns the per-geography aggregation, sorted
// descending by average rate.
func (s *DataService) GeographySummaries(ctx context.Context) []domain.GeographySummary {
	return analytics.GeographySummaries(s.store.All())
}

// Summary returns the global metrics of the current record set.
func (s *DataService) Summary(ctx context.Context) domain.SummaryMetrics {
	return analytics.Summarize(s.store.All())
}

// Geographies returns the distinct geography labels, sorted ascending.
func (s *DataService) Geographies(ctx context.Context) []string {
	return s.store.Geographies()
}

// Export writes the current record set and its derived views to w in the
// requested format.
func (s *DataService) Export(ctx context.Context, format string, w io.Writer) error {
	records := s.store.All()

	switch format {
	case v1.ExportFormatCSV:
		return exporter.WriteRecordsCSV(w, records)
	case v1.ExportFormatXLSX:
		return exporter.WriteWorkbook(w, exporter.BuildReport(records))
	default:
		return ErrUnsupportedExportFormat
	}
}

func (s *DataService) observeImport(status string, records int, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveImport(status, records, time.Since(start).Seconds())
}

func filterDateRange(records []domain.LaborRecord, from, to string) []domain.LaborRecord {
	out := make([]domain.LaborRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out
}
