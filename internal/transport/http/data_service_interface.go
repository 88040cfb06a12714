package http

import (
	"context"
	"io"

	v1 "laborcli/pkg/contracts/api/v1"
	"laborcli/pkg/contracts/domain"
)

// DataServiceInterface is the service surface the data handler depends on.
// Defined on the consumer side so handler tests can substitute a mock.
type DataServiceInterface interface {
	Import(ctx context.Context, filename string, content []byte) (int, error)
	Records(ctx context.Context, query v1.RecordsQuery) []domain.LaborRecord
	TimeSeries(ctx context.Context) []domain.TimeSeriesPoint
	GeographySummaries(ctx context.Context) []domain.GeographySummary
	Summary(ctx context.Context) domain.SummaryMetrics
	Geographies(ctx context.Context) []string
	Export(ctx context.Context, format string, w io.Writer) error
}
