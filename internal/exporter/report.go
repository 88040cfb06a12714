// Package exporter renders the current record set and its derived views as
// downloadable CSV or Excel reports.
package exporter

import (
	"laborcli/internal/analytics"
	"laborcli/pkg/contracts/domain"
)

// Report bundles a record set with every derived view the dashboard shows.
type Report struct {
	Records     []domain.LaborRecord
	TimeSeries  []domain.TimeSeriesPoint
	Geographies []domain.GeographySummary
	Summary     domain.SummaryMetrics
}

// BuildReport computes all derived views for a record set.
func BuildReport(records []domain.LaborRecord) Report {
	return Report{
		Records:     records,
		TimeSeries:  analytics.TimeSeries(records),
		Geographies: analytics.GeographySummaries(records),
		Summary:     analytics.Summarize(records),
	}
}
