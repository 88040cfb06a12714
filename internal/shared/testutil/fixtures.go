package testutil

import (
	"fmt"
	"strings"

	"laborcli/pkg/contracts/domain"
)

// Record builds a labor record with sane defaults; override via opts
func Record(opts ...func(*domain.LaborRecord)) domain.LaborRecord {
	rec := domain.LaborRecord{
		ID:                  "test_1",
		Date:                "2024-01",
		Geography:           "Delhi",
		Region:              domain.RegionUrban,
		UnemploymentRate:    5.0,
		Population:          1000000,
		LaborForce:          400000,
		EstimatedUnemployed: 20000,
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

// WithGeography overrides the geography label
func WithGeography(geography string) func(*domain.LaborRecord) {
	return func(r *domain.LaborRecord) { r.Geography = geography }
}

// WithDate overrides the date key
func WithDate(date string) func(*domain.LaborRecord) {
	return func(r *domain.LaborRecord) { r.Date = date }
}

// WithRate overrides the unemployment rate
func WithRate(rate float64) func(*domain.LaborRecord) {
	return func(r *domain.LaborRecord) { r.UnemploymentRate = rate }
}

// WithRegion overrides the region
func WithRegion(region domain.Region) func(*domain.LaborRecord) {
	return func(r *domain.LaborRecord) { r.Region = region }
}

// WithID overrides the record id
func WithID(id string) func(*domain.LaborRecord) {
	return func(r *domain.LaborRecord) { r.ID = id }
}

// CSV joins rows into file content; each row is a comma-joined line
func CSV(rows ...[]string) []byte {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// RecordsCSV renders records as an importable CSV file using the canonical
// column vocabulary.
func RecordsCSV(records []domain.LaborRecord) []byte {
	rows := [][]string{
		{"id", "date", "state", "region", "unemployment_rate", "population", "labor_force", "estimated_unemployed"},
	}
	for _, rec := range records {
		rows = append(rows, []string{
			rec.ID,
			rec.Date,
			rec.Geography,
			string(rec.Region),
			fmt.Sprintf("%g", rec.UnemploymentRate),
			fmt.Sprintf("%d", rec.Population),
			fmt.Sprintf("%d", rec.LaborForce),
			fmt.Sprintf("%d", rec.EstimatedUnemployed),
		})
	}
	return CSV(rows...)
}
