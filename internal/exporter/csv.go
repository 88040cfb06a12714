package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"laborcli/pkg/contracts/domain"
)

// recordsHeader matches the canonical import vocabulary so an exported file
// round-trips through the ingestion pipeline unchanged.
var recordsHeader = []string{
	"id", "date", "state", "region",
	"unemployment_rate", "population", "labor_force", "estimated_unemployed",
}

// WriteRecordsCSV writes the record set as CSV.
func WriteRecordsCSV(w io.Writer, records []domain.LaborRecord) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(recordsHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Date,
			rec.Geography,
			string(rec.Region),
			formatRate(rec.UnemploymentRate),
			strconv.FormatInt(rec.Population, 10),
			strconv.FormatInt(rec.LaborForce, 10),
			strconv.FormatInt(rec.EstimatedUnemployed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row for record %s: %w", rec.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
