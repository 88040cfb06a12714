package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"laborcli/pkg/contracts/domain"
)

// Row is one parsed data row keyed by canonical (or passthrough) field name.
type Row map[string]string

// ReconcileRow resolves one normalized row into zero, one, or two canonical
// records. A row carrying both a positive urban and a positive rural rate
// expands into an Urban and a Rural record sharing every other field; any
// other row yields at most a single Urban record. rowIndex is 1-based and
// only feeds the generated record IDs.
func ReconcileRow(row Row, rowIndex int) []domain.LaborRecord {
	rate := parseRate(row[FieldRate])
	urbanRate := parsePositive(row[FieldUrbanRate])
	ruralRate := parsePositive(row[FieldRuralRate])

	// Fall back to the region-specific rates only when the direct field is
	// absent or zero. A malformed direct rate stays NaN and kills the row;
	// a negative one skips the fallback and fails the guard below.
	if rate == 0 {
		switch {
		case urbanRate > 0 && ruralRate > 0:
			rate = (urbanRate + ruralRate) / 2
		case urbanRate > 0:
			rate = urbanRate
		case ruralRate > 0:
			rate = ruralRate
		}
	}

	if math.IsNaN(rate) || rate <= 0 {
		return nil
	}

	date := strings.TrimSpace(row[FieldDate])
	geography := strings.TrimSpace(row[FieldGeography])
	if geography == "" {
		geography = domain.DefaultGeography
	}
	population := parseCount(row[FieldPopulation])
	laborForce := parseCount(row[FieldLaborForce])
	unemployed := parseCount(row[FieldUnemployed])

	if urbanRate > 0 && ruralRate > 0 {
		shared := domain.LaborRecord{
			Date:                date,
			Geography:           geography,
			Population:          population,
			LaborForce:          laborForce,
			EstimatedUnemployed: unemployed,
		}

		urban := shared
		urban.ID = fmt.Sprintf("imported_%d_urban", rowIndex)
		urban.Region = domain.RegionUrban
		urban.UnemploymentRate = urbanRate

		rural := shared
		rural.ID = fmt.Sprintf("imported_%d_rural", rowIndex)
		rural.Region = domain.RegionRural
		rural.UnemploymentRate = ruralRate

		return []domain.LaborRecord{urban, rural}
	}

	if date == "" {
		return nil
	}

	id := strings.TrimSpace(row[FieldID])
	if id == "" {
		id = fmt.Sprintf("imported_%d", rowIndex)
	}

	return []domain.LaborRecord{{
		ID:                  id,
		Date:                date,
		Geography:           geography,
		Region:              domain.RegionUrban,
		UnemploymentRate:    rate,
		Population:          population,
		LaborForce:          laborForce,
		EstimatedUnemployed: unemployed,
	}}
}

// parseRate parses the direct rate cell. Absent or empty means zero (eligible
// for the urban/rural fallback); a malformed value means NaN, which rejects
// the row outright.
func parseRate(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return val
}

// parsePositive parses a region-specific rate cell; anything absent,
// malformed, or non-positive counts as missing data.
func parsePositive(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val <= 0 {
		return 0
	}
	return val
}

// parseCount parses an integer field, defaulting to zero on any failure.
// Malformed numeric cells never fail a row.
func parseCount(raw string) int64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return int64(f)
		}
		return 0
	}
	if val < 0 {
		return 0
	}
	return val
}
