package domain

// Trend is the qualitative classification of a geography's rate movement
// between its first and last observed record.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// TimeSeriesPoint holds the per-date rates for the time-series chart.
// OverallRate is the mean of the urban and rural subset means, not the
// flat mean of all records on that date.
type TimeSeriesPoint struct {
	Date        string  `json:"date"`
	OverallRate float64 `json:"unemployment_rate"`
	UrbanRate   float64 `json:"urban"`
	RuralRate   float64 `json:"rural"`
}

// GeographySummary aggregates one geography's records. AvgRate is the
// record-weighted mean of all rates, rounded to two decimals.
type GeographySummary struct {
	Geography   string  `json:"geography"`
	AvgRate     float64 `json:"avg_unemployment_rate"`
	Trend       Trend   `json:"trend"`
	RecordCount int     `json:"data_points"`
}

// SummaryMetrics holds the global scalar aggregates over a record set.
type SummaryMetrics struct {
	AverageRate        float64 `json:"average_rate"`
	PeakRate           float64 `json:"peak_rate"`
	PeakDate           string  `json:"peak_date"`
	LowestRate         float64 `json:"lowest_rate"`
	LowestDate         string  `json:"lowest_date"`
	TotalDataPoints    int     `json:"total_data_points"`
	GeographiesCovered int     `json:"geographies_analyzed"`
}
