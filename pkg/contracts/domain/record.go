package domain

// Region classifies a record as urban or rural
type Region string

const (
	RegionUrban Region = "Urban"
	RegionRural Region = "Rural"
)

// DefaultGeography is used when the input carries no geography column
const DefaultGeography = "National"

// LaborRecord represents a single reconciled unemployment observation.
// Date is an opaque sort/group key (expected YYYY-MM), never parsed into
// a time.Time. A stored record always has UnemploymentRate > 0; a rate of
// zero is treated as missing data during reconciliation.
type LaborRecord struct {
	ID                  string  `json:"id"`
	Date                string  `json:"date" validate:"required"`
	Geography           string  `json:"geography" validate:"required"`
	Region              Region  `json:"region" validate:"required,oneof=Urban Rural"`
	UnemploymentRate    float64 `json:"unemployment_rate" validate:"gt=0"`
	Population          int64   `json:"population" validate:"min=0"`
	LaborForce          int64   `json:"labor_force" validate:"min=0"`
	EstimatedUnemployed int64   `json:"estimated_unemployed" validate:"min=0"`
}
