// Package api contains API contract definitions for the Labor Pulse backend.
// Version v1 represents the current stable API version.
package api

// RecordsQuery represents the filter parameters accepted by the records endpoint.
// From/To are compared lexicographically against the record date key, which is
// why the YYYY-MM shape is enforced here and nowhere else.
type RecordsQuery struct {
	Geography string `json:"geography" query:"geography"`
	From      string `json:"from" query:"from" validate:"omitempty,datetime=2006-01"`
	To        string `json:"to" query:"to" validate:"omitempty,datetime=2006-01"`
}

// ExportFormat values accepted by the export endpoint
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

// ImportResponse is returned after a successful file import
type ImportResponse struct {
	Status      string `json:"status"`
	RecordCount int    `json:"record_count"`
	Filename    string `json:"filename"`
}
