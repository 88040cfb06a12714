package errors

import (
	"errors"
	"fmt"
	"strings"
)

// IngestErrorKind identifies a file-level ingestion failure. Every kind is
// terminal for the current ingest attempt; the store is left untouched.
type IngestErrorKind string

const (
	IngestParseFailed   IngestErrorKind = "PARSE_ERROR"
	IngestEmptyFile     IngestErrorKind = "EMPTY_FILE"
	IngestMissingColumn IngestErrorKind = "MISSING_DATE_COLUMN"
	IngestNoRateData    IngestErrorKind = "NO_RATE_DATA"
	IngestNoValidRows   IngestErrorKind = "NO_VALID_ROWS"
)

// IngestError is the typed error returned by the ingestion pipeline.
// Row-level problems are never represented as IngestError values; they are
// swallowed during reconciliation and only reduce the output set.
type IngestError struct {
	Kind    IngestErrorKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with IngestError
func (e *IngestError) Unwrap() error {
	return e.Cause
}

// NewParseError reports unparsable tabular syntax. The messages of all
// underlying parse issues are joined into a single human-readable string.
func NewParseError(issues []string) *IngestError {
	return &IngestError{
		Kind:    IngestParseFailed,
		Message: fmt.Sprintf("CSV parsing errors: %s", strings.Join(issues, ", ")),
	}
}

// NewEmptyFileError reports a file that parsed to zero data rows.
func NewEmptyFileError() *IngestError {
	return &IngestError{
		Kind:    IngestEmptyFile,
		Message: "file is empty or contains no valid data",
	}
}

// NewMissingColumnError reports that no date column could be recognized.
// The available column names are listed so the user can fix the header row.
func NewMissingColumnError(available []string) *IngestError {
	return &IngestError{
		Kind:    IngestMissingColumn,
		Message: fmt.Sprintf("missing required columns: date. Available columns: %s", strings.Join(available, ", ")),
	}
}

// NewNoRateDataError reports that no unemployment rate column of any kind
// (direct, urban, or rural) was found.
func NewNoRateDataError() *IngestError {
	return &IngestError{
		Kind:    IngestNoRateData,
		Message: "no unemployment rate data found; the file must contain an unemployment rate column",
	}
}

// NewNoValidRowsError reports that every row failed row-level reconciliation.
func NewNoValidRowsError() *IngestError {
	return &IngestError{
		Kind:    IngestNoValidRows,
		Message: "no valid data rows found; check the data format",
	}
}

// IngestKind extracts the kind from an ingestion error chain, or "" when the
// error did not originate in the pipeline.
func IngestKind(err error) IngestErrorKind {
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}
