// Package dataprocessing implements the ingestion engine that turns raw
// tabular unemployment statistics into canonical labor records.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Normalizer: maps arbitrary input column headers to the canonical field vocabulary
// 2. Reconciler: resolves one normalized row into zero, one, or two canonical records
// 3. Pipeline: parses CSV or Excel input, applies the normalizer and reconciler
// per row, and enforces file-level validation
//
// # Data Flow
//
//	Raw bytes → Pipeline → normalized rows → Reconciler → []domain.LaborRecord
//
// # Error Handling
//
// Row-level problems (missing date, non-positive rate, malformed numeric
// cells) never fail an ingest; they silently reduce the output set. Only
// file-level problems are surfaced, as typed *errors.IngestError values:
// unparsable tabular syntax, an empty file, a missing date column, no rate
// column of any kind, or zero surviving rows.
package dataprocessing
