package dataprocessing

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "laborcli/internal/errors"
	"laborcli/pkg/contracts/domain"
)

// Pipeline orchestrates parsing raw tabular input into canonical records.
// Every ingest is all-or-nothing: either the whole file yields a usable
// record set or a typed *apperrors.IngestError is returned and the caller's
// state stays untouched.
type Pipeline struct {
	logger *slog.Logger
}

// NewPipeline creates an ingestion pipeline
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger: logger.With(slog.String("component", "ingest_pipeline")),
	}
}

// Ingest parses CSV content and reconciles it into canonical records.
func (p *Pipeline) Ingest(ctx context.Context, content []byte) ([]domain.LaborRecord, error) {
	rows, issues := parseCSV(content)
	if len(issues) > 0 {
		return nil, apperrors.NewParseError(issues)
	}

	return p.ingestRows(ctx, rows)
}

// IngestWorkbook extracts the first sheet carrying a recognizable date header
// from an Excel workbook and runs it through the same reconciliation as CSV
// input.
func (p *Pipeline) IngestWorkbook(ctx context.Context, content []byte) ([]domain.LaborRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, apperrors.NewParseError([]string{err.Error()})
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if !hasDateHeader(rows[0]) {
			continue
		}

		p.logger.InfoContext(ctx, "found tabular data in sheet",
			slog.String("sheet_name", name),
			slog.Int("total_rows", len(rows)))
		return p.ingestRows(ctx, rows)
	}

	return nil, apperrors.NewEmptyFileError()
}

// ingestRows applies header normalization, file-level validation, and
// row-level reconciliation to raw tabular rows.
func (p *Pipeline) ingestRows(ctx context.Context, rows [][]string) ([]domain.LaborRecord, error) {
	header, dataRows := splitHeader(rows)
	if len(dataRows) == 0 {
		return nil, apperrors.NewEmptyFileError()
	}

	if !containsDateColumn(header) {
		return nil, apperrors.NewMissingColumnError(header)
	}
	if !containsRateColumn(header) {
		return nil, apperrors.NewNoRateDataError()
	}

	records := make([]domain.LaborRecord, 0, len(dataRows))
	dropped := 0
	for i, cells := range dataRows {
		row := buildRow(header, cells)
		recs := ReconcileRow(row, i+1)
		if len(recs) == 0 {
			dropped++
			p.logger.WarnContext(ctx, "skipping invalid row",
				slog.Int("row_number", i+1),
				slog.String("date", row[FieldDate]),
				slog.String("rate", row[FieldRate]))
			continue
		}
		records = append(records, recs...)
	}

	if len(records) == 0 {
		return nil, apperrors.NewNoValidRowsError()
	}

	p.logger.InfoContext(ctx, "ingest complete",
		slog.Int("input_rows", len(dataRows)),
		slog.Int("records", len(records)),
		slog.Int("dropped_rows", dropped))

	return records, nil
}

// parseCSV reads the whole input, collecting every structural parse issue
// instead of stopping at the first one. Every row must carry the header's
// field count; a ragged row is a structural issue, not a droppable row.
// Empty lines are skipped and a UTF-8 BOM is tolerated.
func parseCSV(content []byte) ([][]string, []string) {
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.TrimLeadingSpace = true

	var rows [][]string
	var issues []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			issues = append(issues, err.Error())
			continue
		}
		if isEmptyRow(record) {
			continue
		}
		rows = append(rows, record)
	}

	return rows, issues
}

// splitHeader normalizes the first row into the canonical vocabulary and
// returns it alongside the remaining data rows.
func splitHeader(rows [][]string) ([]string, [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = NormalizeHeader(h)
	}
	return header, rows[1:]
}

// buildRow zips header names with row cells; short rows simply leave the
// trailing fields absent.
func buildRow(header []string, cells []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		if i >= len(cells) {
			break
		}
		row[name] = cells[i]
	}
	return row
}

// containsDateColumn reports whether any header key equals or contains the
// canonical date field, case-insensitively.
func containsDateColumn(header []string) bool {
	for _, key := range header {
		if strings.Contains(strings.ToLower(key), FieldDate) {
			return true
		}
	}
	return false
}

// containsRateColumn reports whether any header key carries rate data in any
// of its three canonical forms.
func containsRateColumn(header []string) bool {
	for _, key := range header {
		if strings.Contains(key, FieldRate) ||
			strings.Contains(key, FieldUrbanRate) ||
			strings.Contains(key, FieldRuralRate) {
			return true
		}
	}
	return false
}

// hasDateHeader is the sheet-selection probe for workbook input.
func hasDateHeader(headerRow []string) bool {
	normalized := make([]string, len(headerRow))
	for i, h := range headerRow {
		normalized[i] = NormalizeHeader(h)
	}
	return containsDateColumn(normalized)
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
