package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the generated workbook
const (
	sheetRecords     = "Records"
	sheetTimeSeries  = "Time Series"
	sheetGeographies = "Geographies"
	sheetSummary     = "Summary"
)

// WriteWorkbook renders the full report as an Excel workbook with one sheet
// per view.
func WriteWorkbook(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRecordsSheet(f, report); err != nil {
		return err
	}
	if err := writeTimeSeriesSheet(f, report); err != nil {
		return err
	}
	if err := writeGeographiesSheet(f, report); err != nil {
		return err
	}
	if err := writeSummarySheet(f, report); err != nil {
		return err
	}

	// The default sheet excelize creates is replaced by Records
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRecordsSheet(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(sheetRecords); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetRecords, err)
	}

	rows := [][]interface{}{
		{"ID", "Date", "Geography", "Region", "Unemployment Rate (%)", "Population", "Labor Force", "Estimated Unemployed"},
	}
	for _, rec := range report.Records {
		rows = append(rows, []interface{}{
			rec.ID, rec.Date, rec.Geography, string(rec.Region),
			rec.UnemploymentRate, rec.Population, rec.LaborForce, rec.EstimatedUnemployed,
		})
	}
	return writeRows(f, sheetRecords, rows)
}

func writeTimeSeriesSheet(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(sheetTimeSeries); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetTimeSeries, err)
	}

	rows := [][]interface{}{
		{"Date", "Overall Rate", "Urban Rate", "Rural Rate"},
	}
	for _, point := range report.TimeSeries {
		rows = append(rows, []interface{}{
			point.Date, point.OverallRate, point.UrbanRate, point.RuralRate,
		})
	}
	return writeRows(f, sheetTimeSeries, rows)
}

func writeGeographiesSheet(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(sheetGeographies); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetGeographies, err)
	}

	rows := [][]interface{}{
		{"Geography", "Average Rate", "Trend", "Data Points"},
	}
	for _, summary := range report.Geographies {
		rows = append(rows, []interface{}{
			summary.Geography, summary.AvgRate, string(summary.Trend), summary.RecordCount,
		})
	}
	return writeRows(f, sheetGeographies, rows)
}

func writeSummarySheet(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetSummary, err)
	}

	s := report.Summary
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Average Rate", s.AverageRate},
		{"Peak Rate", s.PeakRate},
		{"Peak Date", s.PeakDate},
		{"Lowest Rate", s.LowestRate},
		{"Lowest Date", s.LowestDate},
		{"Total Data Points", s.TotalDataPoints},
		{"Geographies Analyzed", s.GeographiesCovered},
	}
	return writeRows(f, sheetSummary, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolve cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d on sheet %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
