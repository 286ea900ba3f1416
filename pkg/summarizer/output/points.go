package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// PointsSheetName is the worksheet name of the Excel points summary.
const PointsSheetName = "Points Summary"

// PointsHeader returns the column labels of the points summary.
func PointsHeader(cfg *config.Config) []string {
	header := []string{"Last Name", "First Name", "Email", "Quarters Reported", "Status"}
	for _, group := range cfg.GroupKeys() {
		header = append(header, cfg.GroupName(group)+" Points")
	}
	return append(header, "TOTAL POINTS")
}

// PointsRecord returns one summary row as points summary cells. Records
// without a first or last name use the display name as last name.
func PointsRecord(row models.SummaryRow, cfg *config.Config) []string {
	last, first := row.LastName, row.FirstName
	if last == "" && first == "" {
		last = row.Name
	}
	record := []string{last, first, row.Email, row.Quarters, row.Status.Label()}
	for _, group := range cfg.GroupKeys() {
		record = append(record, strconv.Itoa(row.GroupTotals[group]))
	}
	return append(record, strconv.Itoa(row.Total))
}

// WritePointsCSV writes the points summary as CSV.
func WritePointsCSV(w io.Writer, rows []models.SummaryRow, cfg *config.Config) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PointsHeader(cfg)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(PointsRecord(row, cfg)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePointsXLSX writes the points summary as an Excel workbook.
func WritePointsXLSX(w io.Writer, rows []models.SummaryRow, cfg *config.Config) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PointsSheetName); err != nil {
		return err
	}

	header := PointsHeader(cfg)
	if err := f.SetSheetRow(PointsSheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(PointsSheetName, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	groups := cfg.GroupKeys()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := sheetValues(row, groups)
		if err := f.SetSheetRow(PointsSheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(PointsSheetName, "A", "D", 24); err != nil {
		return err
	}
	return f.Write(w)
}

// sheetValues keeps point columns numeric in the workbook.
func sheetValues(row models.SummaryRow, groups []string) []interface{} {
	last, first := row.LastName, row.FirstName
	if last == "" && first == "" {
		last = row.Name
	}
	values := []interface{}{last, first, row.Email, row.Quarters, row.Status.Label()}
	for _, group := range groups {
		values = append(values, row.GroupTotals[group])
	}
	return append(values, row.Total)
}
