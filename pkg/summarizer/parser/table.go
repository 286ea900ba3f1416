package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a comma-delimited UTF-8 export. The first record is the
// header; blank lines and rows with no content are skipped.
func ReadCSV(r io.Reader) (*models.RawTable, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("unable to read header: %w", err)
	}

	table := newTable(headers)
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("unable to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		addRow(table, record, line)
	}
	return table, nil
}

// ReadXLSX reads a worksheet of an Excel export. An empty sheet name selects
// the first sheet.
func ReadXLSX(r io.Reader, sheet string) (*models.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyInput
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	table := newTable(rows[0])
	for i, row := range rows[1:] {
		addRow(table, row, i+2) // 1-based, header on row 1
	}
	return table, nil
}

func newTable(headers []string) *models.RawTable {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.TrimSpace(h)
	}
	return &models.RawTable{Headers: cleaned}
}

// addRow appends a row padded or truncated to the header width, so every row
// aligns with the header. Rows without any content are dropped.
func addRow(t *models.RawTable, record []string, line int) {
	hasData := false
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			hasData = true
			break
		}
	}
	if !hasData {
		return
	}

	row := make([]string, len(t.Headers))
	copy(row, record)
	t.Rows = append(t.Rows, row)
	t.Lines = append(t.Lines, line)
}
