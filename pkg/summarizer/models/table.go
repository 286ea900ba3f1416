// Package models defines data structures produced by the summarizer engine.
package models

// RawTable is a header row plus data rows aligned to it by position.
// Header names may repeat for repeating field groups.
type RawTable struct {
	// Source is the file name the table was read from (no path), if any.
	Source string `json:"source,omitempty"`
	// Headers contains the header labels in column order.
	Headers []string `json:"headers"`
	// Rows contains the data rows; every row has len(Headers) cells.
	Rows [][]string `json:"rows"`
	// Lines holds the 1-based source line of each row, when known.
	Lines []int `json:"lines,omitempty"`
}

// FileRow returns the 1-based source line of data row i. Without recorded
// line numbers the header is assumed to be line 1 with no blank lines.
func (t *RawTable) FileRow(i int) int {
	if i < len(t.Lines) {
		return t.Lines[i]
	}
	return i + 2
}
