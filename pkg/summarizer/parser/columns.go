// Package parser turns survey export rows into quarter submissions.
package parser

// ColumnIndex maps each header label to the positions where it occurs, in
// left-to-right order. Repeating field groups share labels, so a label can
// map to many positions.
type ColumnIndex struct {
	positions map[string][]int
}

// BuildColumnIndex indexes a header row. It never fails; labels that do not
// appear simply have no positions.
func BuildColumnIndex(headers []string) *ColumnIndex {
	ix := &ColumnIndex{
		positions: make(map[string][]int, len(headers)),
	}
	for i, name := range headers {
		ix.positions[name] = append(ix.positions[name], i)
	}
	return ix
}

// Count returns how many times a label occurs in the header.
func (ix *ColumnIndex) Count(name string) int {
	return len(ix.positions[name])
}

// Value returns the cell for the given occurrence (0-based) of a label.
// ok is false when the label is unknown, the occurrence does not exist, or
// the row is too short. Blank cells are returned as-is with ok true, so
// callers can tell a blank answer from a field group that is not present.
func (ix *ColumnIndex) Value(row []string, name string, occurrence int) (value string, ok bool) {
	positions := ix.positions[name]
	if occurrence < 0 || occurrence >= len(positions) {
		return "", false
	}
	pos := positions[occurrence]
	if pos >= len(row) {
		return "", false
	}
	return row[pos], true
}

// Last returns the cell of the last occurrence of a label.
func (ix *ColumnIndex) Last(row []string, name string) (string, bool) {
	return ix.Value(row, name, len(ix.positions[name])-1)
}
