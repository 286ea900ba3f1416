package parser

import (
	"fmt"
	"iter"
	"strings"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
)

// Occurrence is one used slot of a repeating field group.
type Occurrence struct {
	// Slot is the 1-based slot number within the group.
	Slot int
	// Fields maps field keys to trimmed, non-blank values.
	Fields map[string]string
}

// Occurrences walks the slots of a repeating group in a row. A slot is
// yielded only when at least one of its fields is present and non-blank;
// slots the respondent left empty are skipped. The sequence can be ranged
// over any number of times.
func Occurrences(row []string, ix *ColumnIndex, group config.GroupLayout) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for n := 0; n < group.MaxEntries; n++ {
			var fields map[string]string
			exhausted := true
			for _, f := range group.Fields {
				occurrence := f.First + n
				if occurrence < ix.Count(f.Column) {
					exhausted = false
				}
				raw, ok := ix.Value(row, f.Column, occurrence)
				if !ok {
					continue
				}
				if v := strings.TrimSpace(raw); v != "" {
					if fields == nil {
						fields = make(map[string]string, len(group.Fields))
					}
					fields[f.Key] = v
				}
			}
			if exhausted {
				return
			}
			if fields == nil {
				continue
			}
			if !yield(Occurrence{Slot: n + 1, Fields: fields}) {
				return
			}
		}
	}
}

// ReportedPoints returns the platform-computed points cell for a slot, or ""
// when the group has no points column or the cell is absent.
func ReportedPoints(row []string, ix *ColumnIndex, group config.GroupLayout, slot int) string {
	if group.Points == nil {
		return ""
	}
	v, _ := ix.Value(row, fmt.Sprintf(group.Points.Column, slot), group.Points.Occurrence)
	return strings.TrimSpace(v)
}

// skipped reports whether an occurrence's type value says no activity took place.
func skipped(group config.GroupLayout, occ Occurrence) bool {
	value, ok := occ.Fields[group.TypeField]
	if !ok {
		return false
	}
	for _, s := range group.Skip {
		if value == s {
			return true
		}
	}
	return false
}
