package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildColumnIndex(t *testing.T) {
	ix := BuildColumnIndex(testHeaders)

	tests := []struct {
		name      string
		positions []int
	}{
		{"Record ID", []int{colRecordID}},
		{"Title", []int{colAwardTitle1, colAwardTitle2, colLectureTitle1, colLectureTitle2}},
		{"Award level", []int{colAwardLevel1, colAwardLevel2}},
		{"Complete?", []int{colStatus1, colStatus2}},
		{"Not a column", nil},
	}

	for _, tt := range tests {
		got := ix.positions[tt.name]
		if diff := cmp.Diff(tt.positions, got); diff != "" {
			t.Errorf("positions[%q] mismatch (-want +got):\n%s", tt.name, diff)
		}
		if ix.Count(tt.name) != len(tt.positions) {
			t.Errorf("Count(%q) = %d, expected %d", tt.name, ix.Count(tt.name), len(tt.positions))
		}
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("positions[%q] not strictly increasing: %v", tt.name, got)
			}
		}
	}
}

func TestColumnIndexValue(t *testing.T) {
	ix := BuildColumnIndex(testHeaders)
	row := makeRow(map[int]string{
		colEmail:         "a@x.edu",
		colAwardTitle2:   "R01",
		colLectureTitle1: "Airway",
		colStatus2:       "Complete",
	})

	tests := []struct {
		desc       string
		row        []string
		name       string
		occurrence int
		value      string
		ok         bool
	}{
		{"first occurrence", row, "Email", 0, "a@x.edu", true},
		{"later occurrence", row, "Title", 1, "R01", true},
		{"third occurrence", row, "Title", 2, "Airway", true},
		{"blank is present", row, "Title", 0, "", true},
		{"unknown column", row, "Fax", 0, "", false},
		{"occurrence out of range", row, "Title", 4, "", false},
		{"negative occurrence", row, "Title", -1, "", false},
		{"short row", row[:colEmail], "Email", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			value, ok := ix.Value(tt.row, tt.name, tt.occurrence)
			if value != tt.value || ok != tt.ok {
				t.Errorf("Value(%q, %d) = (%q, %v), expected (%q, %v)", tt.name, tt.occurrence, value, ok, tt.value, tt.ok)
			}
		})
	}

	if v, ok := ix.Last(row, "Complete?"); !ok || v != "Complete" {
		t.Errorf("Last(Complete?) = (%q, %v), expected (\"Complete\", true)", v, ok)
	}
	if _, ok := ix.Last(row, "Fax"); ok {
		t.Error("Last on unknown column should not be ok")
	}
}
