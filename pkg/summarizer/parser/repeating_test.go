package parser

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(seq iter.Seq[Occurrence]) []Occurrence {
	var out []Occurrence
	for occ := range seq {
		out = append(out, occ)
	}
	return out
}

func TestOccurrences(t *testing.T) {
	cfg := loadTestConfig(t)
	ix := BuildColumnIndex(testHeaders)
	awards := layout(t, cfg, "research.grant_awards")
	lectures := layout(t, cfg, "education.lectures")

	tests := []struct {
		name     string
		cells    map[int]string
		category string
		expected []Occurrence
	}{
		{
			name:     "no entries",
			cells:    map[int]string{colEmail: "a@x.edu"},
			category: "research.grant_awards",
			expected: nil,
		},
		{
			name: "first slot only",
			cells: map[int]string{
				colAwardLevel1: "Small",
				colAwardTitle1: " K23 ",
			},
			category: "research.grant_awards",
			expected: []Occurrence{
				{Slot: 1, Fields: map[string]string{"level": "Small", "title": "K23"}},
			},
		},
		{
			name: "blank first slot is skipped",
			cells: map[int]string{
				colAwardLevel1: "   ",
				colAwardLevel2: "Large",
			},
			category: "research.grant_awards",
			expected: []Occurrence{
				{Slot: 2, Fields: map[string]string{"level": "Large"}},
			},
		},
		{
			name: "shared column reads its own window",
			cells: map[int]string{
				colAwardTitle1:   "R01",
				colLectureType1:  "New Lecture",
				colLectureTitle1: "Airway",
				colLectureTitle2: "Sepsis",
			},
			category: "education.lectures",
			expected: []Occurrence{
				{Slot: 1, Fields: map[string]string{"type": "New Lecture", "title": "Airway"}},
				{Slot: 2, Fields: map[string]string{"title": "Sepsis"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := awards
			if tt.category == "education.lectures" {
				group = lectures
			}
			got := collect(Occurrences(makeRow(tt.cells), ix, group))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Occurrences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOccurrencesIsRestartable(t *testing.T) {
	cfg := loadTestConfig(t)
	ix := BuildColumnIndex(testHeaders)
	seq := Occurrences(makeRow(map[int]string{
		colAwardLevel1: "Small",
		colAwardLevel2: "Large",
	}), ix, layout(t, cfg, "research.grant_awards"))

	first := collect(seq)
	second := collect(seq)
	if len(first) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(first))
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}

	// Early stop
	n := 0
	for range seq {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected loop to stop after 1 occurrence, got %d", n)
	}
}

func TestOccurrencesBounds(t *testing.T) {
	cfg := loadTestConfig(t)
	awards := layout(t, cfg, "research.grant_awards")

	t.Run("max entries", func(t *testing.T) {
		group := awards
		group.MaxEntries = 1
		row := makeRow(map[int]string{colAwardLevel1: "Small", colAwardLevel2: "Large"})
		got := collect(Occurrences(row, BuildColumnIndex(testHeaders), group))
		if len(got) != 1 || got[0].Slot != 1 {
			t.Errorf("expected only slot 1, got %+v", got)
		}
	})

	t.Run("group absent from header", func(t *testing.T) {
		headers := []string{"Email", "Quarter"}
		got := collect(Occurrences([]string{"a@x.edu", "Q1"}, BuildColumnIndex(headers), awards))
		if len(got) != 0 {
			t.Errorf("expected no occurrences, got %+v", got)
		}
	})

	t.Run("short row", func(t *testing.T) {
		row := makeRow(map[int]string{colAwardLevel1: "Small", colAwardLevel2: "Large"})
		got := collect(Occurrences(row[:colAwardLevel2], BuildColumnIndex(testHeaders), awards))
		slots := make([]int, 0, len(got))
		for _, occ := range got {
			slots = append(slots, occ.Slot)
		}
		if !slices.Equal(slots, []int{1}) {
			t.Errorf("expected slots [1], got %v", slots)
		}
	})
}

func TestReportedPoints(t *testing.T) {
	cfg := loadTestConfig(t)
	ix := BuildColumnIndex(testHeaders)
	row := makeRow(map[int]string{colAwardPoints1: "500", colAwardPoints2: " 5000 "})

	awards := layout(t, cfg, "research.grant_awards")
	if got := ReportedPoints(row, ix, awards, 1); got != "500" {
		t.Errorf("slot 1 = %q, expected \"500\"", got)
	}
	if got := ReportedPoints(row, ix, awards, 2); got != "5000" {
		t.Errorf("slot 2 = %q, expected \"5000\"", got)
	}
	if got := ReportedPoints(row, ix, awards, 3); got != "" {
		t.Errorf("slot 3 = %q, expected \"\"", got)
	}
	if got := ReportedPoints(row, ix, layout(t, cfg, "education.lectures"), 1); got != "" {
		t.Errorf("group without points column = %q, expected \"\"", got)
	}
}
