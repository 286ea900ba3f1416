package parser

import (
	"testing"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
)

const testConfig = `
groups:
  - {key: research, name: Research}
  - {key: education, name: Education}
categories:
  research.grant_awards:
    name: Grant Awards
    kind: by_type
    type_field: level
    rates:
      Small: 500
      Large: 5000
  education.lectures:
    name: Lectures
    kind: by_type
    rates:
      "New Lecture": 250
      "Existing Lecture": 50
instrument:
  record_id_column: "Record ID"
  first_name_column: First
  last_name_column: Last
  email_column: Email
  quarter_column: Quarter
  status_column: "Complete?"
  groups:
    - category: research.grant_awards
      max_entries: 2
      type_field: level
      points: {column: "Points for Award #%d"}
      fields:
        - {key: level, column: "Award level"}
        - {key: title, column: Title}
    - category: education.lectures
      max_entries: 2
      skip: ["I mistakenly answered Yes - I did not do this activity"]
      fields:
        - {key: type, column: "Lecture type"}
        - {key: title, column: Title, first: 2}
`

// Column positions of testHeaders.
const (
	colRecordID = iota
	colFirst
	colLast
	colEmail
	colQuarter
	colAwardLevel1
	colAwardTitle1
	colAwardPoints1
	colAwardLevel2
	colAwardTitle2
	colAwardPoints2
	colLectureType1
	colLectureTitle1
	colLectureType2
	colLectureTitle2
	colStatus1
	colStatus2
)

var testHeaders = []string{
	"Record ID", "First", "Last", "Email", "Quarter",
	"Award level", "Title", "Points for Award #1",
	"Award level", "Title", "Points for Award #2",
	"Lecture type", "Title",
	"Lecture type", "Title",
	"Complete?", "Complete?",
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(testConfig))
	if err != nil {
		t.Fatalf("Failed to parse test config: %v", err)
	}
	return cfg
}

// makeRow returns a row as wide as testHeaders with the given cells set.
func makeRow(cells map[int]string) []string {
	row := make([]string, len(testHeaders))
	for i, v := range cells {
		row[i] = v
	}
	return row
}

func layout(t *testing.T, cfg *config.Config, category string) config.GroupLayout {
	t.Helper()
	for _, g := range cfg.Instrument.Groups {
		if g.Category == category {
			return g
		}
	}
	t.Fatalf("no group layout for %s", category)
	return config.GroupLayout{}
}
