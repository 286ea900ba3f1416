// Package output renders summarizer results for export. The engine packages
// never import it.
package output

import (
	"encoding/json"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// ToJSON serializes any result value to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// FacultyListEntry is the JSON shape of one faculty list line.
type FacultyListEntry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Quarters string `json:"quarters"`
	Points   int    `json:"points"`
	Status   string `json:"status"`
}

// FacultyList converts summary tuples to list entries.
func FacultyList(rows []models.SummaryRow) []FacultyListEntry {
	list := make([]FacultyListEntry, 0, len(rows))
	for _, r := range rows {
		status := "Complete"
		if r.Status == models.StatusIncomplete {
			status = "INCOMPLETE"
		}
		list = append(list, FacultyListEntry{
			Name:     r.Name,
			Email:    r.Email,
			Quarters: r.Quarters,
			Points:   r.Total,
			Status:   status,
		})
	}
	return list
}
