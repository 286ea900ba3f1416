package aggregate

import (
	"strings"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// Select resolves selectors against records, in the order given. A selector
// matches a record whose identity or email equals it (ignoring case), or
// whose display name contains it; the first match wins. Selectors that match
// nothing are returned in unmatched.
func Select(records []*models.FacultyRecord, selectors []string) (selected []*models.FacultyRecord, unmatched []string) {
	picked := make(map[string]bool)
	for _, sel := range selectors {
		q := strings.ToLower(strings.TrimSpace(sel))
		if q == "" {
			continue
		}
		rec := match(records, q)
		if rec == nil {
			unmatched = append(unmatched, sel)
			continue
		}
		if !picked[rec.Identity] {
			picked[rec.Identity] = true
			selected = append(selected, rec)
		}
	}
	return selected, unmatched
}

func match(records []*models.FacultyRecord, q string) *models.FacultyRecord {
	for _, rec := range records {
		if q == strings.ToLower(rec.Identity) || q == strings.ToLower(rec.Email) {
			return rec
		}
	}
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			return rec
		}
	}
	return nil
}
