package aggregate

import (
	"sort"
	"strings"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// Sorted returns the records ordered by surname, then first name, then identity.
func Sorted(records map[string]*models.FacultyRecord) []*models.FacultyRecord {
	list := make([]*models.FacultyRecord, 0, len(records))
	for _, rec := range records {
		list = append(list, rec)
	}
	sort.Slice(list, func(i, j int) bool {
		return lessBySurname(list[i], list[j])
	})
	return list
}

func lessBySurname(a, b *models.FacultyRecord) bool {
	as, bs := surnameKey(a), surnameKey(b)
	if as != bs {
		return as < bs
	}
	af, bf := strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)
	if af != bf {
		return af < bf
	}
	return a.Identity < b.Identity
}

// surnameKey falls back to the display name for records without a last name.
func surnameKey(rec *models.FacultyRecord) string {
	if rec.LastName != "" {
		return strings.ToLower(rec.LastName)
	}
	return strings.ToLower(rec.Name)
}

// Summaries returns one summary tuple per record, sorted by surname.
func Summaries(records map[string]*models.FacultyRecord) []models.SummaryRow {
	sorted := Sorted(records)
	rows := make([]models.SummaryRow, 0, len(sorted))
	for _, rec := range sorted {
		rows = append(rows, SummaryOf(rec))
	}
	return rows
}

// SummaryOf returns the summary tuple of one record.
func SummaryOf(rec *models.FacultyRecord) models.SummaryRow {
	groups := make(map[string]int, len(rec.GroupTotals))
	for k, v := range rec.GroupTotals {
		groups[k] = v
	}
	return models.SummaryRow{
		Name:        rec.Name,
		Email:       rec.Email,
		Quarters:    rec.QuartersLabel(),
		Total:       rec.Total,
		Status:      rec.Status,
		Identity:    rec.Identity,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		GroupTotals: groups,
	}
}
