package models

import "strings"

// SubmissionRef records one submission folded into a FacultyRecord.
type SubmissionRef struct {
	Row      int    `json:"row"`
	RecordID string `json:"record_id,omitempty"`
	Quarter  string `json:"quarter"`
	Status   Status `json:"status"`
}

// FacultyRecord is the aggregate of all submissions sharing one identity.
// Renderers must treat it as read-only.
type FacultyRecord struct {
	// Identity is the join key (normalized email, or trimmed name).
	Identity string `json:"identity"`
	// Email is the email captured from the first submission that had one.
	Email string `json:"email,omitempty"`
	// FirstName is the first name captured from the first named submission.
	FirstName string `json:"first_name,omitempty"`
	// LastName is the last name captured from the first named submission.
	LastName string `json:"last_name,omitempty"`
	// Name is the display name ("Last, First").
	Name string `json:"name"`
	// Quarters lists quarter labels in order of first appearance, without duplicates.
	Quarters []string `json:"quarters"`
	// Submissions lists contributing submissions in fold order.
	Submissions []SubmissionRef `json:"submissions"`
	// Status is INCOMPLETE if any contributing submission was incomplete.
	Status Status `json:"status"`
	// Activities maps category key to entries concatenated across quarters.
	Activities map[string][]ActivityRecord `json:"activities"`
	// CategoryTotals maps category key to summed points.
	CategoryTotals map[string]int `json:"category_totals"`
	// GroupTotals maps top-level category group to summed points.
	GroupTotals map[string]int `json:"group_totals"`
	// Total is the grand total across all groups.
	Total int `json:"total"`
}

// QuartersLabel joins the reported quarters for display.
func (f *FacultyRecord) QuartersLabel() string {
	return strings.Join(f.Quarters, ", ")
}

// ActivityCount returns the number of activities across all categories.
func (f *FacultyRecord) ActivityCount() int {
	n := 0
	for _, entries := range f.Activities {
		n += len(entries)
	}
	return n
}
