package models

import "strings"

// QuarterSubmission is the parsed form of one CSV row: one person's
// submission for one quarter.
type QuarterSubmission struct {
	// Row is the 1-based line number in the source file.
	Row int `json:"row"`
	// RecordID is the platform record id.
	RecordID string `json:"record_id,omitempty"`
	// Identity is the key used to join submissions across quarters.
	Identity string `json:"identity"`
	// Email is the normalized (trimmed, lower-case) email address.
	Email string `json:"email,omitempty"`
	// FirstName is the trimmed first name.
	FirstName string `json:"first_name,omitempty"`
	// LastName is the trimmed last name.
	LastName string `json:"last_name,omitempty"`
	// Quarter is the reporting period label.
	Quarter string `json:"quarter"`
	// Status is the completion status of the submission.
	Status Status `json:"status"`
	// Activities contains the reported activities in instrument order.
	Activities []ActivityRecord `json:"activities"`
}

// FullName returns "First Last" with blank parts omitted.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// DisplayName returns "Last, First" when both parts are known, whichever part
// is known otherwise, and fallback when neither is.
func DisplayName(first, last, fallback string) string {
	switch {
	case first != "" && last != "":
		return last + ", " + first
	case last != "":
		return last
	case first != "":
		return first
	}
	return fallback
}
