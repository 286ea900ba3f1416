package models

// ActivityRecord is one reported achievement instance.
// It is not modified after the parser creates it.
type ActivityRecord struct {
	// Category is the dotted category key (group.subtype).
	Category string `json:"category"`
	// Fields maps descriptive field keys (type, title, date, ...) to their values.
	Fields map[string]string `json:"fields"`
	// Points is the computed point value for this entry.
	Points int `json:"points"`
	// Quarter is the quarter label of the submission that reported the entry.
	Quarter string `json:"quarter"`
	// RecordID is the platform record id of the source submission.
	RecordID string `json:"record_id,omitempty"`
	// Slot is the 1-based position of the entry within its repeating group.
	Slot int `json:"slot"`
}
