package models

// Status is the completion status of a submission or an aggregated record.
type Status string

const (
	// StatusComplete means every contributing submission was marked complete.
	StatusComplete Status = "COMPLETE"
	// StatusIncomplete means at least one contributing submission was not complete.
	StatusIncomplete Status = "INCOMPLETE"
)

// Merge returns the worse of the two statuses. An incomplete status is never
// reset by a complete one.
func (s Status) Merge(other Status) Status {
	if s == StatusIncomplete || other == StatusIncomplete {
		return StatusIncomplete
	}
	return StatusComplete
}

// Label returns the human-readable form used in exported summaries.
func (s Status) Label() string {
	if s == StatusIncomplete {
		return "Incomplete"
	}
	return "Complete"
}
