package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates the input has no header row.
var ErrEmptyInput = errors.New("empty input")

// ErrMissingIdentity indicates a row with neither an email nor a name.
var ErrMissingIdentity = errors.New("row has no email or name")

// MalformedRowError reports a row that cannot be attributed to anyone.
// It is fatal for that row only.
type MalformedRowError struct {
	Row      int
	RecordID string
	Err      error
}

func (e *MalformedRowError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("malformed row %d (record %s): %v", e.Row, e.RecordID, e.Err)
	}
	return fmt.Sprintf("malformed row %d: %v", e.Row, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// NewMalformedRowError creates a new MalformedRowError.
func NewMalformedRowError(row int, recordID string, err error) *MalformedRowError {
	return &MalformedRowError{
		Row:      row,
		RecordID: recordID,
		Err:      err,
	}
}
