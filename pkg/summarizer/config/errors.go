package config

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory indicates an activity category absent from the configuration.
var ErrUnknownCategory = errors.New("unknown category")

// ErrUnratedType indicates a by-type rule has no rate for a reported type value.
var ErrUnratedType = errors.New("no rate for type")

// ConfigurationError reports a systemic misconfiguration found while scoring.
// It aborts the whole aggregation pass.
type ConfigurationError struct {
	Category string
	Detail   string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("configuration error for category %q: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("configuration error for category %q: %s: %v", e.Category, e.Detail, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(category, detail string, err error) *ConfigurationError {
	return &ConfigurationError{
		Category: category,
		Detail:   detail,
		Err:      err,
	}
}
