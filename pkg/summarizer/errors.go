package summarizer

import (
	"errors"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an input extension other than .csv or .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrEmptyInput indicates the input has no header row.
var ErrEmptyInput = parser.ErrEmptyInput

// ErrMissingIdentity indicates a row with neither an email nor a name.
var ErrMissingIdentity = parser.ErrMissingIdentity

// MalformedRowError reports a row without any usable identity. Such rows are
// collected in Dataset.RowErrors; they do not abort the pass.
type MalformedRowError = parser.MalformedRowError

// ConfigurationError reports an activity that cannot be scored with the
// configuration. It aborts the pass.
type ConfigurationError = config.ConfigurationError

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
