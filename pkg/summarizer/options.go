// Package summarizer parses academic-achievement survey exports and
// aggregates quarterly submissions into per-faculty point records.
package summarizer

import (
	"go.uber.org/zap"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
)

// Options configures a summarize pass.
type Options struct {
	// Config is the category and instrument configuration.
	// If nil, the built-in configuration is used.
	Config *config.Config
	// Quarter, when set, labels every row with this quarter instead of
	// reading the quarter column.
	Quarter string
	// Workers is the number of goroutines parsing rows. Values below 2 parse
	// sequentially. Aggregation always folds in file-row order.
	Workers int
	// Sheet selects the worksheet of an Excel input. If empty, the
	// configured sheet or else the first sheet is used.
	Sheet string
	// Logger receives debug events. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default summarize options.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
	}
}

// ShouldParallelize returns whether rows are parsed concurrently.
func (o Options) ShouldParallelize() bool {
	return o.Workers > 1
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) resolveConfig() (*config.Config, error) {
	if o.Config != nil {
		return o.Config, nil
	}
	return config.Default()
}

func (o Options) sheet(cfg *config.Config) string {
	if o.Sheet != "" {
		return o.Sheet
	}
	return cfg.Instrument.Sheet
}
