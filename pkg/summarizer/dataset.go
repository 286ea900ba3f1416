package summarizer

import (
	"errors"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/aggregate"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// Dataset is the result of one summarize pass over one file. It is not
// modified after Summarize returns.
type Dataset struct {
	// RunID identifies the pass in logs and exports.
	RunID string `json:"run_id"`
	// Source is the input file name (no path).
	Source string `json:"source,omitempty"`
	// Rows is the number of data rows read.
	Rows int `json:"rows"`
	// Submissions holds the parsed rows in file order, malformed rows excluded.
	Submissions []*models.QuarterSubmission `json:"-"`
	// Faculty maps identity key to aggregated record.
	Faculty map[string]*models.FacultyRecord `json:"faculty"`
	// RowErrors lists malformed rows in file order.
	RowErrors []*MalformedRowError `json:"-"`

	cfg *config.Config
}

// Err returns the malformed-row errors joined, or nil.
func (d *Dataset) Err() error {
	errs := make([]error, len(d.RowErrors))
	for i, e := range d.RowErrors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Config returns the configuration the dataset was scored with.
func (d *Dataset) Config() *config.Config {
	return d.cfg
}

// Sorted returns the faculty records in surname order.
func (d *Dataset) Sorted() []*models.FacultyRecord {
	return aggregate.Sorted(d.Faculty)
}

// Summaries returns the surname-sorted summary tuples.
func (d *Dataset) Summaries() []models.SummaryRow {
	return aggregate.Summaries(d.Faculty)
}

// ActivityIndex returns every activity grouped by category key.
func (d *Dataset) ActivityIndex() map[string][]models.IndexedActivity {
	return aggregate.BuildActivityIndex(d.Faculty)
}

// ActivityTypes lists the categories that have entries.
func (d *Dataset) ActivityTypes() []models.ActivityType {
	return aggregate.ActivityTypes(d.ActivityIndex(), d.cfg)
}

// Stats returns dataset-wide statistics.
func (d *Dataset) Stats() (models.DatasetStats, error) {
	return aggregate.Stats(d.Faculty, d.cfg)
}
