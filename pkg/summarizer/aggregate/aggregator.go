// Package aggregate folds quarter submissions into per-person faculty records
// and derives the read-only views renderers consume.
package aggregate

import (
	"slices"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// Aggregator merges submissions keyed by identity. Submissions must be added
// in file-row order; each name part is taken from the first submission
// that carries it.
type Aggregator struct {
	cfg      *config.Config
	records  map[string]*models.FacultyRecord
	finished bool
}

// NewAggregator creates an empty Aggregator.
func NewAggregator(cfg *config.Config) *Aggregator {
	return &Aggregator{
		cfg:     cfg,
		records: make(map[string]*models.FacultyRecord),
	}
}

// Add folds one submission into the record for its identity.
func (a *Aggregator) Add(sub *models.QuarterSubmission) {
	if a.finished {
		panic("aggregate: Add called after Finish")
	}

	rec, ok := a.records[sub.Identity]
	if !ok {
		rec = &models.FacultyRecord{
			Identity:   sub.Identity,
			Status:     models.StatusComplete,
			Activities: make(map[string][]models.ActivityRecord),
		}
		a.records[sub.Identity] = rec
	}

	if rec.FirstName == "" {
		rec.FirstName = sub.FirstName
	}
	if rec.LastName == "" {
		rec.LastName = sub.LastName
	}
	if rec.Email == "" {
		rec.Email = sub.Email
	}
	if sub.Quarter != "" && !slices.Contains(rec.Quarters, sub.Quarter) {
		rec.Quarters = append(rec.Quarters, sub.Quarter)
	}
	rec.Submissions = append(rec.Submissions, models.SubmissionRef{
		Row:      sub.Row,
		RecordID: sub.RecordID,
		Quarter:  sub.Quarter,
		Status:   sub.Status,
	})
	rec.Status = rec.Status.Merge(sub.Status)

	for _, act := range sub.Activities {
		rec.Activities[act.Category] = append(rec.Activities[act.Category], act)
	}
}

// Finish computes display names and point totals and returns the records
// keyed by identity. The Aggregator accepts no further submissions.
func (a *Aggregator) Finish() map[string]*models.FacultyRecord {
	if !a.finished {
		for _, rec := range a.records {
			fallback := rec.Email
			if fallback == "" {
				fallback = rec.Identity
			}
			rec.Name = models.DisplayName(rec.FirstName, rec.LastName, fallback)
			computeTotals(a.cfg, rec)
		}
		a.finished = true
	}
	return a.records
}

// Aggregate folds submissions in order and returns the finished records.
func Aggregate(cfg *config.Config, subs []*models.QuarterSubmission) map[string]*models.FacultyRecord {
	agg := NewAggregator(cfg)
	for _, sub := range subs {
		agg.Add(sub)
	}
	return agg.Finish()
}

// computeTotals derives category, group and grand totals from the merged
// activity lists alone, so totals do not depend on fold order.
func computeTotals(cfg *config.Config, rec *models.FacultyRecord) {
	rec.CategoryTotals = make(map[string]int, len(rec.Activities))
	rec.GroupTotals = make(map[string]int)
	for _, group := range cfg.GroupKeys() {
		rec.GroupTotals[group] = 0
	}
	rec.Total = 0

	for category, entries := range rec.Activities {
		sum := 0
		for _, act := range entries {
			sum += act.Points
		}
		rec.CategoryTotals[category] = sum
		rec.GroupTotals[cfg.GroupOf(category)] += sum
		rec.Total += sum
	}
}
