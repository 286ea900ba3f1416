package aggregate

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

const testConfig = `
groups:
  - {key: research, name: Research}
  - {key: education, name: Education}
  - {key: leadership, name: Leadership}
categories:
  research.grant_awards: {name: Grant Awards, kind: fixed, points: 500}
  research.thesis_committees: {name: Thesis Committees, kind: fixed, points: 1000}
  education.lectures: {name: Lectures, kind: fixed, points: 250}
instrument:
  email_column: Email
`

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)
	return cfg
}

func activity(category, quarter string, points int) models.ActivityRecord {
	return models.ActivityRecord{Category: category, Quarter: quarter, Points: points, Slot: 1}
}

func submission(row int, email, quarter string, status models.Status, acts ...models.ActivityRecord) *models.QuarterSubmission {
	return &models.QuarterSubmission{
		Row:        row,
		Identity:   email,
		Email:      email,
		Quarter:    quarter,
		Status:     status,
		Activities: acts,
	}
}

func TestAggregateRoundTrip(t *testing.T) {
	cfg := loadTestConfig(t)

	records := Aggregate(cfg, []*models.QuarterSubmission{
		submission(2, "a@x.edu", "Q1", models.StatusComplete, activity("research.grant_awards", "Q1", 500)),
		submission(3, "a@x.edu", "Q3", models.StatusIncomplete, activity("education.lectures", "Q3", 250)),
	})

	require.Len(t, records, 1)
	rec := records["a@x.edu"]
	require.NotNil(t, rec)

	assert.Equal(t, []string{"Q1", "Q3"}, rec.Quarters)
	assert.Equal(t, models.StatusIncomplete, rec.Status)
	assert.Equal(t, map[string]int{"research": 500, "education": 250, "leadership": 0}, rec.GroupTotals)
	assert.Equal(t, map[string]int{"research.grant_awards": 500, "education.lectures": 250}, rec.CategoryTotals)
	assert.Equal(t, 750, rec.Total)
	assert.Equal(t, "a@x.edu", rec.Name)
	assert.Equal(t, []models.SubmissionRef{
		{Row: 2, Quarter: "Q1", Status: models.StatusComplete},
		{Row: 3, Quarter: "Q3", Status: models.StatusIncomplete},
	}, rec.Submissions)
}

func TestAggregateTotalsIndependentOfOrder(t *testing.T) {
	cfg := loadTestConfig(t)

	subs := []*models.QuarterSubmission{
		submission(2, "a@x.edu", "Q1", models.StatusComplete,
			activity("research.grant_awards", "Q1", 500),
			activity("education.lectures", "Q1", 250)),
		submission(3, "a@x.edu", "Q2", models.StatusComplete,
			activity("research.thesis_committees", "Q2", 1000)),
		submission(4, "a@x.edu", "Q3", models.StatusIncomplete,
			activity("education.lectures", "Q3", 250)),
	}
	subs[0].FirstName, subs[0].LastName = "Ann", "Lee"
	subs[2].FirstName, subs[2].LastName = "Annie", "Lee-Smith"

	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}

	type view struct {
		GroupTotals    map[string]int
		CategoryTotals map[string]int
		Total          int
		Status         models.Status
		Activities     []models.ActivityRecord
	}
	flatten := func(rec *models.FacultyRecord) view {
		v := view{
			GroupTotals:    rec.GroupTotals,
			CategoryTotals: rec.CategoryTotals,
			Total:          rec.Total,
			Status:         rec.Status,
		}
		for _, entries := range rec.Activities {
			v.Activities = append(v.Activities, entries...)
		}
		sort.Slice(v.Activities, func(i, j int) bool {
			a, b := v.Activities[i], v.Activities[j]
			if a.Category != b.Category {
				return a.Category < b.Category
			}
			return a.Quarter < b.Quarter
		})
		return v
	}

	var baseline view
	for i, perm := range permutations {
		ordered := make([]*models.QuarterSubmission, 0, len(perm))
		for _, idx := range perm {
			ordered = append(ordered, subs[idx])
		}
		rec := Aggregate(cfg, ordered)["a@x.edu"]
		require.NotNil(t, rec)

		got := flatten(rec)
		if i == 0 {
			baseline = got
			assert.Equal(t, 2000, got.Total)
			assert.Equal(t, "Lee, Ann", rec.Name)
			continue
		}
		if diff := cmp.Diff(baseline, got); diff != "" {
			t.Errorf("permutation %v changed totals (-want +got):\n%s", perm, diff)
		}
		if perm[0] == 2 {
			// First named submission decides the display name.
			assert.Equal(t, "Lee-Smith, Annie", rec.Name)
		}
	}
}

func TestAggregateStatusIsMonotonic(t *testing.T) {
	cfg := loadTestConfig(t)

	tests := []struct {
		name     string
		statuses []models.Status
		expected models.Status
	}{
		{"all complete", []models.Status{models.StatusComplete, models.StatusComplete}, models.StatusComplete},
		{"incomplete first", []models.Status{models.StatusIncomplete, models.StatusComplete}, models.StatusIncomplete},
		{"incomplete last", []models.Status{models.StatusComplete, models.StatusIncomplete}, models.StatusIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(cfg)
			for i, st := range tt.statuses {
				agg.Add(submission(i+2, "a@x.edu", "Q1", st))
			}
			rec := agg.Finish()["a@x.edu"]
			assert.Equal(t, tt.expected, rec.Status)
			assert.Equal(t, []string{"Q1"}, rec.Quarters)
		})
	}
}

func TestAggregateCapturesFirstNamedSubmission(t *testing.T) {
	cfg := loadTestConfig(t)

	unnamed := submission(2, "a@x.edu", "Q1", models.StatusComplete)
	named := submission(3, "a@x.edu", "Q2", models.StatusComplete)
	named.FirstName, named.LastName = "Ann", "Lee"
	renamed := submission(4, "a@x.edu", "Q3", models.StatusComplete)
	renamed.FirstName, renamed.LastName = "Anne", "Leigh"

	rec := Aggregate(cfg, []*models.QuarterSubmission{unnamed, named, renamed})["a@x.edu"]
	assert.Equal(t, "Ann", rec.FirstName)
	assert.Equal(t, "Lee", rec.LastName)
	assert.Equal(t, "Lee, Ann", rec.Name)
}

func TestAggregateFillsNamePartsIndependently(t *testing.T) {
	cfg := loadTestConfig(t)

	firstOnly := submission(2, "a@x.edu", "Q1", models.StatusComplete)
	firstOnly.FirstName = "Ann"
	full := submission(3, "a@x.edu", "Q2", models.StatusComplete)
	full.FirstName, full.LastName = "Annie", "Lee"

	rec := Aggregate(cfg, []*models.QuarterSubmission{firstOnly, full})["a@x.edu"]
	assert.Equal(t, "Ann", rec.FirstName)
	assert.Equal(t, "Lee", rec.LastName)
	assert.Equal(t, "Lee, Ann", rec.Name)
}

func TestAggregatorFinish(t *testing.T) {
	cfg := loadTestConfig(t)
	agg := NewAggregator(cfg)
	agg.Add(submission(2, "a@x.edu", "Q1", models.StatusComplete, activity("research.grant_awards", "Q1", 500)))

	first := agg.Finish()
	second := agg.Finish()
	assert.Equal(t, first, second)
	assert.Equal(t, 500, second["a@x.edu"].Total)

	assert.Panics(t, func() {
		agg.Add(submission(3, "b@x.edu", "Q1", models.StatusComplete))
	})
}

func TestAggregateEmpty(t *testing.T) {
	records := Aggregate(loadTestConfig(t), nil)
	assert.Empty(t, records)
}
