package aggregate

import (
	"github.com/montanaflynn/stats"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// Stats computes dataset-wide counts and point statistics.
func Stats(records map[string]*models.FacultyRecord, cfg *config.Config) (models.DatasetStats, error) {
	out := models.DatasetStats{
		Faculty:     len(records),
		GroupTotals: make(map[string]int),
	}
	for _, group := range cfg.GroupKeys() {
		out.GroupTotals[group] = 0
	}

	totals := make([]float64, 0, len(records))
	for _, rec := range records {
		if rec.Status == models.StatusIncomplete {
			out.Incomplete++
		} else {
			out.Complete++
		}
		for group, pts := range rec.GroupTotals {
			out.GroupTotals[group] += pts
		}
		out.GrandTotal += rec.Total
		out.ActivityRows += rec.ActivityCount()
		totals = append(totals, float64(rec.Total))
	}

	if len(totals) == 0 {
		return out, nil
	}

	var err error
	if out.MeanTotal, err = stats.Mean(totals); err != nil {
		return out, err
	}
	if out.MedianTotal, err = stats.Median(totals); err != nil {
		return out, err
	}
	if out.MaxTotal, err = stats.Max(totals); err != nil {
		return out, err
	}
	return out, nil
}
