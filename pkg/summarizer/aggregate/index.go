package aggregate

import (
	"sort"

	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/config"
	"github.com/nickmarkin-healthtracker/AAA-Summarizer/pkg/summarizer/models"
)

// BuildActivityIndex groups every activity by category key, annotated with
// the person who reported it. Entries follow surname order, then fold order.
func BuildActivityIndex(records map[string]*models.FacultyRecord) map[string][]models.IndexedActivity {
	index := make(map[string][]models.IndexedActivity)
	for _, rec := range Sorted(records) {
		for category, entries := range rec.Activities {
			for _, act := range entries {
				index[category] = append(index[category], models.IndexedActivity{
					ActivityRecord: act,
					Identity:       rec.Identity,
					Name:           rec.Name,
					Status:         rec.Status,
				})
			}
		}
	}
	return index
}

// ActivityTypes lists categories with at least one entry, sorted by group
// display name and then category display name.
func ActivityTypes(index map[string][]models.IndexedActivity, cfg *config.Config) []models.ActivityType {
	var types []models.ActivityType
	for key, entries := range index {
		if len(entries) == 0 {
			continue
		}
		types = append(types, models.ActivityType{
			Key:   key,
			Name:  cfg.CategoryName(key),
			Group: cfg.GroupName(cfg.GroupOf(key)),
			Count: len(entries),
		})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Group != types[j].Group {
			return types[i].Group < types[j].Group
		}
		if types[i].Name != types[j].Name {
			return types[i].Name < types[j].Name
		}
		return types[i].Key < types[j].Key
	})
	return types
}
