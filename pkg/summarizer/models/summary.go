package models

// SummaryRow is the flat per-person tuple used for tabular export.
type SummaryRow struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Quarters  string `json:"quarters"`
	Total     int    `json:"points"`
	Status    Status `json:"status"`
	Identity  string `json:"identity"`
	FirstName string `json:"-"`
	LastName  string `json:"-"`
	// GroupTotals carries per-group points for the points summary export.
	GroupTotals map[string]int `json:"-"`
}

// IndexedActivity is an activity annotated with the person who reported it.
type IndexedActivity struct {
	ActivityRecord
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Status   Status `json:"status"`
}

// ActivityType describes a category that has at least one entry.
type ActivityType struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Group string `json:"category"`
	Count int    `json:"count"`
}

// DatasetStats holds summary statistics over a set of FacultyRecords.
type DatasetStats struct {
	Faculty      int            `json:"total_faculty"`
	Complete     int            `json:"complete_submissions"`
	Incomplete   int            `json:"incomplete_submissions"`
	GroupTotals  map[string]int `json:"grand_totals"`
	GrandTotal   int            `json:"grand_total"`
	MeanTotal    float64        `json:"mean_total"`
	MedianTotal  float64        `json:"median_total"`
	MaxTotal     float64        `json:"max_total"`
	ActivityRows int            `json:"activities"`
}
