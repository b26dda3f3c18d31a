package listctl

import (
	"sort"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// Sort returns a copy of records ordered by ScheduledAt.
// Equal timestamps keep their input order in both directions.
func Sort(records []model.Interview, ascending bool) []model.Interview {
	sorted := make([]model.Interview, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ScheduledAt, sorted[j].ScheduledAt
		if ascending {
			return a.Before(b)
		}
		return b.Before(a)
	})
	return sorted
}
