package listctl

import (
	"strings"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// Filter returns the records matching both the search term and the status filter.
// The search term is a case-insensitive substring of the candidate name or job title,
// whitespace included; only the empty term matches everything. A status of "all" (or empty) matches every status.
// Input order is preserved.
func Filter(records []model.Interview, search, status string) []model.Interview {
	needle := strings.ToLower(search)

	out := make([]model.Interview, 0, len(records))
	for _, r := range records {
		if !matchesSearch(r, needle) || !matchesStatus(r, status) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r model.Interview, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.CandidateName), needle) ||
		strings.Contains(strings.ToLower(r.JobTitle), needle)
}

func matchesStatus(r model.Interview, status string) bool {
	if status == "" || status == model.StatusAll {
		return true
	}
	return string(r.Status) == status
}

// validStatusFilter reports whether f is "all" or a known status.
func validStatusFilter(f string) bool {
	return f == model.StatusAll || model.ValidStatuses[model.Status(f)]
}
