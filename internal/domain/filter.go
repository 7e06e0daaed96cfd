package domain

import (
	"slices"
	"strings"
	"time"
)

// DefectFilter selects defects for listing. Zero-valued criteria are inactive.
type DefectFilter struct {
	Search   string
	Status   Status
	Severity Severity
	Priority int
}

// FilterDefects returns the defects matching every active criterion, newest
// first. Defects sharing a creation time keep their input order, and defects
// without one come last.
func FilterDefects(defects []Defect, f DefectFilter) []Defect {
	term := strings.ToLower(f.Search)

	result := make([]Defect, 0, len(defects))
	for _, d := range defects {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Title), term) &&
			!strings.Contains(strings.ToLower(d.Description), term) {
			continue
		}

		if f.Status != "" && d.Status != f.Status {
			continue
		}

		if f.Severity != "" && d.Severity != f.Severity {
			continue
		}

		if f.Priority != 0 && d.Priority != f.Priority {
			continue
		}

		result = append(result, d)
	}

	slices.SortStableFunc(result, func(a, b Defect) int {
		return compareNewestFirst(a.CreatedAt, b.CreatedAt)
	})

	return result
}

func compareNewestFirst(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	return b.Compare(*a)
}
