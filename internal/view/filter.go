package view

import (
	"sort"
	"strings"
	"time"
)

// Criteria is the explicit per-cycle filter state. An empty field matches
// everything; provided fields combine with logical AND.
type Criteria struct {
	Search   string
	Category string
	Status   string
	Branch   string
}

func (c Criteria) Empty() bool {
	return c.Search == "" && c.Category == "" && c.Status == "" && c.Branch == ""
}

// FieldSet is an element's filterable projection.
type FieldSet struct {
	SearchText []string
	Category   string
	Status     string
	Branch     string
}

// Filter returns the elements of items whose field set satisfies every
// provided criterion. Search is a case-insensitive substring match against
// any of the search fields. Input order is preserved.
func Filter[T any](items []T, c Criteria, fields func(T) FieldSet) []T {
	if c.Empty() {
		return items
	}
	search := strings.ToLower(c.Search)

	out := make([]T, 0, len(items))
	for _, item := range items {
		fs := fields(item)
		if c.Category != "" && fs.Category != c.Category {
			continue
		}
		if c.Status != "" && fs.Status != c.Status {
			continue
		}
		if c.Branch != "" && fs.Branch != c.Branch {
			continue
		}
		if search != "" && !matchesSearch(fs.SearchText, search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(fields []string, search string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// SortHistory orders items most-recently-closed first. The sort is stable so
// equal timestamps keep their input order. Returns a copy; the input
// collection is not touched.
func SortHistory[T any](items []T, closedAt func(T) time.Time) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return closedAt(sorted[i]).After(closedAt(sorted[j]))
	})
	return sorted
}
