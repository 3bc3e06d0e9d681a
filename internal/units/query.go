// Package units holds the pure parts of the unit workflow: the list
// projection shared by the owner dashboard and the driver home screen,
// and the form validation run before any store call.
package units

import (
	"sort"
	"strings"

	"unit_rental/internal/models"
)

// SortOrder selects how a projected list is ordered by rate.
type SortOrder string

const (
	SortNone      SortOrder = "none"
	SortLowToHigh SortOrder = "lowToHigh"
	SortHighToLow SortOrder = "highToLow"
)

// ParseSortOrder maps a query-string value onto a SortOrder.
// Unknown values fall back to SortNone.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortLowToHigh:
		return SortLowToHigh
	case SortHighToLow:
		return SortHighToLow
	default:
		return SortNone
	}
}

// Query carries the three user-controlled projection inputs.
// An empty Search matches every unit; an empty Type disables the
// type filter.
type Query struct {
	Search string
	Type   string
	Sort   SortOrder
}

// Project filters and orders units for display. Matching is a
// case-insensitive substring check against the unit name; the type
// filter is an exact match. Sorting is stable so that SortNone and
// rate ties both preserve the input's relative order. The input slice
// is never mutated.
func Project(in []models.Unit, q Query) []models.Unit {
	needle := strings.ToLower(q.Search)

	out := make([]models.Unit, 0, len(in))
	for _, u := range in {
		if needle != "" && !strings.Contains(strings.ToLower(u.Name), needle) {
			continue
		}
		if q.Type != "" && u.Type != q.Type {
			continue
		}
		out = append(out, u)
	}

	switch q.Sort {
	case SortLowToHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rate < out[j].Rate })
	case SortHighToLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rate > out[j].Rate })
	}
	return out
}
