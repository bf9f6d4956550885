// Package schedule builds the date-keyed views behind the dashboard
// calendar: a task index bucketed by date key, month/week/day grids, and a
// navigation cursor over the three granularities.
package schedule

import (
	"strings"

	"github.com/agroplanner/fieldops/pkg/task"
)

// Filter narrows a query along the plot and decision dimensions. Empty or
// "all" values leave that dimension unconstrained. Every view (month grid,
// week row, day list, and anything else showing tasks) filters through
// Matches so the semantics cannot drift between consumers.
type Filter struct {
	PlotID   string
	Decision string
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t task.Task) bool {
	if !open(f.PlotID) && t.PlotID != f.PlotID {
		return false
	}
	if !open(f.Decision) && !strings.EqualFold(f.Decision, t.Decision.String()) {
		return false
	}
	return true
}

func open(v string) bool {
	return v == "" || strings.EqualFold(v, "all")
}

// Index maps date keys to the tasks scheduled on that date. Bucket order
// is the insertion order of the source list.
type Index struct {
	buckets map[string][]task.Task
	total   int
}

// BuildIndex groups tasks by their date key. Every task lands in exactly
// one bucket, including tasks with malformed keys; those stay reachable by
// their raw key but are never matched by the calendar builders, which only
// query well-formed keys.
func BuildIndex(tasks []task.Task) *Index {
	ix := &Index{buckets: make(map[string][]task.Task, len(tasks))}
	for _, t := range tasks {
		ix.buckets[t.DateKey] = append(ix.buckets[t.DateKey], t)
		ix.total++
	}
	return ix
}

// Query returns the filtered bucket for the date key. Absent buckets yield
// an empty slice, never nil panics downstream.
func (ix *Index) Query(dateKey string, f Filter) []task.Task {
	bucket := ix.buckets[dateKey]
	out := make([]task.Task, 0, len(bucket))
	for _, t := range bucket {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Total returns the number of indexed tasks across all buckets.
func (ix *Index) Total() int {
	return ix.total
}
