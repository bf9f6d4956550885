// Package report rolls a month of tasks up into per-plot and per-worker
// summaries. Builders are pure: they scan the period's tasks once, bucket
// counts, and emit rows in a deterministic order so equal inputs always
// render identically.
package report

import (
	"math"
	"sort"
	"strings"

	"github.com/agroplanner/fieldops/pkg/task"
)

const (
	// UnassignedKey groups tasks that name no worker at all.
	UnassignedKey = "unassigned"
	// UnassignedLabel is the display name for that group.
	UnassignedLabel = "Unassigned"
	// UnknownWorkerLabel is shown when a task's worker id resolves nowhere.
	UnknownWorkerLabel = "Unknown Worker"
)

// Tally accumulates decision counts. Total is always the sum of the three
// decision buckets.
type Tally struct {
	Total   int
	Proceed int
	Pending int
	Stop    int
}

func (c *Tally) add(d task.Decision) {
	c.Total++
	switch d {
	case task.Proceed:
		c.Proceed++
	case task.Stop:
		c.Stop++
	default:
		c.Pending++
	}
}

// CompletionRate is the proceed share of the total as a rounded
// percentage, 0 for an empty tally.
func (c Tally) CompletionRate() int {
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Proceed) / float64(c.Total) * 100))
}

// PlotRow is one plot's rollup for the period.
type PlotRow struct {
	PlotID   string
	PlotName string
	Tally
}

// WorkerRow is one worker's rollup for the period.
type WorkerRow struct {
	WorkerKey  string
	WorkerName string
	Tally
}

// BuildPlotReport tallies the period's tasks per plot. Every cataloged
// plot gets a row even with zero tasks; tasks referencing a plot missing
// from the catalog still get a row labeled by the raw id. Rows sort by
// total descending, ties by name ascending (case-folded).
func BuildPlotReport(tasksInPeriod []task.Task, plots []task.Plot) []PlotRow {
	names := make(map[string]string, len(plots))
	order := make([]string, 0, len(plots))
	for _, p := range plots {
		if _, ok := names[p.ID]; ok {
			continue
		}
		names[p.ID] = p.Name
		order = append(order, p.ID)
	}

	tallies := make(map[string]*Tally, len(plots))
	for _, id := range order {
		tallies[id] = &Tally{}
	}
	for _, t := range tasksInPeriod {
		c, ok := tallies[t.PlotID]
		if !ok {
			c = &Tally{}
			tallies[t.PlotID] = c
			names[t.PlotID] = t.PlotID
			order = append(order, t.PlotID)
		}
		c.add(t.Decision)
	}

	rows := make([]PlotRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, PlotRow{PlotID: id, PlotName: names[id], Tally: *tallies[id]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return lessFold(rows[i].PlotName, rows[j].PlotName)
	})
	return rows
}

// BuildWorkerReport tallies the period's tasks per assigned worker. A
// task's group key prefers the worker id, then the free-text worker name,
// then the synthetic unassigned group. Display names resolve through the
// worker catalog, then the task-carried name, then "Unknown Worker". Rows
// sort by proceed descending, ties by total descending, then name
// ascending (case-folded).
func BuildWorkerReport(tasksInPeriod []task.Task, workers []task.Worker) []WorkerRow {
	catalog := make(map[string]string, len(workers))
	for _, w := range workers {
		if _, ok := catalog[w.ID]; !ok {
			catalog[w.ID] = w.Name
		}
	}

	tallies := make(map[string]*Tally)
	names := make(map[string]string)
	var order []string
	for _, t := range tasksInPeriod {
		key, name := workerKey(t, catalog)
		c, ok := tallies[key]
		if !ok {
			c = &Tally{}
			tallies[key] = c
			names[key] = name
			order = append(order, key)
		}
		c.add(t.Decision)
	}

	rows := make([]WorkerRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, WorkerRow{WorkerKey: key, WorkerName: names[key], Tally: *tallies[key]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Proceed != rows[j].Proceed {
			return rows[i].Proceed > rows[j].Proceed
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return lessFold(rows[i].WorkerName, rows[j].WorkerName)
	})
	return rows
}

// workerKey resolves the group key and display label for a task's worker
// using the ordered fallback chain.
func workerKey(t task.Task, catalog map[string]string) (string, string) {
	if t.AssignedWorkerID != "" {
		name, ok := catalog[t.AssignedWorkerID]
		if !ok || name == "" {
			name = t.AssignedWorkerName
		}
		if name == "" {
			name = UnknownWorkerLabel
		}
		return t.AssignedWorkerID, name
	}
	if t.AssignedWorkerName != "" {
		return t.AssignedWorkerName, t.AssignedWorkerName
	}
	return UnassignedKey, UnassignedLabel
}

func lessFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
