package schedule

import (
	"reflect"
	"testing"

	"github.com/agroplanner/fieldops/pkg/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{ID: "T1", Title: "Watering", DateKey: "2024-02-01", PlotID: "P1", Decision: task.Proceed},
		{ID: "T2", Title: "Weeding", DateKey: "2024-02-01", PlotID: "P2", Decision: task.Pending},
		{ID: "T3", Title: "Fertilization", DateKey: "2024-02-01", PlotID: "P1", Decision: task.Stop},
		{ID: "T4", Title: "Harvest", DateKey: "2024-02-15", PlotID: "P2", Decision: task.Proceed},
		{ID: "T5", Title: "Inspection", DateKey: "not-a-date", PlotID: "P1", Decision: task.Pending},
	}
}

func TestBuildIndexBuckets(t *testing.T) {
	ix := BuildIndex(sampleTasks())
	if ix.Total() != 5 {
		t.Fatalf("expected 5 indexed tasks, got %d", ix.Total())
	}

	bucket := ix.Query("2024-02-01", Filter{})
	if len(bucket) != 3 {
		t.Fatalf("expected 3 tasks on 2024-02-01, got %d", len(bucket))
	}
	// Insertion order within a bucket is preserved.
	if bucket[0].ID != "T1" || bucket[1].ID != "T2" || bucket[2].ID != "T3" {
		t.Fatalf("bucket order not preserved: %v", ids(bucket))
	}
}

func TestQueryAbsentDate(t *testing.T) {
	ix := BuildIndex(sampleTasks())
	got := ix.Query("2024-02-02", Filter{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestQueryFilters(t *testing.T) {
	ix := BuildIndex(sampleTasks())

	byPlot := ix.Query("2024-02-01", Filter{PlotID: "P1"})
	if !reflect.DeepEqual(ids(byPlot), []string{"T1", "T3"}) {
		t.Fatalf("plot filter mismatch: %v", ids(byPlot))
	}

	byDecision := ix.Query("2024-02-01", Filter{Decision: "pending"})
	if !reflect.DeepEqual(ids(byDecision), []string{"T2"}) {
		t.Fatalf("decision filter mismatch: %v", ids(byDecision))
	}

	both := ix.Query("2024-02-01", Filter{PlotID: "P1", Decision: "Stop"})
	if !reflect.DeepEqual(ids(both), []string{"T3"}) {
		t.Fatalf("combined filter mismatch: %v", ids(both))
	}

	all := ix.Query("2024-02-01", Filter{PlotID: "all", Decision: "all"})
	if len(all) != 3 {
		t.Fatalf("\"all\" should not constrain, got %d tasks", len(all))
	}
}

func TestBuildIndexIdempotent(t *testing.T) {
	tasks := sampleTasks()
	f := Filter{PlotID: "P1"}
	first := BuildIndex(tasks).Query("2024-02-01", f)
	second := BuildIndex(tasks).Query("2024-02-01", f)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rebuilt index should answer identically:\n%v\n%v", first, second)
	}
}

func TestMalformedKeyStaysOutOfCalendarDates(t *testing.T) {
	ix := BuildIndex(sampleTasks())
	// The raw bucket is reachable, so the record is not silently dropped.
	if got := ix.Query("not-a-date", Filter{}); len(got) != 1 {
		t.Fatalf("expected raw bucket for malformed key, got %d", len(got))
	}
	// But no well-formed date key ever sees it.
	if got := ix.Query("2024-02-01", Filter{PlotID: "P1"}); len(got) != 2 {
		t.Fatalf("malformed-key task leaked into a date bucket: %v", ids(got))
	}
}

func ids(tasks []task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
