package report

import (
	"testing"

	"github.com/agroplanner/fieldops/pkg/task"
)

func periodTasks() []task.Task {
	return []task.Task{
		{ID: "T1", PlotID: "P1", Decision: task.Proceed, AssignedWorkerID: "W1"},
		{ID: "T2", PlotID: "P1", Decision: task.Proceed, AssignedWorkerID: "W1"},
		{ID: "T3", PlotID: "P1", Decision: task.Proceed, AssignedWorkerID: "W2"},
		{ID: "T4", PlotID: "P1", Decision: task.Pending, AssignedWorkerName: "J. Cruz"},
		{ID: "T5", PlotID: "P2", Decision: task.Stop},
		{ID: "T6", PlotID: "P2", Decision: task.Proceed, AssignedWorkerID: "W2"},
	}
}

func catalogPlots() []task.Plot {
	return []task.Plot{
		{ID: "P1", Name: "North Field"},
		{ID: "P2", Name: "East Terrace"},
		{ID: "P3", Name: "Nursery"},
	}
}

func catalogWorkers() []task.Worker {
	return []task.Worker{
		{ID: "W1", Name: "A. Reyes"},
		{ID: "W2", Name: "B. Santos"},
	}
}

func TestBuildPlotReport(t *testing.T) {
	rows := BuildPlotReport(periodTasks(), catalogPlots())
	if len(rows) != 3 {
		t.Fatalf("expected a row per cataloged plot, got %d", len(rows))
	}
	if rows[0].PlotID != "P1" || rows[1].PlotID != "P2" || rows[2].PlotID != "P3" {
		t.Fatalf("unexpected order: %v, %v, %v", rows[0].PlotID, rows[1].PlotID, rows[2].PlotID)
	}

	p1 := rows[0]
	if p1.Total != 4 || p1.Proceed != 3 || p1.Pending != 1 || p1.Stop != 0 {
		t.Fatalf("unexpected P1 tally: %+v", p1.Tally)
	}
	if p1.CompletionRate() != 75 {
		t.Fatalf("expected completion rate 75, got %d", p1.CompletionRate())
	}

	// Zero-task plots still appear, zero-filled.
	p3 := rows[2]
	if p3.Total != 0 || p3.CompletionRate() != 0 {
		t.Fatalf("expected empty P3 row, got %+v", p3.Tally)
	}
}

func TestPlotReportSumInvariant(t *testing.T) {
	for _, row := range BuildPlotReport(periodTasks(), catalogPlots()) {
		if row.Total != row.Proceed+row.Pending+row.Stop {
			t.Fatalf("sum invariant broken for %s: %+v", row.PlotID, row.Tally)
		}
	}
}

func TestPlotReportTieBreakDeterministic(t *testing.T) {
	tasks := []task.Task{
		{ID: "T1", PlotID: "PA", Decision: task.Proceed},
		{ID: "T2", PlotID: "PB", Decision: task.Proceed},
	}
	plots := []task.Plot{
		{ID: "PB", Name: "banana"},
		{ID: "PA", Name: "Apple"},
	}
	for i := 0; i < 2; i++ {
		rows := BuildPlotReport(tasks, plots)
		if rows[0].PlotName != "Apple" || rows[1].PlotName != "banana" {
			t.Fatalf("case-folded name tie-break failed: %v then %v", rows[0].PlotName, rows[1].PlotName)
		}
		// Same totals regardless of catalog order.
		plots[0], plots[1] = plots[1], plots[0]
	}
}

func TestPlotReportUnknownPlot(t *testing.T) {
	tasks := []task.Task{{ID: "T1", PlotID: "GHOST", Decision: task.Proceed}}
	rows := BuildPlotReport(tasks, catalogPlots())
	var found bool
	for _, row := range rows {
		if row.PlotID == "GHOST" {
			found = true
			if row.PlotName != "GHOST" {
				t.Fatalf("unknown plot should fall back to raw id, got %q", row.PlotName)
			}
		}
	}
	if !found {
		t.Fatalf("task with unknown plot id should still be reported")
	}
}

func TestBuildWorkerReport(t *testing.T) {
	rows := BuildWorkerReport(periodTasks(), catalogWorkers())
	if len(rows) != 4 {
		t.Fatalf("expected 4 worker rows, got %d", len(rows))
	}
	// W1 and W2 both have proceed=2; W1 total=2 vs W2 total=2, so the
	// case-folded name decides: A. Reyes before B. Santos.
	if rows[0].WorkerName != "A. Reyes" || rows[1].WorkerName != "B. Santos" {
		t.Fatalf("unexpected leading rows: %v, %v", rows[0].WorkerName, rows[1].WorkerName)
	}
	for _, row := range rows {
		if row.Total != row.Proceed+row.Pending+row.Stop {
			t.Fatalf("sum invariant broken for %s: %+v", row.WorkerKey, row.Tally)
		}
	}
}

func TestWorkerFallbackChain(t *testing.T) {
	tasks := []task.Task{
		{ID: "T1", Decision: task.Pending, AssignedWorkerName: "J. Cruz"},
		{ID: "T2", Decision: task.Pending},
		{ID: "T3", Decision: task.Proceed, AssignedWorkerID: "GHOST"},
	}
	rows := BuildWorkerReport(tasks, catalogWorkers())

	byKey := make(map[string]WorkerRow, len(rows))
	for _, row := range rows {
		byKey[row.WorkerKey] = row
	}

	if row, ok := byKey["J. Cruz"]; !ok || row.WorkerName != "J. Cruz" {
		t.Fatalf("free-text name should be both key and label: %+v", row)
	}
	if row, ok := byKey[UnassignedKey]; !ok || row.WorkerName != UnassignedLabel {
		t.Fatalf("missing unassigned group: %+v", row)
	}
	if row, ok := byKey["GHOST"]; !ok || row.WorkerName != UnknownWorkerLabel {
		t.Fatalf("unknown id should label as %q: %+v", UnknownWorkerLabel, row)
	}
}

func TestWorkerReportProceedOrdering(t *testing.T) {
	tasks := []task.Task{
		{ID: "T1", Decision: task.Proceed, AssignedWorkerID: "W2"},
		{ID: "T2", Decision: task.Proceed, AssignedWorkerID: "W2"},
		{ID: "T3", Decision: task.Proceed, AssignedWorkerID: "W1"},
		{ID: "T4", Decision: task.Pending, AssignedWorkerID: "W1"},
		{ID: "T5", Decision: task.Pending, AssignedWorkerID: "W1"},
	}
	rows := BuildWorkerReport(tasks, catalogWorkers())
	// W2 leads on proceed count even though W1 has the larger total.
	if rows[0].WorkerKey != "W2" || rows[1].WorkerKey != "W1" {
		t.Fatalf("proceed-first ordering failed: %v then %v", rows[0].WorkerKey, rows[1].WorkerKey)
	}
}

func TestEmptyCatalogsAndTasks(t *testing.T) {
	if rows := BuildPlotReport(nil, nil); len(rows) != 0 {
		t.Fatalf("expected no plot rows, got %d", len(rows))
	}
	if rows := BuildWorkerReport(nil, nil); len(rows) != 0 {
		t.Fatalf("expected no worker rows, got %d", len(rows))
	}
	rows := BuildPlotReport(nil, catalogPlots())
	if len(rows) != 3 {
		t.Fatalf("catalog-only report should be zero-filled, got %d rows", len(rows))
	}
	for _, row := range rows {
		if row.Total != 0 {
			t.Fatalf("expected zero tally, got %+v", row.Tally)
		}
	}
}
