package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/agroplanner/fieldops/pkg/insight"
	"github.com/agroplanner/fieldops/pkg/report"
	"github.com/agroplanner/fieldops/pkg/task"
)

func bold(in string) string {
	return color.New(color.Bold).Sprint(in)
}

// PlotReport prints the per-plot monthly rollup.
func (pp *PrettyPrint) PlotReport(rows []report.PlotRow) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Plot"), bold("Total"), bold("Proceed"), bold("Pending"), bold("Stop"), bold("Done %"))
	for _, row := range rows {
		tbl.AddRow(row.PlotName, row.Total, row.Proceed, row.Pending, row.Stop, row.CompletionRate())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// WorkerReport prints the per-worker monthly rollup.
func (pp *PrettyPrint) WorkerReport(rows []report.WorkerRow) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Worker"), bold("Total"), bold("Proceed"), bold("Pending"), bold("Stop"), bold("Done %"))
	for _, row := range rows {
		tbl.AddRow(row.WorkerName, row.Total, row.Proceed, row.Pending, row.Stop, row.CompletionRate())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Suggestions prints the capped insight list and a hidden-count footer.
func (pp *PrettyPrint) Suggestions(view insight.View) {
	if len(view.Visible) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Println(" no suggestions")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 72
	tbl.Wrap = true
	tbl.AddRow(bold("Type"), bold("Severity"), bold("Task"), bold("Reason"))
	for _, s := range view.Visible {
		tbl.AddRow(insight.Classify(s).String(), s.Severity, s.TaskName, s.Reason)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	if view.Remainder > 0 {
		_, _ = color.New(color.Faint).Printf("… and %d more\n", view.Remainder)
	}
}

// Proposals prints tasks awaiting reschedule review.
func (pp *PrettyPrint) Proposals(tasks []task.Task) {
	if len(tasks) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Println(" no pending reschedules")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Task"), bold("Plot"), bold("Scheduled"), bold("Proposed"), bold("Reason"))
	for _, t := range tasks {
		tbl.AddRow(t.Title, t.PlotID, t.DateKey, t.ProposedDateKey, t.Reason)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PlotCatalog prints the plot catalog.
func (pp *PrettyPrint) PlotCatalog(plots []task.Plot) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Name"))
	for _, p := range plots {
		tbl.AddRow(p.ID, p.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// WorkerCatalog prints the worker catalog.
func (pp *PrettyPrint) WorkerCatalog(workers []task.Worker) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Name"))
	for _, w := range workers {
		tbl.AddRow(w.ID, w.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
