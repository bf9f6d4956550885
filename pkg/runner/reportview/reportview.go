// Package reportview renders the monthly rollup report for the CLI.
package reportview

import (
	"context"
	"fmt"
	"time"

	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/printers"
	"github.com/agroplanner/fieldops/pkg/report"
)

type ReportView struct {
	Service *app.Service

	MonthKey string // YYYY-MM, empty means the current month

	Now time.Time
}

func (r *ReportView) Do(ctx context.Context) error {
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	year, month := now.Year(), now.Month()
	if r.MonthKey != "" {
		parsedYear, parsedMonth, ok := datekey.ParseMonthKey(r.MonthKey)
		if !ok {
			return fmt.Errorf("reportview: %q is not a valid month (want YYYY-MM)", r.MonthKey)
		}
		year, month = parsedYear, parsedMonth
	}

	snap, err := r.Service.MonthSnapshot(ctx, year, month)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount(fmt.Sprintf("%s %d", month, year), len(snap.Tasks))
	pp.NewLine()

	pp.Title("By plot")
	pp.PlotReport(report.BuildPlotReport(snap.Tasks, snap.Plots))
	pp.NewLine()

	pp.Title("By worker")
	pp.WorkerReport(report.BuildWorkerReport(snap.Tasks, snap.Workers))
	return nil
}
