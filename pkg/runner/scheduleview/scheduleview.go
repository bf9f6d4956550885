// Package scheduleview renders the schedule calendar for the CLI.
package scheduleview

import (
	"context"
	"fmt"
	"time"

	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/printers"
	"github.com/agroplanner/fieldops/pkg/schedule"
)

type ScheduleView struct {
	Service *app.Service

	View   string // month, week, or day
	On     string // anchor date key, empty means today
	Plot   string
	Status string
	Limit  int // tasks visible per cell before the +N badge
	ShowID bool

	Now time.Time
}

func (s *ScheduleView) Do(ctx context.Context) error {
	granularity, err := schedule.ParseGranularity(s.View)
	if err != nil {
		return err
	}

	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	anchor := datekey.Today(now)
	if s.On != "" {
		parsed, ok := datekey.Parse(s.On)
		if !ok {
			return fmt.Errorf("scheduleview: %q is not a valid date (want YYYY-MM-DD)", s.On)
		}
		anchor = parsed
	}
	cursor := schedule.CursorAt(anchor)

	snap, err := s.snapshot(ctx, cursor, granularity)
	if err != nil {
		return err
	}
	ix := schedule.BuildIndex(snap.Tasks)
	filter := schedule.Filter{PlotID: s.Plot, Decision: s.Status}

	pp := printers.PrettyPrint{ShowID: s.ShowID}
	fmt.Println("")
	pp.TitleWithCount(cursor.Label(granularity), ix.Total())

	switch granularity {
	case schedule.ByWeek:
		row := schedule.BuildWeekRow(anchor, ix, filter, s.Limit)
		pp.WeekRow(row)
	case schedule.ByDay:
		tasks := schedule.BuildDayList(anchor.Key(), ix, filter)
		pp.TaskList(tasks...)
	default:
		grid := schedule.BuildMonthGrid(cursor.Year, cursor.Month, ix, filter, s.Limit)
		pp.MonthGrid(cursor.Year, cursor.Month, grid, datekey.Today(now))
	}
	return nil
}

// snapshot fetches the window the view needs: the whole month for the
// month view, the Monday-first week for the week view, one day for the
// day view.
func (s *ScheduleView) snapshot(ctx context.Context, cursor schedule.Cursor, g schedule.Granularity) (app.Snapshot, error) {
	switch g {
	case schedule.ByWeek:
		from, to := schedule.WeekSpan(cursor.Date())
		return s.Service.RangeSnapshot(ctx, from, to)
	case schedule.ByDay:
		d := cursor.Date()
		return s.Service.RangeSnapshot(ctx, d, d)
	default:
		return s.Service.MonthSnapshot(ctx, cursor.Year, cursor.Month)
	}
}
