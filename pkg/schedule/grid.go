package schedule

import (
	"time"

	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/task"
)

// Cell is one slot of a calendar view. Leading month-grid slots before the
// 1st are blank; every other cell carries its day's filtered task list.
type Cell struct {
	Blank         bool
	DayNumber     int
	DateKey       string
	Tasks         []task.Task
	OverflowCount int
}

// BuildMonthGrid lays out a Sunday-first month view: one blank cell per
// weekday preceding the 1st, then one cell per day of the month. The grid
// length is firstWeekday + daysInMonth; renderers round up to full weeks.
// visibleLimit caps how many tasks a cell shows before the +N badge; the
// builder only computes the count, rendering decides visibility.
func BuildMonthGrid(year int, month time.Month, ix *Index, f Filter, visibleLimit int) []Cell {
	lead := int(datekey.FirstWeekday(year, month))
	days := datekey.DaysInMonth(year, month)

	grid := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		grid = append(grid, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		grid = append(grid, dayCell(datekey.New(year, month, day), ix, f, visibleLimit))
	}
	return grid
}

// BuildWeekRow returns the Monday→Sunday row containing the anchor date,
// regardless of which weekday the anchor falls on. The month grid stays
// Sunday-first while the week view is Monday-first; both derive from the
// same Sunday returned by StartOfWeek.
func BuildWeekRow(anchor datekey.Date, ix *Index, f Filter, visibleLimit int) []Cell {
	monday, _ := WeekSpan(anchor)

	row := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		row = append(row, dayCell(monday.AddDays(i), ix, f, visibleLimit))
	}
	return row
}

// BuildDayList is the single-day view: a straight filtered query.
func BuildDayList(dateKey string, ix *Index, f Filter) []task.Task {
	return ix.Query(dateKey, f)
}

func dayCell(d datekey.Date, ix *Index, f Filter, visibleLimit int) Cell {
	tasks := ix.Query(d.Key(), f)
	overflow := 0
	if visibleLimit >= 0 && len(tasks) > visibleLimit {
		overflow = len(tasks) - visibleLimit
	}
	return Cell{
		DayNumber:     d.Day,
		DateKey:       d.Key(),
		Tasks:         tasks,
		OverflowCount: overflow,
	}
}
