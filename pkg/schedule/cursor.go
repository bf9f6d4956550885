package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/agroplanner/fieldops/pkg/datekey"
)

// Granularity is the calendar view scale.
type Granularity int

const (
	ByMonth Granularity = iota
	ByWeek
	ByDay
)

// ParseGranularity maps CLI/view strings onto a Granularity.
func ParseGranularity(raw string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "month", "":
		return ByMonth, nil
	case "week":
		return ByWeek, nil
	case "day":
		return ByDay, nil
	}
	return ByMonth, fmt.Errorf("schedule: unknown granularity %q", raw)
}

func (g Granularity) String() string {
	switch g {
	case ByWeek:
		return "week"
	case ByDay:
		return "day"
	default:
		return "month"
	}
}

// Cursor is the navigation position of the schedule view. It is pure
// calendar state, decoupled from any task data.
type Cursor struct {
	Year  int
	Month time.Month
	Day   int
}

// CursorAt positions a cursor on the given date.
func CursorAt(d datekey.Date) Cursor {
	return Cursor{Year: d.Year, Month: d.Month, Day: d.Day}
}

// Date resolves the cursor to a concrete date, clamping the day component
// to the month's last day. Month stepping leaves the day untouched, so a
// cursor can briefly point at Feb 31; the clamp makes it usable again.
func (c Cursor) Date() datekey.Date {
	day := c.Day
	if day < 1 {
		day = 1
	}
	if last := datekey.DaysInMonth(c.Year, c.Month); day > last {
		day = last
	}
	return datekey.New(c.Year, c.Month, day)
}

// Step moves the cursor one unit of the granularity in the given
// direction (+1 forward, -1 backward). Month steps adjust only the
// year-month pair; week and day steps do full date arithmetic with
// rollover.
func (c Cursor) Step(g Granularity, direction int) Cursor {
	dir := 1
	if direction < 0 {
		dir = -1
	}
	switch g {
	case ByWeek:
		return CursorAt(c.Date().AddDays(7 * dir))
	case ByDay:
		return CursorAt(c.Date().AddDays(dir))
	default:
		year, month := datekey.StepMonth(c.Year, c.Month, dir)
		return Cursor{Year: year, Month: month, Day: c.Day}
	}
}

// Label renders the human-readable range for the cursor at the given
// granularity, e.g. "February 2024", "Jan 29 – Feb 4, 2024", or
// "February 5, 2024".
func (c Cursor) Label(g Granularity) string {
	switch g {
	case ByWeek:
		start, end := WeekSpan(c.Date())
		from, until := start.Time(), end.Time()
		if from.Year() != until.Year() {
			return fmt.Sprintf("%s – %s", from.Format("Jan 2, 2006"), until.Format("Jan 2, 2006"))
		}
		return fmt.Sprintf("%s – %s, %d", from.Format("Jan 2"), until.Format("Jan 2"), from.Year())
	case ByDay:
		return c.Date().Time().Format("January 2, 2006")
	default:
		return fmt.Sprintf("%s %d", c.Month, c.Year)
	}
}

// WeekSpan returns the Monday and Sunday of the week containing d,
// matching the rows BuildWeekRow produces.
func WeekSpan(d datekey.Date) (datekey.Date, datekey.Date) {
	monday := d.StartOfWeek().AddDays(1)
	if d.Weekday() == time.Sunday {
		monday = d.AddDays(-6)
	}
	return monday, monday.AddDays(6)
}
