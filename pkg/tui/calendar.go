package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/schedule"
	"github.com/agroplanner/fieldops/pkg/task"
	"github.com/agroplanner/fieldops/pkg/tui/theme"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

// renderMonth draws the Sunday-first month grid. Days that have at least
// one matching task are underlined; today is highlighted.
func renderMonth(year int, month time.Month, ix *schedule.Index, f schedule.Filter, today datekey.Date, th theme.CalendarTheme) string {
	grid := schedule.BuildMonthGrid(year, month, ix, f, -1)

	var b strings.Builder
	b.WriteString(th.Weekday.Render(weekdayHeader))
	b.WriteString("\n")

	col := 0
	for _, cell := range grid {
		if cell.Blank {
			b.WriteString("  ")
		} else {
			style := th.Day
			if cell.DateKey == today.Key() {
				style = th.Today
			}
			if len(cell.Tasks) > 0 {
				style = style.Copy().Underline(true)
			}
			b.WriteString(style.Render(fmt.Sprintf("%2d", cell.DayNumber)))
		}
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// renderWeek draws the Monday-first week containing the anchor, one day
// per section with its task lines.
func renderWeek(anchor datekey.Date, ix *schedule.Index, f schedule.Filter, visibleLimit int, th theme.CalendarTheme) string {
	row := schedule.BuildWeekRow(anchor, ix, f, visibleLimit)

	var b strings.Builder
	for _, cell := range row {
		d, ok := datekey.Parse(cell.DateKey)
		if !ok {
			continue
		}
		label := d.Time().Format("Mon Jan 2")
		if cell.DateKey == anchor.Key() {
			b.WriteString(th.Today.Render(label))
		} else {
			b.WriteString(th.Weekday.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(renderTasks(cell.Tasks, cell.OverflowCount, th))
	}
	return b.String()
}

// renderDay draws a single day's task list.
func renderDay(d datekey.Date, ix *schedule.Index, f schedule.Filter, th theme.CalendarTheme) string {
	tasks := schedule.BuildDayList(d.Key(), ix, f)
	if len(tasks) == 0 {
		return th.Weekday.Render("no tasks") + "\n"
	}
	return renderTasks(tasks, 0, th)
}

func renderTasks(tasks []task.Task, overflow int, th theme.CalendarTheme) string {
	var b strings.Builder
	for i, t := range tasks {
		if overflow > 0 && i == len(tasks)-overflow {
			break
		}
		b.WriteString("  ")
		b.WriteString(decisionStyleFor(t.Decision, th).Render(t.Decision.Glyph()))
		b.WriteString(" ")
		b.WriteString(t.Title)
		if t.HasProposal() {
			b.WriteString(" ")
			b.WriteString(th.Overflow.Render("→ " + t.ProposedDateKey))
		}
		b.WriteString("\n")
	}
	if overflow > 0 {
		b.WriteString(th.Overflow.Render(fmt.Sprintf("  +%d more", overflow)))
		b.WriteString("\n")
	}
	return b.String()
}

func decisionStyleFor(d task.Decision, th theme.CalendarTheme) lipgloss.Style {
	switch d {
	case task.Proceed:
		return th.Proceed
	case task.Stop:
		return th.Stop
	}
	return th.Pending
}
