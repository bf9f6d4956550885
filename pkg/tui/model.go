package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/schedule"
	"github.com/agroplanner/fieldops/pkg/task"
	"github.com/agroplanner/fieldops/pkg/tui/theme"
)

const visibleTasksPerDay = 3

type snapshotMsg struct {
	snap app.Snapshot
}

type errMsg struct {
	err error
}

type model struct {
	svc *app.Service
	now time.Time

	cursor      schedule.Cursor
	granularity schedule.Granularity

	// plotIdx and statusIdx index into the cycle lists; -1 means no
	// constraint.
	plotIdx   int
	statusIdx int

	snap    app.Snapshot
	index   *schedule.Index
	loading bool
	err     error

	width  int
	height int
	theme  theme.Theme
}

func newModel(svc *app.Service, now time.Time) model {
	return model{
		svc:         svc,
		now:         now,
		cursor:      schedule.CursorAt(datekey.Today(now)),
		granularity: schedule.ByMonth,
		plotIdx:     -1,
		statusIdx:   -1,
		loading:     true,
		theme:       theme.Default(),
	}
}

func (m model) Init() tea.Cmd {
	return m.load()
}

// load fetches the records for the current cursor window off the Update
// loop. The snapshot lands as a snapshotMsg.
func (m model) load() tea.Cmd {
	svc := m.svc
	from, to := m.window()
	return func() tea.Msg {
		snap, err := svc.RangeSnapshot(context.Background(), from, to)
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap: snap}
	}
}

// window returns the fetch bounds for the cursor at the current
// granularity. Week windows may cross month boundaries.
func (m model) window() (datekey.Date, datekey.Date) {
	switch m.granularity {
	case schedule.ByWeek:
		return schedule.WeekSpan(m.cursor.Date())
	case schedule.ByDay:
		d := m.cursor.Date()
		return d, d
	}
	first := datekey.New(m.cursor.Year, m.cursor.Month, 1)
	last := datekey.New(m.cursor.Year, m.cursor.Month, datekey.DaysInMonth(m.cursor.Year, m.cursor.Month))
	return first, last
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		m.index = schedule.BuildIndex(msg.snap.Tasks)
		m.loading = false
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.cursor = m.cursor.Step(m.granularity, -1)
		return m.reload()
	case "right", "l":
		m.cursor = m.cursor.Step(m.granularity, 1)
		return m.reload()
	case "t":
		m.cursor = schedule.CursorAt(datekey.Today(m.now))
		return m.reload()

	case "m":
		return m.setGranularity(schedule.ByMonth)
	case "w":
		return m.setGranularity(schedule.ByWeek)
	case "d":
		return m.setGranularity(schedule.ByDay)

	case "p":
		m.plotIdx = cycle(m.plotIdx, len(m.snap.Plots))
		return m, nil
	case "s":
		m.statusIdx = cycle(m.statusIdx, len(task.Decisions()))
		return m, nil

	case "r":
		return m.reload()
	}
	return m, nil
}

func (m model) setGranularity(g schedule.Granularity) (tea.Model, tea.Cmd) {
	if m.granularity == g {
		return m, nil
	}
	m.granularity = g
	return m.reload()
}

func (m model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, m.load()
}

// cycle advances idx through -1 (no constraint), 0..n-1 and back to -1.
func cycle(idx, n int) int {
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

func (m model) filter() schedule.Filter {
	f := schedule.Filter{}
	if m.plotIdx >= 0 && m.plotIdx < len(m.snap.Plots) {
		f.PlotID = m.snap.Plots[m.plotIdx].ID
	}
	if m.statusIdx >= 0 {
		f.Decision = task.Decisions()[m.statusIdx].String()
	}
	return f
}

func (m model) filterLabel() string {
	plot := "all plots"
	if m.plotIdx >= 0 && m.plotIdx < len(m.snap.Plots) {
		plot = m.snap.Plots[m.plotIdx].Name
	}
	status := "all statuses"
	if m.statusIdx >= 0 {
		status = task.Decisions()[m.statusIdx].String()
	}
	return plot + " · " + status
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Calendar.Title.Render(m.cursor.Label(m.granularity)))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Status.Render(m.filterLabel()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.Footer.Error.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(m.theme.Footer.Status.Render("loading…"))
		b.WriteString("\n")
	default:
		b.WriteString(m.body())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render("←/→ move · m/w/d view · p plot · s status · t today · r reload · q quit"))
	return b.String()
}

func (m model) body() string {
	f := m.filter()
	switch m.granularity {
	case schedule.ByWeek:
		return renderWeek(m.cursor.Date(), m.index, f, visibleTasksPerDay, m.theme.Calendar)
	case schedule.ByDay:
		return renderDay(m.cursor.Date(), m.index, f, m.theme.Calendar)
	}
	return renderMonth(m.cursor.Year, m.cursor.Month, m.index, f, datekey.Today(m.now), m.theme.Calendar)
}
