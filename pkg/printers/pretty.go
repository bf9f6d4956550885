// Package printers renders schedule and report views for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/agroplanner/fieldops/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("TASK_1A2B3C4D  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// TaskList prints tasks for a single day, one per line with the decision
// glyph in front.
func (pp *PrettyPrint) TaskList(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, tk := range tasks {
		if pp.ShowID {
			_, _ = y.Print(tk.ID)
			if pad := len(spacing) - len(tk.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = decisionPrinter(tk.Decision).Printf("%s ", tk.Decision.Glyph())
		_, _ = t.Printf("%s", tk.Title)
		if tk.Type != "" {
			_, _ = color.New(color.Faint).Printf("  [%s]", tk.Type)
		}
		if tk.HasProposal() {
			_, _ = color.New(color.FgHiMagenta, color.Faint).Printf("  → %s", tk.ProposedDateKey)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

func decisionPrinter(d task.Decision) *color.Color {
	switch d {
	case task.Proceed:
		return color.New(color.FgGreen)
	case task.Stop:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
