package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/schedule"
)

const width = len("11 12 13 14 15 16 17") // an example week

// MonthGrid prints the Sunday-first month view. Cells with tasks render
// bold; today renders underlined; a +N badge follows days whose task
// count exceeds the visible limit.
func (pp *PrettyPrint) MonthGrid(year int, month time.Month, grid []schedule.Cell, today datekey.Date) {
	tf := color.New(color.FgWhite, color.Italic)
	m := month.String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s %d\n", strings.Repeat(" ", mid), m, year)
	_, _ = color.New(color.Faint).Println("Su Mo Tu We Th Fr Sa")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	t1 := color.New(color.Faint, color.FgWhite, color.Underline)
	t2 := color.New(color.Bold, color.FgHiWhite, color.Underline)

	col := 0
	for _, cell := range grid {
		if cell.Blank {
			fmt.Print("   ")
			col++
			continue
		}

		printer := l1
		switch {
		case len(cell.Tasks) > 0 && cell.DateKey == today.Key():
			printer = t2
		case len(cell.Tasks) > 0:
			printer = l2
		case cell.DateKey == today.Key():
			printer = t1
		}
		_, _ = printer.Printf("%2d ", cell.DayNumber)

		col++
		if col > int(time.Saturday) {
			col = 0
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// WeekRow prints the Monday-first week view, one day per line with its
// tasks inline.
func (pp *PrettyPrint) WeekRow(row []schedule.Cell) {
	dayLabel := color.New(color.Bold)
	badge := color.New(color.FgHiCyan, color.Faint)

	for _, cell := range row {
		d, ok := datekey.Parse(cell.DateKey)
		if !ok {
			continue
		}
		_, _ = dayLabel.Printf("%s %s\n", d.Weekday().String()[:3], cell.DateKey)
		if len(cell.Tasks) == 0 {
			_, _ = color.New(color.Faint, color.Italic).Println("   none")
			continue
		}
		for i, tk := range cell.Tasks {
			if cell.OverflowCount > 0 && i == len(cell.Tasks)-cell.OverflowCount {
				_, _ = badge.Printf("   +%d more\n", cell.OverflowCount)
				break
			}
			_, _ = decisionPrinter(tk.Decision).Printf("   %s ", tk.Decision.Glyph())
			fmt.Println(tk.Title)
		}
	}
	fmt.Println("")
}
