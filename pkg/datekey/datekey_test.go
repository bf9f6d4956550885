package datekey

import (
	"testing"
	"time"
)

func TestParseRoundTrip(t *testing.T) {
	d, ok := Parse("2024-02-29")
	if !ok {
		t.Fatalf("expected 2024-02-29 to parse")
	}
	if d.Year != 2024 || d.Month != time.February || d.Day != 29 {
		t.Fatalf("unexpected components: %+v", d)
	}
	if got := d.Key(); got != "2024-02-29" {
		t.Fatalf("round trip mismatch: %s", got)
	}
	if got := d.MonthKey(); got != "2024-02" {
		t.Fatalf("unexpected month key: %s", got)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, raw := range []string{"", "garbage", "2023-02-29", "2024-13-01", "2024-1-1", "01/02/2024"} {
		d, ok := Parse(raw)
		if ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
		if d.Valid() {
			t.Fatalf("sentinel for %q should be invalid", raw)
		}
		if d.Key() != "" {
			t.Fatalf("sentinel key should be empty, got %q", d.Key())
		}
	}
}

func TestKeysSortChronologically(t *testing.T) {
	a, _ := Parse("2023-12-31")
	b, _ := Parse("2024-01-01")
	if !(a.Key() < b.Key()) {
		t.Fatalf("lexicographic order should match chronological order: %s vs %s", a.Key(), b.Key())
	}
}

func TestAddDaysRollover(t *testing.T) {
	d, _ := Parse("2024-12-31")
	if got := d.AddDays(1).Key(); got != "2025-01-01" {
		t.Fatalf("expected year rollover, got %s", got)
	}
	if got := d.AddDays(-31).Key(); got != "2024-11-30" {
		t.Fatalf("expected backward rollover, got %s", got)
	}
}

func TestAddMonthsClamps(t *testing.T) {
	d, _ := Parse("2024-01-31")
	if got := d.AddMonths(1).Key(); got != "2024-02-29" {
		t.Fatalf("expected clamp to leap-day, got %s", got)
	}
	d, _ = Parse("2023-01-31")
	if got := d.AddMonths(1).Key(); got != "2023-02-28" {
		t.Fatalf("expected clamp to Feb 28, got %s", got)
	}
	d, _ = Parse("2024-11-15")
	if got := d.AddMonths(2).Key(); got != "2025-01-15" {
		t.Fatalf("expected year rollover, got %s", got)
	}
	d, _ = Parse("2024-01-15")
	if got := d.AddMonths(-1).Key(); got != "2023-12-15" {
		t.Fatalf("expected backward year rollover, got %s", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-02-01 is a Thursday; the Sunday before is Jan 28.
	d, _ := Parse("2024-02-01")
	if got := d.StartOfWeek().Key(); got != "2024-01-28" {
		t.Fatalf("unexpected start of week: %s", got)
	}
	// A Sunday is its own week start.
	d, _ = Parse("2024-01-28")
	if got := d.StartOfWeek().Key(); got != "2024-01-28" {
		t.Fatalf("sunday should be its own start: %s", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := map[time.Month]int{
		time.January:  31,
		time.February: 29, // 2024 is a leap year
		time.April:    30,
	}
	for month, want := range cases {
		if got := DaysInMonth(2024, month); got != want {
			t.Fatalf("DaysInMonth(2024, %v) = %d, want %d", month, got, want)
		}
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Fatalf("DaysInMonth(2023, February) = %d, want 28", got)
	}
}

func TestFirstWeekday(t *testing.T) {
	if got := FirstWeekday(2024, time.February); got != time.Thursday {
		t.Fatalf("February 2024 starts on %v, want Thursday", got)
	}
	if got := FirstWeekday(2024, time.September); got != time.Sunday {
		t.Fatalf("September 2024 starts on %v, want Sunday", got)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 45, 0, 0, time.Local)
	if got := Today(now).Key(); got != "2024-03-05" {
		t.Fatalf("unexpected today key: %s", got)
	}
}

func TestStepMonth(t *testing.T) {
	y, m := StepMonth(2024, time.December, 1)
	if y != 2025 || m != time.January {
		t.Fatalf("expected 2025 January, got %d %v", y, m)
	}
	y, m = StepMonth(2024, time.January, -1)
	if y != 2023 || m != time.December {
		t.Fatalf("expected 2023 December, got %d %v", y, m)
	}
}

func TestParseMonthKey(t *testing.T) {
	y, m, ok := ParseMonthKey("2024-02")
	if !ok || y != 2024 || m != time.February {
		t.Fatalf("unexpected parse: %d %v %v", y, m, ok)
	}
	if _, _, ok := ParseMonthKey("2024-2"); ok {
		t.Fatalf("expected malformed month key to be rejected")
	}
}
