// Package datekey implements the canonical YYYY-MM-DD date keys used to
// bucket and compare schedule records. Keys sort lexicographically in
// chronological order, so they double as map keys and sort keys.
package datekey

import (
	"fmt"
	"time"
)

const (
	// Layout is the canonical key layout.
	Layout = "2006-01-02"
	// MonthLayout is the report grouping key layout.
	MonthLayout = "2006-01"
)

// Date is a calendar date at local-day granularity. The zero value is
// invalid and acts as the sentinel for malformed input.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New normalizes the given calendar components into a Date. Out-of-range
// components roll over the way time.Date rolls them over.
func New(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the Date for the supplied wall-clock instant. Callers pass
// time.Now(); tests pass a fixed instant.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// Parse converts a canonical key into a Date. The second return is false
// for anything that is not a well-formed calendar date; the returned Date
// is then the zero sentinel.
func Parse(key string) (Date, bool) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return Date{}, false
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
}

// Valid reports whether d holds a real calendar date.
func (d Date) Valid() bool {
	return d.Year > 0 && d.Month >= time.January && d.Month <= time.December &&
		d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Key renders the canonical YYYY-MM-DD key, or "" for the invalid sentinel.
func (d Date) Key() string {
	if !d.Valid() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey renders the YYYY-MM grouping key, or "" for the invalid sentinel.
func (d Date) MonthKey() string {
	if !d.Valid() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// Time returns d at midnight in the local location.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Weekday returns the day of week, Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays steps n calendar days with full month/year rollover.
func (d Date) AddDays(n int) Date {
	if !d.Valid() {
		return Date{}
	}
	t := d.Time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// AddMonths steps n calendar months, clamping the day to the last valid
// day of the target month (Jan 31 + 1 month is the end of February, not
// March 2nd or 3rd).
func (d Date) AddMonths(n int) Date {
	if !d.Valid() {
		return Date{}
	}
	year, month := StepMonth(d.Year, d.Month, n)
	day := d.Day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

// StartOfWeek returns the Sunday on or before d.
func (d Date) StartOfWeek() Date {
	if !d.Valid() {
		return Date{}
	}
	return d.AddDays(-int(d.Weekday()))
}

// StepMonth adds n months to a year-month pair without touching a day
// component. time.Date normalizes out-of-range months across year bounds.
func StepMonth(year int, month time.Month, n int) (int, time.Month) {
	t := time.Date(year, time.Month(int(month)+n), 1, 0, 0, 0, 0, time.Local)
	return t.Year(), t.Month()
}

// DaysInMonth returns the day count of the month, 28 through 31.
func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}

// FirstWeekday returns the weekday of the 1st of the month, Sunday = 0.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// ParseMonthKey splits a YYYY-MM grouping key. The second return is false
// for malformed input.
func ParseMonthKey(key string) (int, time.Month, bool) {
	t, err := time.ParseInLocation(MonthLayout, key, time.Local)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}
