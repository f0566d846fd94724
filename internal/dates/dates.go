// Package dates owns the calendar-day identifiers the whole tracker runs on.
// A day is a YYYY-MM-DD string in the device's local timezone; because the
// format is zero-padded, lexicographic order equals chronological order.
package dates

import "time"

const DayFormat = "2006-01-02"

// Today returns the current day identifier in local time.
func Today(c Clock) string {
	return c.Now().In(time.Local).Format(DayFormat)
}

// Yesterday returns the day identifier one calendar day before today.
func Yesterday(c Clock) string {
	return c.Now().In(time.Local).AddDate(0, 0, -1).Format(DayFormat)
}

// AddDays shifts a day identifier by n calendar days, format-preserving.
// A malformed input is returned unchanged.
func AddDays(day string, n int) string {
	t, err := time.ParseInLocation(DayFormat, day, time.Local)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(DayFormat)
}

// DaysBetween returns b - a in whole calendar days (positive when b is later).
// Identifiers carry no time component, so they are compared in UTC to keep DST
// transitions out of the arithmetic. Malformed inputs yield 0.
func DaysBetween(a, b string) int {
	ta, err := time.Parse(DayFormat, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(DayFormat, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// Valid reports whether day parses as a YYYY-MM-DD identifier.
func Valid(day string) bool {
	_, err := time.ParseInLocation(DayFormat, day, time.Local)
	return err == nil
}
