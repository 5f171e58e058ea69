package timecalc

import (
	"fmt"
	"time"
)

// Day is the number of wall-clock hours in a day without DST changes.
const Day = 24 * time.Hour

// FormatMinutes formats minutes as "6h 30m". Negative values keep the sign.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		return "-" + FormatMinutes(-minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Midnight returns the start of the next day (midnight) in the same location.
// It steps on the calendar, so the result is 23h or 25h away on DST days.
func Midnight(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	return StartOfDay(t.AddDate(0, 0, -(wd - 1)))
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// DayLabel returns the calendar date of t, e.g. "2026-02-27".
func DayLabel(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthLabel returns the calendar month of t, e.g. "2026-02".
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountWeekdays counts the Monday–Friday calendar days from the date of from
// through the date of to, both inclusive. It returns 0 when to is before from.
func CountWeekdays(from, to time.Time) int {
	first := time.Date(from.Year(), from.Month(), from.Day(), 12, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), to.Day(), 12, 0, 0, 0, time.UTC)
	n := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			n++
		}
	}
	return n
}

// ParseInstant parses an RFC 3339 timestamp such as "2026-02-27T09:00:00Z" or
// "2026-02-27T09:00:00+01:00", with or without fractional seconds.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse instant %q: %w", s, err)
	}
	return t, nil
}

// FormatInstant renders t in UTC with second precision, the form the
// time-tracking API expects in query parameters.
func FormatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
