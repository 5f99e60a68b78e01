// Package period classifies calendar dates into the named filter periods of
// the dashboard, always relative to an explicit "today".
package period

import "time"

// Period is a named date bucket selectable in the period filters.
type Period string

const (
	All       Period = "all"
	Today     Period = "today"
	Last7     Period = "last7"  // trailing window today-6..today
	Last30    Period = "last30" // trailing window today-29..today
	ThisMonth Period = "this_month"
	Next7     Period = "next7" // today..today+7
	Overdue   Period = "overdue"
)

// DayOf strips the time-of-day, keeping the location. All comparisons in this
// package happen at calendar-date granularity to avoid timezone drift.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify reports whether date falls inside the given period relative to
// today. A zero date and unknown periods classify as true, so unset filters
// are identity no-ops.
func Classify(date time.Time, p Period, today time.Time) bool {
	if date.IsZero() || p == All || p == "" {
		return true
	}

	d := DayOf(date)
	t := DayOf(today)

	switch p {
	case Today:
		return d.Equal(t)
	case Last7:
		start := t.AddDate(0, 0, -6)
		return !d.Before(start) && !d.After(t)
	case Last30:
		start := t.AddDate(0, 0, -29)
		return !d.Before(start) && !d.After(t)
	case ThisMonth:
		return d.Year() == t.Year() && d.Month() == t.Month()
	case Next7:
		end := t.AddDate(0, 0, 7)
		return !d.Before(t) && !d.After(end)
	case Overdue:
		return d.Before(t)
	}
	return true
}

// DaysFromToday returns the whole-day distance from today to date (negative
// when the date is in the past). The subtraction happens on date-only UTC
// stamps, so daylight-saving shifts cannot introduce off-by-one errors.
func DaysFromToday(date, today time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}
