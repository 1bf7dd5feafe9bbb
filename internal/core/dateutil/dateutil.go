// Package dateutil holds the calendar boundary helpers used by the stats
// aggregators. Every function works in the location carried by its input.
package dateutil

import "time"

const DateKeyLayout = "2006-01-02"

func StartOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// EndOfDay returns the last representable instant of d's calendar day.
func EndOfDay(d time.Time) time.Time {
	return DayAfter(d).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the first day of d's week.
// With weekStart == time.Monday a Sunday belongs to the week that began six days earlier.
func StartOfWeek(d time.Time, weekStart time.Weekday) time.Time {
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(d).AddDate(0, 0, -offset)
}

func EndOfWeek(d time.Time, weekStart time.Weekday) time.Time {
	return EndOfDay(StartOfWeek(d, weekStart).AddDate(0, 0, 6))
}

// DayAfter returns midnight of the calendar day following d.
func DayAfter(d time.Time) time.Time {
	return StartOfDay(d).AddDate(0, 0, 1)
}

// InRange reports whether start <= d <= end.
func InRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func StartOfMonth(d time.Time) time.Time {
	y, m, _ := d.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, d.Location())
}

func EndOfMonth(d time.Time) time.Time {
	return StartOfMonth(d).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func StartOfYear(year int, loc *time.Location) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
}

func EndOfYear(year int, loc *time.Location) time.Time {
	return StartOfYear(year+1, loc).Add(-time.Nanosecond)
}

// DaysIn enumerates every calendar day between start and end, both included,
// as midnights in start's location.
func DaysIn(start, end time.Time) []time.Time {
	first := StartOfDay(start)
	last := StartOfDay(end.In(start.Location()))
	if last.Before(first) {
		return []time.Time{}
	}

	days := make([]time.Time, 0, 32)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func DaysInYear(year int, loc *time.Location) []time.Time {
	return DaysIn(StartOfYear(year, loc), EndOfYear(year, loc))
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DateKey formats d as yyyy-MM-dd in its own location.
func DateKey(d time.Time) string {
	return d.Format(DateKeyLayout)
}
