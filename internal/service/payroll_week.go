package service

import "time"

// WeekBounds returns the ISO week containing t: Monday 00:00:00 through
// Sunday 23:59:59 in t's location. Payroll aggregation treats an interval as
// belonging to the week its start time falls into.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())

	// time.Weekday counts Sunday as 0; shift so Monday is 0
	offset := (int(midnight.Weekday()) + 6) % 7
	weekStart := midnight.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)
	return weekStart, weekEnd
}

// AnchorToDate combines the calendar date of date with the time of day of t.
// Bulk-created intervals are anchored this way so all entries of one detail
// share its schedule date regardless of the date component the input carried.
func AnchorToDate(date, t time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DurationSeconds returns the length of the [start, end] interval in whole
// seconds.
func DurationSeconds(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}
