package study

import "time"

// DayStart returns the start of the current day in the user's timezone, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// AddDays shifts now by n calendar days in tz, keeping the wall-clock time.
func AddDays(now time.Time, tz *time.Location, n int) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	return now.In(tz).AddDate(0, 0, n)
}

// OnOrBefore reports whether due falls on the calendar day of today or earlier.
// Both instants are truncated to midnight in tz.
func OnOrBefore(due, today time.Time, tz *time.Location) bool {
	return !DayStart(due, tz).After(DayStart(today, tz))
}
