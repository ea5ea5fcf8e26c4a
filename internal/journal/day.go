// Package journal holds the in-memory mirror of each account's entry list and
// the calendar-day arithmetic behind the one-entry-per-day rule.
package journal

import "time"

// DayWindow returns the half-open calendar-day window [startOfDay,
// startOfDay+1day) that contains t, in t's location. The daily-entry limit is
// evaluated against this window, so the meaning of "day" follows the journal's
// configured timezone rather than UTC.
func DayWindow(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// UTCDayWindow returns the UTC calendar-day window containing t. The public
// feed groups shared entries by this window: the feed shows a "global day"
// while the personal limit uses the journal's own day.
func UTCDayWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// InMidnightWindow reports whether t falls inside the narrow window around
// local midnight (23:59:50 through 00:00:10) in which mirrors are refreshed so
// the daily-limit gate resets without user interaction.
func InMidnightWindow(t time.Time) bool {
	h, min, sec := t.Clock()
	if h == 23 && min == 59 && sec >= 50 {
		return true
	}
	if h == 0 && min == 0 && sec <= 10 {
		return true
	}
	return false
}
