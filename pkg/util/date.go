package util

import (
	"time"

	"cloud.google.com/go/civil"
)

// DateFormat is the wire layout for calendar dates.
const DateFormat = "2006-01-02"

// DateIn returns the calendar date of t in loc. A nil loc means time.Local.
func DateIn(t time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.Local
	}
	return civil.DateOf(t.In(loc))
}

// DaysBetween returns to - from in whole days. Negative when to precedes from.
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

// Midnight returns the first instant of d in loc.
func Midnight(d civil.Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return d.In(loc)
}
