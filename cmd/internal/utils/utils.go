package utils

import (
	"errors"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// time.Parse accepts fractional seconds after a seconds field even when the
// layout has none, so inputs must also match the layout length exactly.
var errLayoutLength = errors.New("input does not match layout length")

// FormatDateTime renders a stored wall-clock time as "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseDateTime reads "YYYY-MM-DD HH:MM:SS" as a zone-less wall clock,
// represented in UTC.
func ParseDateTime(s string) (time.Time, error) {
	if len(s) != len(DateTimeLayout) {
		return time.Time{}, errLayoutLength
	}
	return time.Parse(DateTimeLayout, s)
}

// ParseDay returns the bounds [start, end) of the calendar day "YYYY-MM-DD".
func ParseDay(s string) (time.Time, time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, time.Time{}, errLayoutLength
	}
	start, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// WallClock drops the zone of t, keeping what a clock in t's location
// shows, so it compares with times from ParseDateTime.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// IsQuarterHour checks if t starts at :00, :15, :30 or :45.
func IsQuarterHour(t time.Time) bool {
	return t.Minute()%15 == 0
}
