package core

import "time"

// DateLayout is the ISO-8601 calendar date format used for every stored date.
const DateLayout = "2006-01-02"

var nowFunc = time.Now // mockable

// Now returns the current local time.
func Now() time.Time { return nowFunc() }

// SetNowFunc replaces the clock used by Now and Today; it returns a func restoring the previous one.
func SetNowFunc(f func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = f
	return func() { nowFunc = prev }
}

// Today returns the current local calendar date as an ISO date string.
func Today() string {
	return FormatDate(nowFunc())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO date string as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// IsWeekend reports whether `t` falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
