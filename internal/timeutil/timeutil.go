package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DisplayLayout is the long-form date used in table headers.
const DisplayLayout = "Monday, January 02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DisplayDate reformats a YYYY-MM-DD string as "Monday, January 02".
// Unparseable input is returned unchanged so the raw value still renders.
func DisplayDate(value string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format(DisplayLayout)
}

// Weekday returns the weekday name for a YYYY-MM-DD string, or the raw
// value when it does not parse.
func Weekday(value string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format("Monday")
}

// DaysAgo returns the date n days before now, formatted as YYYY-MM-DD.
func DaysAgo(now time.Time, n int) string {
	return FormatDate(now.AddDate(0, 0, -n))
}
