package model

import (
	"strings"
	"time"
)

// CalendarLayout is the minute-precision layout used for every rendered
// approach time.
const CalendarLayout = "2006-01-02 15:04"

// calendarLayouts are tried in order. The day verb "2" accepts the day with
// or without its leading zero.
var calendarLayouts = []string{
	"2006-01-2 15:04",
	"2006-Jan-2 15:04",
}

// ParseCalendarTime parses a close-approach time such as "2020-01-01 12:00"
// or "1900-Jan-1 00:11" into a UTC time.
func ParseCalendarTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewFormatError("time", "unable to parse %q, use YYYY-MM-DD HH:MM", s)
}

// FormatCalendarTime renders t in UTC without seconds.
func FormatCalendarTime(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
