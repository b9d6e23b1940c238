package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "Jan 2, 2006"
	layoutDateTime = "Jan 2, 2006 15:04"
	layoutISODate  = "2006-01-02"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDate renders a server RFC3339 timestamp as "Jan 2, 2006".
// Empty or unparseable input renders as "N/A".
func FormatDate(s string) string {
	t, ok := parseServerTime(s)
	if !ok {
		return "N/A"
	}
	return t.Format(layoutDate)
}

// FormatDateTime renders a server RFC3339 timestamp with time of day.
func FormatDateTime(s string) string {
	t, ok := parseServerTime(s)
	if !ok {
		return "N/A"
	}
	return t.Format(layoutDateTime)
}

// ParseDate parses YYYY-MM-DD, the wire format of date-range filters.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutISODate, strings.TrimSpace(s))
}

func parseServerTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(layoutISODate, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
