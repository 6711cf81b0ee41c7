package timeutil

import "time"

// TimestampLayout is the ISO-8601 layout used for snapshot timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTimestamp formats t as an ISO-8601 timestamp with microseconds in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp produced by FormatTimestamp.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}
