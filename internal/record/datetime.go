package record

import (
	"fmt"
	"time"
)

// TimeFormat is the canonical serialized form of record timestamps:
// RFC 3339 in UTC with microsecond precision.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

var parseLayouts = []string{
	TimeFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999Z07:00",
	"2006-01-02 15:04:05",
}

// FormatDatetime renders t in the canonical string form.
func FormatDatetime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// ParseDatetime parses a timestamp in the canonical form or one of the
// accepted legacy layouts. The result is always UTC.
func ParseDatetime(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// NormalizeDatetime re-normalizes a timestamp string into the canonical
// form. Empty input stays empty.
func NormalizeDatetime(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := ParseDatetime(s)
	if err != nil {
		return "", err
	}
	return FormatDatetime(t), nil
}
