package migrate

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// layouts accepted for stored date strings, tried in order. Bare dates parse
// as UTC midnight.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2006-1-2",
}

// SafeParseDate parses a stored date string. Dot separators ("2025.10.14")
// are normalized to hyphens; if no layout matches, the current time is
// returned instead of an error.
func SafeParseDate(s string, now func() time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now()
	}
	for _, candidate := range []string{s, strings.ReplaceAll(s, ".", "-")} {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t
			}
		}
	}
	return now()
}

// ToISOInstant renders a time as an ISO-8601 instant with millisecond
// precision, the format tasting-record dates use on disk.
func ToISOInstant(t time.Time) string {
	return strfmt.DateTime(t.UTC()).String()
}
