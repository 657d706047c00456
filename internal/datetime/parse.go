// Package datetime normalizes the heterogeneous date representations found in
// extracted credit report data into canonical time values.
package datetime

import (
	"strings"
	"time"
)

// layouts are tried in order; the first one that parses wins.
var layouts = []string{
	"2006-01-02", // YYYY-MM-DD
	"01/02/2006", // MM/DD/YYYY
	"01-02-2006", // MM-DD-YYYY
	"2006/01/02", // YYYY/MM/DD
	"01/2006",    // MM/YYYY
	"20060102",   // YYYYMMDD
	"200601",     // YYYYMM
}

// Normalize converts an arbitrary value into a canonical date. The second
// return value is false when no date could be derived. Report records with
// missing or garbled dates are routine, so unparsable input is a data-quality
// condition here, never an error.
func Normalize(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return truncate(v), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return truncate(*v), true
	case string:
		return ParseString(v)
	default:
		return time.Time{}, false
	}
}

// ParseString parses a date string against the supported layouts.
func ParseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MustParse parses a YYYY-MM-DD date string and panics on error. Intended for
// tests where the input is known to be valid.
func MustParse(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// truncate drops the time-of-day component so all comparisons operate on
// whole dates.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
