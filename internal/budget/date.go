package budget

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate for input in none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date format")

// dateLayouts are tried in order. The space separated layout is the format
// dates are rendered in by the database.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses an ISO 8601 date or timestamp. Dates without a time zone
// are interpreted as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
