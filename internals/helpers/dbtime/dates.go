// Package dbtime converts between wire date/time strings and storage types.
package dbtime

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

// ParseDate parses YYYY-MM-DD into a date column value.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a date column as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDateTime parses an RFC3339 timestamp and normalises it to UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
