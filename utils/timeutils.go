package utils

import (
	"fmt"
	"time"
)

// DateLayout is the yyyy-MM-dd form used by every tool argument.
const DateLayout = "2006-01-02"

// CompactDateLayout is the yyyyMMdd form used by train search.
const CompactDateLayout = "20060102"

// LoadZone returns the service time zone.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}

// Today returns the calendar date of now in loc as yyyy-MM-dd.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd date as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// NotBeforeToday reports whether date is today or later in loc.
func NotBeforeToday(date string, now time.Time, loc *time.Location) (bool, error) {
	d, err := ParseDate(date, loc)
	if err != nil {
		return false, err
	}
	n := now.In(loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return !d.Before(today), nil
}

// CompactDate converts yyyy-MM-dd to yyyyMMdd.
func CompactDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Format(CompactDateLayout), nil
}
