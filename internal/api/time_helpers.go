package api

import (
	"errors"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var errBadTimestamp = errors.New("unrecognized timestamp")

func parseTimestamp(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errBadTimestamp
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	if parsed, err := time.Parse(dateOnlyLayout, value); err == nil {
		return parsed, nil
	}
	return time.Time{}, errBadTimestamp
}

// parseRangeBound turns a query value into an inclusive range bound for an
// exclusive-end window: a date-only end covers the whole named day, an exact
// end timestamp is still included.
func parseRangeBound(raw string, isEnd bool) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if parsed, err := time.Parse(dateOnlyLayout, value); err == nil {
		if isEnd {
			return parsed.AddDate(0, 0, 1), nil
		}
		return parsed, nil
	}

	parsed, err := parseTimestamp(value)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		return parsed.Add(time.Nanosecond), nil
	}
	return parsed, nil
}
