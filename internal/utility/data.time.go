package utility

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// epochMillisThreshold separates second-scale from millisecond-scale epoch
// timestamps. Anything above ~10^11 cannot be a plausible second count
// (year 5138), so it is read as milliseconds.
const epochMillisThreshold = 1e11

// FromEpoch converts a numeric timestamp to UTC time, deciding between
// seconds and milliseconds by magnitude.
func FromEpoch(v float64) time.Time {
	if math.Abs(v) > epochMillisThreshold {
		ms := int64(v)
		return time.UnixMilli(ms).UTC()
	}
	sec := int64(v)
	return time.Unix(sec, 0).UTC()
}

// ParseTimestamp normalizes a loosely-typed timestamp value from the
// external source: RFC3339 strings (with or without fractional seconds),
// "YYYY-MM-DD HH:MM:SS" strings, or epoch numbers. Returns the zero time
// and false when the value cannot be interpreted.
func ParseTimestamp(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return val.UTC(), true
	case float64:
		return FromEpoch(val), true
	case int64:
		return FromEpoch(float64(val)), true
	case int:
		return FromEpoch(float64(val)), true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		layouts := []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// ParseDurationMinutes converts a "HH:MM:SS" duration string into whole
// minutes, rounding the seconds component. Empty or malformed strings
// yield zero, not an error.
func ParseDurationMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0
	}

	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0
	}

	minutes := h*60 + m
	if sec >= 30 {
		minutes++
	}
	return minutes
}

// DayBounds returns the inclusive UTC range [00:00:00, 23:59:59] covering
// start through end calendar days.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
	return s, e
}

// WorkingDays expands [start, end] into the site's working days, Monday
// through Saturday. Sunday is the fixed weekly off day.
func WorkingDays(start, end time.Time) []time.Time {
	var days []time.Time
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	for !d.After(last) {
		if d.Weekday() != time.Sunday {
			days = append(days, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// ParseDateParam parses a YYYY-MM-DD query parameter.
func ParseDateParam(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t.UTC(), nil
}
