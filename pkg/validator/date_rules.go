package validator

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DaysPerYear is the average year length used by the approximate age rules.
const DaysPerYear = 365.25

const secondsPerDay = 24 * 60 * 60

// dateLayouts lists the accepted date spellings, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate parses s using the first matching layout from dateLayouts.
// Surrounding whitespace is ignored. Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// CalendarDate drops the time of day and offset of t, keeping the year,
// month and day as seen in t's own location, at UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ApproxAge returns the whole number of DaysPerYear-long years between the
// calendar dates of birth and now. The difference is absolute, so a birth
// date after now yields a positive age as well. The actual birthday within
// the current year is not considered.
func ApproxAge(birth, now time.Time) int {
	seconds := CalendarDate(now).Unix() - CalendarDate(birth).Unix()
	if seconds < 0 {
		seconds = -seconds
	}
	days := seconds / secondsPerDay
	return int(math.Floor(float64(days) / DaysPerYear))
}

// MinApproxAge parses value with ParseDate and validates that ApproxAge
// relative to now is at least minAge. An unparsable value fails the rule.
func MinApproxAge(field, value string, now time.Time, minAge int) Rule {
	return Rule{
		Check: func() bool {
			birth, err := ParseDate(value)
			if err != nil {
				return false
			}
			return ApproxAge(birth, now) >= minAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("minimum age of %d years required", minAge),
			TranslationKey: "validation.min_age",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
		},
	}
}
