package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the textual format used for every shot date
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// IsValidDate reports whether s is a YYYY-MM-DD string naming a real calendar day.
// The fields are parsed and rebuilt through time.Date; normalisation (2024-02-30
// becoming 2024-03-01) makes the round trip fail.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Today returns the current local calendar date
func Today() string {
	return TodayFrom(time.Now)
}

// TodayFrom formats the local date reported by clock
func TodayFrom(clock Clock) string {
	return clock().In(time.Local).Format(DateLayout)
}

// MinusDays returns the date n days before date, computed in UTC
func MinusDays(date string, n int) (string, error) {
	t, err := parseUTC("date", date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -n).Format(DateLayout), nil
}

// DaysBetween returns b - a in whole days. Both dates are taken at UTC midnight
// and the difference is floored, so the result never carries a partial day.
func DaysBetween(a, b string) (int, error) {
	ta, err := parseUTC("from", a)
	if err != nil {
		return 0, err
	}
	tb, err := parseUTC("to", b)
	if err != nil {
		return 0, err
	}

	const secondsPerDay = 24 * 60 * 60
	diff := tb.Unix() - ta.Unix()
	days := diff / secondsPerDay
	if diff%secondsPerDay != 0 && diff < 0 {
		days--
	}
	return int(days), nil
}

// ValidateRange checks that both ends are valid dates and from <= to
func ValidateRange(from, to string) error {
	if !IsValidDate(from) {
		return NewValidationError("from", fmt.Sprintf("invalid date %q, use YYYY-MM-DD", from))
	}
	if !IsValidDate(to) {
		return NewValidationError("to", fmt.Sprintf("invalid date %q, use YYYY-MM-DD", to))
	}
	// YYYY-MM-DD sorts lexically in calendar order
	if from > to {
		return NewValidationError("from", fmt.Sprintf("range start %s is after end %s", from, to))
	}
	return nil
}

func parseUTC(field, s string) (time.Time, error) {
	if !IsValidDate(s) {
		return time.Time{}, NewValidationError(field, fmt.Sprintf("invalid date %q, use YYYY-MM-DD", s))
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, NewValidationError(field, err.Error())
	}
	return t, nil
}
