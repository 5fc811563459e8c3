// Package dates holds the calendar arithmetic shared by the upcoming-birthday
// listing and the daily reminder job. Birthdays are stored at UTC midnight, so
// only their month and day are meaningful here.
//
// A Feb 29 birthday falls on Mar 1 in non-leap years. DaysUntilNext and
// AnniversariesOn agree on that rule: DaysUntilNext(b, now) == 0 exactly when
// b's month/day is in AnniversariesOn(now).
package dates

import (
	"errors"
	"strings"
	"time"
)

const day = 24 * time.Hour

// ErrInvalidDate is returned by Parse for input in no accepted layout.
var ErrInvalidDate = errors.New("invalid date")

var layouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// MonthDay is a calendar day without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// Of returns the month/day of t as seen in UTC.
func Of(t time.Time) MonthDay {
	t = t.UTC()
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

// Parse accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the calendar
// date as written, at UTC midnight.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Midnight(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Midnight drops the clock from t, keeping t's own calendar fields.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntilNext returns the whole days from now's calendar date to the next
// occurrence of birthday's month/day, 0 when it is today.
func DaysUntilNext(birthday, now time.Time) int {
	today := Midnight(now)
	md := Of(birthday)

	next := occurrence(today.Year(), md)
	if next.Before(today) {
		next = occurrence(today.Year()+1, md)
	}
	return int(next.Sub(today) / day)
}

// AnniversariesOn lists the month/day values celebrated on now's calendar date.
func AnniversariesOn(now time.Time) []MonthDay {
	out := []MonthDay{{Month: now.Month(), Day: now.Day()}}
	if now.Month() == time.March && now.Day() == 1 && !IsLeap(now.Year()) {
		out = append(out, MonthDay{Month: time.February, Day: 29})
	}
	return out
}

// IsLeap reports whether year has a Feb 29.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// occurrence relies on time.Date normalising Feb 29 to Mar 1.
func occurrence(year int, md MonthDay) time.Time {
	return time.Date(year, md.Month, md.Day, 0, 0, 0, 0, time.UTC)
}
