package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilNext(t *testing.T) {
	cases := []struct {
		name     string
		birthday time.Time
		now      time.Time
		want     int
	}{
		{"today", date(1990, time.May, 10), time.Date(2025, time.May, 10, 15, 30, 0, 0, time.UTC), 0},
		{"tomorrow", date(1990, time.May, 11), date(2025, time.May, 10), 1},
		{"yesterday wraps", date(1990, time.May, 9), date(2025, time.May, 10), 364},
		{"dec 31 from jan 1", date(1985, time.December, 31), date(2025, time.January, 1), 364},
		{"dec 31 from jan 1 leap year", date(1985, time.December, 31), date(2024, time.January, 1), 365},
		{"jan 1 from dec 31", date(2000, time.January, 1), date(2025, time.December, 31), 1},
		{"feb 29 on non-leap mar 1", date(2000, time.February, 29), date(2025, time.March, 1), 0},
		{"feb 29 from non-leap feb 28", date(2000, time.February, 29), date(2025, time.February, 28), 1},
		{"feb 29 on leap day", date(2000, time.February, 29), date(2024, time.February, 29), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysUntilNext(tc.birthday, tc.now))
		})
	}
}

func TestDaysUntilNext_UsesCallerCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2025-05-09 20:00 UTC is already May 10 in UTC+9.
	now := time.Date(2025, time.May, 9, 20, 0, 0, 0, time.UTC).In(loc)

	assert.Equal(t, 0, DaysUntilNext(date(1990, time.May, 10), now))
}

func TestAnniversariesOn(t *testing.T) {
	assert.Equal(t, []MonthDay{{time.June, 15}}, AnniversariesOn(date(2025, time.June, 15)))
	assert.Equal(t,
		[]MonthDay{{time.March, 1}, {time.February, 29}},
		AnniversariesOn(date(2025, time.March, 1)))
	assert.Equal(t, []MonthDay{{time.March, 1}}, AnniversariesOn(date(2024, time.March, 1)))
}

func TestAnniversariesAgreeWithDaysUntilNext(t *testing.T) {
	birthdays := []time.Time{
		date(2000, time.February, 29),
		date(1999, time.March, 1),
		date(1999, time.February, 28),
		date(1970, time.December, 31),
	}

	for _, year := range []int{2023, 2024, 2100} {
		for d := date(year, time.January, 1); d.Year() == year; d = d.AddDate(0, 0, 1) {
			celebrated := map[MonthDay]bool{}
			for _, md := range AnniversariesOn(d) {
				celebrated[md] = true
			}
			for _, b := range birthdays {
				isToday := DaysUntilNext(b, d) == 0
				require.Equal(t, isToday, celebrated[Of(b)], "birthday %s on %s", b.Format("01-02"), d.Format("2006-01-02"))
			}
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("1990-05-10")
	require.NoError(t, err)
	assert.Equal(t, date(1990, time.May, 10), got)

	got, err = Parse("1990-05-10T23:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, date(1990, time.May, 10), got, "keeps the calendar date as written")

	got, err = Parse(" 2001-12-31T00:00:00.000Z ")
	require.NoError(t, err)
	assert.Equal(t, date(2001, time.December, 31), got)

	for _, bad := range []string{"", "   ", "10/05/1990", "1990-13-01", "tomorrow"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestIsLeap(t *testing.T) {
	assert.True(t, IsLeap(2024))
	assert.True(t, IsLeap(2000))
	assert.False(t, IsLeap(1900))
	assert.False(t, IsLeap(2025))
}
