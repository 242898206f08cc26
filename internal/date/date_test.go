package date

import (
	"benritz/fixedincome/internal/errs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, day int, month Month, year int) Date {
	t.Helper()
	d, err := FromParts(day, month, year)
	require.NoError(t, err)
	return d
}

func TestSerialRoundTrip(t *testing.T) {
	epoch := time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	prev := MinDate.Weekday().Previous()
	for s := MinSerial; s <= MaxSerial; s++ {
		d, err := FromSerial(s)
		require.NoError(t, err)
		require.Equal(t, s, d.Serial())

		y, m, day := d.Date()
		back, err := FromParts(day, m, y)
		require.NoError(t, err)
		require.Equal(t, d, back, "serial %d", s)

		want := epoch.AddDate(0, 0, s)
		require.Equal(t, want, d.Time(), "serial %d", s)
		require.Equal(t, (int(want.Weekday())+6)%7, int(d.Weekday()), "serial %d", s)

		require.Equal(t, prev.Next(), d.Weekday())
		prev = d.Weekday()
	}
}

func TestBounds(t *testing.T) {
	assert.Equal(t, "1900-01-01", MinDate.String())
	assert.Equal(t, "2199-12-31", MaxDate.String())
	assert.Equal(t, Monday, MinDate.Weekday())
	assert.Equal(t, Tuesday, MaxDate.Weekday())

	_, err := MaxDate.NextDay()
	ar, narrowErr := errs.AsArgumentRange(err)
	require.NoError(t, narrowErr)
	assert.Equal(t, "serial_number", ar.Name)
	assert.EqualValues(t, MaxSerial+1, ar.Value)

	_, err = MinDate.PreviousDay()
	require.Error(t, err)

	_, err = FromSerial(-1)
	require.Error(t, err)
}

func TestFromPartsRangeErrors(t *testing.T) {
	tests := []struct {
		name   string
		day    int
		month  Month
		year   int
		field  string
		max    int64
		detail string
	}{
		{"year too low", 1, January, 1899, "year", MaxYear, ""},
		{"year too high", 1, January, 2200, "year", MaxYear, ""},
		{"bad month", 1, Month(13), 2000, "month", 12, ""},
		{"day zero", 0, March, 2000, "day", 31, "March 2000 has 31 days"},
		{"february common year", 29, February, 2005, "day", 28, "February 2005 has 28 days"},
		{"april 31", 31, April, 2024, "day", 30, "April 2024 has 30 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromParts(tt.day, tt.month, tt.year)
			ar, narrowErr := errs.AsArgumentRange(err)
			require.NoError(t, narrowErr)
			assert.Equal(t, tt.field, ar.Name)
			assert.Equal(t, tt.max, ar.Max)
			assert.Equal(t, tt.detail, ar.Detail)
		})
	}

	d, err := FromParts(29, February, 2000)
	require.NoError(t, err)
	assert.Equal(t, 60, d.DayOfYear())
}

func TestFromOrdinal(t *testing.T) {
	d, err := FromOrdinal(2024, 92)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 1, April, 2024), d)

	d, err = FromOrdinal(2023, 365)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 31, December, 2023), d)

	_, err = FromOrdinal(2023, 366)
	require.Error(t, err)

	_, err = FromOrdinal(2024, 0)
	require.Error(t, err)
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2004))
	assert.False(t, IsLeapYear(2023))
	assert.False(t, IsLeapYear(2100))
}

func TestEasterMonday(t *testing.T) {
	tests := []struct {
		year     int
		orthodox bool
		want     string
	}{
		{1900, false, "1900-04-16"},
		{2011, false, "2011-04-25"},
		{2024, false, "2024-04-01"},
		{2025, false, "2025-04-21"},
		{2024, true, "2024-05-06"},
		{2025, true, "2025-04-21"},
	}

	for _, tt := range tests {
		em, err := EasterMonday(tt.year, tt.orthodox)
		require.NoError(t, err)
		assert.Equal(t, tt.want, em.String())
		assert.Equal(t, Monday, em.Weekday())
	}

	goodFriday, err := mustDate(t, 10, June, 2024).EasterMonday(false).Decrement(Days(3))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-29", goodFriday.String())
	assert.Equal(t, Friday, goodFriday.Weekday())

	_, err = EasterMonday(2200, false)
	require.Error(t, err)
}

func TestEasterMondayIsAlwaysMonday(t *testing.T) {
	for y := MinYear; y <= MaxYear; y++ {
		for _, orthodox := range []bool{false, true} {
			em, err := EasterMonday(y, orthodox)
			require.NoError(t, err)
			require.Equal(t, Monday, em.Weekday(), "year %d orthodox %t", y, orthodox)
		}
	}
}

func TestIncrementDecrement(t *testing.T) {
	tests := []struct {
		name   string
		from   Date
		period Period
		up     bool
		want   string
	}{
		{"plus days", mustDate(t, 28, February, 2024), Days(2), true, "2024-03-01"},
		{"month clamps", mustDate(t, 31, March, 2024), Months(1), true, "2024-04-30"},
		{"month into february", mustDate(t, 31, January, 2023), Months(1), true, "2023-02-28"},
		{"month over year end", mustDate(t, 15, November, 2023), Months(3), true, "2024-02-15"},
		{"leap day plus year", mustDate(t, 29, February, 2024), Years(1), true, "2025-02-28"},
		{"leap day plus four years", mustDate(t, 29, February, 2024), Years(4), true, "2028-02-29"},
		{"minus month clamps", mustDate(t, 31, March, 2024), Months(1), false, "2024-02-29"},
		{"minus month over year start", mustDate(t, 10, January, 2024), Months(1), false, "2023-12-10"},
		{"minus days", mustDate(t, 1, March, 2023), Days(1), false, "2023-02-28"},
		{"minus years", mustDate(t, 26, May, 2009), Years(3), false, "2006-05-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got Date
				err error
			)
			if tt.up {
				got, err = tt.from.Increment(tt.period)
			} else {
				got, err = tt.from.Decrement(tt.period)
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestIncrementOutOfRange(t *testing.T) {
	_, err := mustDate(t, 15, December, 2199).NextMonth()
	ar, narrowErr := errs.AsArgumentRange(err)
	require.NoError(t, narrowErr)
	assert.Equal(t, "year", ar.Name)
	assert.EqualValues(t, 2200, ar.Value)

	_, err = mustDate(t, 15, June, 1900).PreviousYear()
	require.Error(t, err)
}

func TestSub(t *testing.T) {
	a := mustDate(t, 1, January, 2024)
	b := mustDate(t, 1, April, 2024)

	assert.Equal(t, Days(91), b.Sub(a))
	assert.Equal(t, Days(91), a.Sub(b))
	assert.Equal(t, 91, DaysBetween(a, b))
	assert.Equal(t, -91, DaysBetween(b, a))
	assert.True(t, a.Before(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestParse(t *testing.T) {
	d, err := Parse("2023-12-25")
	require.NoError(t, err)
	assert.Equal(t, Monday, d.Weekday())
	assert.Equal(t, December, d.Month())
	assert.Equal(t, 25, d.Day())
	assert.Equal(t, 2023, d.Year())

	_, err = Parse("2023-02-30")
	require.Error(t, err)

	_, err = Parse("1899-12-31")
	require.Error(t, err)
}

func TestMonthAndWeekday(t *testing.T) {
	assert.Equal(t, January, December.Next())
	assert.Equal(t, December, January.Previous())
	assert.Equal(t, March, November.Add(4))
	assert.Equal(t, October, January.Add(-3))
	assert.Equal(t, 29, February.Days(true))
	assert.Equal(t, "September", September.String())

	_, err := MonthFromInt(0)
	require.Error(t, err)

	assert.Equal(t, Monday, Sunday.Next())
	assert.Equal(t, Sunday, Monday.Previous())
	assert.True(t, Saturday.IsWeekend())
	assert.True(t, Friday.IsWeekday())

	_, err = WeekdayFromInt(7)
	require.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"30D", Days(30)},
		{"6m", Months(6)},
		{" 12M ", Months(12)},
		{"1Y", Years(1)},
		{"0D", Days(0)},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "M", "6", "6W", "-1M", "x6M"} {
		_, err := ParsePeriod(in)
		assert.ErrorIs(t, err, ErrInvalidPeriod, in)
	}

	_, err := ParsePeriod("70000M")
	r, err := errs.AsArgumentRange(err)
	require.NoError(t, err)
	assert.Equal(t, int64(70000), r.Value)
}
