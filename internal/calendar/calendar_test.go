package calendar

import (
	"benritz/fixedincome/internal/date"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) date.Date {
	t.Helper()
	v, err := date.Parse(s)
	require.NoError(t, err)
	return v
}

func TestUnitedKingdomHolidays(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2023-12-25", "Christmas Day"},
		{"2023-12-26", "Boxing Day"},
		{"2023-05-01", "Early May Bank Holiday"},
		{"2023-05-08", "King Charles III Coronation Bank Holiday"},
		{"2023-05-29", "Spring Bank Holiday"},
		{"2023-08-28", "Summer Bank Holiday"},
		{"2023-01-02", "New Year's Day"},
		{"2023-04-07", "Good Friday"},
		{"2023-04-10", "Easter Monday"},
		{"2024-03-29", "Good Friday"},
		{"2024-04-01", "Easter Monday"},
		{"2023-07-01", "Weekend"},
		{"1995-05-08", "Early May Bank Holiday"},
		{"2020-05-08", "Early May Bank Holiday"},
		{"2002-06-03", "Spring Bank Holiday"},
		{"2002-06-04", "Spring Bank Holiday"},
		{"2012-06-04", "Spring Bank Holiday"},
		{"2012-06-05", "Spring Bank Holiday"},
		{"2022-06-02", "Spring Bank Holiday"},
		{"2022-06-03", "Spring Bank Holiday"},
		{"2011-04-29", "Royal Wedding Bank Holiday"},
		{"2022-09-19", "The Queen's Funeral Bank Holiday"},
		{"1999-12-31", "Millennium Celebrations"},
		// Christmas on Saturday, Boxing Day on Sunday
		{"2021-12-27", "Christmas Day"},
		{"2021-12-28", "Boxing Day"},
		// Christmas on Sunday
		{"2022-12-26", "Boxing Day"},
		{"2022-12-27", "Christmas Day"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			name, ok := UnitedKingdom.Holiday(d(t, tt.date))
			require.True(t, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestUnitedKingdomBusinessDays(t *testing.T) {
	for _, s := range []string{
		"2023-07-04",
		"1995-05-01", // early May moved to the 8th
		"2020-05-04",
		"2002-05-27", // spring holiday moved to June
		"2012-05-28",
		"2022-05-30",
		"2000-12-29",
		"2024-04-02",
	} {
		name, ok := UnitedKingdom.Holiday(d(t, s))
		assert.False(t, ok, "%s reported as %q", s, name)
		assert.True(t, UnitedKingdom.IsBusinessDay(d(t, s)), s)
	}
}

func TestBasicCalendar(t *testing.T) {
	name, ok := Basic.Holiday(d(t, "2024-12-25"))
	require.True(t, ok)
	assert.Equal(t, "Christmas Day", name)

	name, ok = Basic.Holiday(d(t, "2024-01-01"))
	require.True(t, ok)
	assert.Equal(t, "New Year's Day", name)

	// no observance shift or bank holidays
	assert.True(t, Basic.IsBusinessDay(d(t, "2024-12-26")))
	assert.True(t, Basic.IsBusinessDay(d(t, "2024-04-01")))

	name, _ = Basic.Holiday(d(t, "2024-06-08"))
	assert.Equal(t, "Weekend", name)

	assert.Equal(t, "Basic Calendar", Basic.Name())
	assert.Equal(t, "United Kingdom", UnitedKingdom.Name())
}

func TestHolidays(t *testing.T) {
	got := UnitedKingdom.Holidays(d(t, "2023-12-20"), d(t, "2024-01-02"))

	var want []date.Date
	for _, s := range []string{
		"2023-12-23", "2023-12-24", "2023-12-25", "2023-12-26",
		"2023-12-30", "2023-12-31", "2024-01-01",
	} {
		want = append(want, d(t, s))
	}

	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b date.Date) bool { return a == b })); diff != "" {
		t.Errorf("Holidays() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, UnitedKingdom.Holidays(d(t, "2024-01-02"), d(t, "2023-12-20")))

	tail := Basic.Holidays(d(t, "2199-12-25"), date.MaxDate)
	assert.Len(t, tail, 3) // Christmas (Wednesday) and the weekend of the 28th
}

func TestHolidaysIsDeterministic(t *testing.T) {
	from, to := d(t, "1990-01-01"), d(t, "2030-12-31")

	a := UnitedKingdom.Holidays(from, to)
	b := UnitedKingdom.Holidays(from, to)
	assert.Equal(t, a, b)

	for _, h := range a {
		assert.False(t, UnitedKingdom.IsBusinessDay(h))
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		date string
		adj  Adjustment
		want string
	}{
		{"business day untouched", "2023-07-04", ModifiedFollowing, "2023-07-04"},
		{"unadjusted", "2023-12-25", Unadjusted, "2023-12-25"},
		{"following over christmas", "2023-12-25", Following, "2023-12-27"},
		{"preceding over christmas", "2023-12-25", Preceding, "2023-12-22"},
		{"modified following stays in month", "2024-03-30", ModifiedFollowing, "2024-03-28"},
		{"following leaves month", "2024-03-30", Following, "2024-04-02"},
		{"modified preceding stays in month", "2023-07-01", ModifiedPreceding, "2023-07-03"},
		{"preceding leaves month", "2023-07-01", Preceding, "2023-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnitedKingdom.Adjust(d(t, tt.date), tt.adj)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParse(t *testing.T) {
	c, err := ParseCalendar("UK")
	require.NoError(t, err)
	assert.Equal(t, UnitedKingdom, c)

	_, err = ParseCalendar("mars")
	assert.ErrorIs(t, err, ErrUnknownCalendar)

	a, err := ParseAdjustment("Modified Following")
	require.NoError(t, err)
	assert.Equal(t, ModifiedFollowing, a)

	_, err = ParseAdjustment("sideways")
	assert.ErrorIs(t, err, ErrUnknownAdjustment)
}
