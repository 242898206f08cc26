// Package date implements a serial-number civil date covering
// 1 January 1900 to 31 December 2199 with calendar arithmetic
// suited to financial schedules.
package date

import (
	"benritz/fixedincome/internal/errs"
	"fmt"
	"time"
)

const (
	// MinSerial is 1 January 1900.
	MinSerial = 0
	// MaxSerial is 31 December 2199.
	MaxSerial = 109572

	MinYear = 1900
	MaxYear = 2199

	// Layout is the textual form used by Parse and String.
	Layout = "2006-01-02"
)

var (
	MinDate = Date{serial: MinSerial}
	MaxDate = Date{serial: MaxSerial}
)

// Date is a day offset from 1 January 1900. The zero value is MinDate.
type Date struct {
	serial int
}

func yearError(year int) error {
	return errs.NewArgumentRange("year", MinYear, MaxYear, int64(year))
}

// FromParts builds a date from a day of month, month and year.
func FromParts(day int, month Month, year int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearError(year)
	}

	if month < January || month > December {
		return Date{}, errs.NewArgumentRange("month", int64(January), int64(December), int64(month))
	}

	leap := IsLeapYear(year)
	days := month.Days(leap)

	if day < 1 || day > days {
		err := errs.NewArgumentRange("day", 1, int64(days), int64(day))
		err.Detail = fmt.Sprintf("%s %d has %d days", month, year, days)
		return Date{}, err
	}

	return Date{serial: yearOffsets[year-MinYear] + monthOffset(month, leap) + day - 1}, nil
}

// FromOrdinal builds a date from a year and a 1-based day of the year.
func FromOrdinal(year, dayOfYear int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearError(year)
	}

	days := yearLength(year)
	if dayOfYear < 1 || dayOfYear > days {
		err := errs.NewArgumentRange("day_of_year", 1, int64(days), int64(dayOfYear))
		err.Detail = fmt.Sprintf("%d has %d days", year, days)
		return Date{}, err
	}

	return FromSerial(yearOffsets[year-MinYear] + dayOfYear - 1)
}

func FromSerial(serial int) (Date, error) {
	if serial < MinSerial || serial > MaxSerial {
		return Date{}, errs.NewArgumentRange("serial_number", MinSerial, MaxSerial, int64(serial))
	}
	return Date{serial: serial}, nil
}

// FromTime converts the calendar day of t, in t's location.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return FromParts(d, Month(m), y)
}

// Parse reads a date in the "2006-01-02" layout.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 == 0 {
		return year%400 == 0
	}
	return true
}

func yearLength(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// EasterMonday returns Easter Monday of year, using the Orthodox
// (Julian) reckoning when orthodox is set.
func EasterMonday(year int, orthodox bool) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, yearError(year)
	}

	if orthodox {
		return FromOrdinal(year, orthodoxEasterMondays[year-MinYear])
	}
	return FromOrdinal(year, westernEasterMondays[year-MinYear])
}

func monthOffset(m Month, leap bool) int {
	if leap {
		return leapMonthOffsets[m-1]
	}
	return monthOffsets[m-1]
}

func (d Date) Serial() int {
	return d.serial
}

func (d Date) Year() int {
	y := d.serial/365 + MinYear
	for d.serial < yearOffsets[y-MinYear] {
		y--
	}
	return y
}

// dayOfYear returns the 0-based day within the year.
func (d Date) dayOfYear(year int) int {
	return d.serial - yearOffsets[year-MinYear]
}

// DayOfYear returns the day of the year, with 1 January as 1.
func (d Date) DayOfYear() int {
	return d.dayOfYear(d.Year()) + 1
}

// Date returns the year, month and day in one decode.
func (d Date) Date() (year int, month Month, day int) {
	year = d.Year()
	leap := IsLeapYear(year)
	doy := d.dayOfYear(year)

	m := doy/30 + 1
	if m > int(December) {
		m = int(December)
	}
	for m > int(January) && monthOffset(Month(m), leap) > doy {
		m--
	}
	for m < int(December) && monthOffset(Month(m+1), leap) <= doy {
		m++
	}

	month = mustMonth(m)
	day = doy - monthOffset(month, leap) + 1
	return year, month, day
}

func (d Date) Month() Month {
	_, m, _ := d.Date()
	return m
}

func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// Weekday is derived from the serial; 1 January 1900 was a Monday.
func (d Date) Weekday() Weekday {
	return Weekday(d.serial % 7)
}

func (d Date) IsLeap() bool {
	return IsLeapYear(d.Year())
}

// EasterMonday returns Easter Monday of the date's year.
func (d Date) EasterMonday(orthodox bool) Date {
	em, err := EasterMonday(d.Year(), orthodox)
	if err != nil {
		panic(err)
	}
	return em
}

// Increment moves the date forward by p. Month and year periods keep the
// day of month, clamped to the length of the target month.
func (d Date) Increment(p Period) (Date, error) {
	return d.add(p, 1)
}

// Decrement moves the date backward by p, clamping like Increment.
func (d Date) Decrement(p Period) (Date, error) {
	return d.add(p, -1)
}

func (d Date) add(p Period, sign int) (Date, error) {
	n := sign * p.Amount

	switch p.Unit {
	case UnitDays:
		return FromSerial(d.serial + n)
	case UnitMonths:
		return d.addMonths(n)
	case UnitYears:
		return d.addMonths(12 * n)
	}

	return Date{}, fmt.Errorf("unknown period unit %v", p.Unit)
}

func (d Date) addMonths(n int) (Date, error) {
	year, month, day := d.Date()

	idx := year*12 + int(month) - 1 + n
	y := idx / 12
	if y < MinYear || y > MaxYear {
		return Date{}, yearError(y)
	}

	m := Month(idx%12 + 1)
	day = min(day, m.Days(IsLeapYear(y)))

	return FromParts(day, m, y)
}

func (d Date) NextDay() (Date, error) {
	return d.Increment(Days(1))
}

func (d Date) PreviousDay() (Date, error) {
	return d.Decrement(Days(1))
}

func (d Date) NextMonth() (Date, error) {
	return d.Increment(Months(1))
}

func (d Date) PreviousMonth() (Date, error) {
	return d.Decrement(Months(1))
}

func (d Date) NextYear() (Date, error) {
	return d.Increment(Years(1))
}

func (d Date) PreviousYear() (Date, error) {
	return d.Decrement(Years(1))
}

// Sub returns the absolute number of days between d and o.
func (d Date) Sub(o Date) Period {
	n := d.serial - o.serial
	if n < 0 {
		n = -n
	}
	return Days(uint32(n))
}

// DaysBetween returns the signed number of days from from to to.
func DaysBetween(from, to Date) int {
	return to.serial - from.serial
}

func (d Date) Compare(o Date) int {
	switch {
	case d.serial < o.serial:
		return -1
	case d.serial > o.serial:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool {
	return d.serial < o.serial
}

func (d Date) After(o Date) bool {
	return d.serial > o.serial
}

// Time returns midnight UTC on the date.
func (d Date) Time() time.Time {
	y, m, day := d.Date()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	y, m, day := d.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), day)
}
