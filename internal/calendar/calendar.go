// Package calendar determines holidays and business days.
package calendar

import (
	"benritz/fixedincome/internal/date"
	"fmt"
	"strings"
)

// Calendar selects a set of holiday rules.
type Calendar int

const (
	// Basic observes weekends, New Year's Day and Christmas Day.
	Basic Calendar = iota
	// UnitedKingdom observes UK settlement holidays, including historical
	// one-off bank holidays.
	UnitedKingdom
)

var ErrUnknownCalendar = fmt.Errorf("unknown calendar")

func ParseCalendar(s string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "uk", "gb", "unitedkingdom", "united kingdom", "united-kingdom":
		return UnitedKingdom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCalendar, s)
}

func (c Calendar) Name() string {
	switch c {
	case Basic:
		return "Basic Calendar"
	case UnitedKingdom:
		return "United Kingdom"
	}
	return fmt.Sprintf("Calendar(%d)", int(c))
}

func (c Calendar) String() string {
	switch c {
	case Basic:
		return "Basic"
	}
	return c.Name()
}

// Holiday returns the name of the holiday falling on d, if any.
// Weekends are reported as "Weekend".
func (c Calendar) Holiday(d date.Date) (string, bool) {
	switch c {
	case Basic:
		return basicHoliday(d)
	case UnitedKingdom:
		return ukHoliday(d)
	}
	panic(fmt.Sprintf("calendar: unhandled calendar %d", int(c)))
}

func (c Calendar) IsBusinessDay(d date.Date) bool {
	_, ok := c.Holiday(d)
	return !ok
}

func (c Calendar) IsHoliday(d date.Date) bool {
	return !c.IsBusinessDay(d)
}

// Holidays lists every holiday between from and to inclusive, in date order.
func (c Calendar) Holidays(from, to date.Date) []date.Date {
	holidays := []date.Date{}

	for d := from; !d.After(to); {
		if c.IsHoliday(d) {
			holidays = append(holidays, d)
		}

		if d == to {
			break
		}

		next, err := d.NextDay()
		if err != nil {
			// d < to, so the next day is always in range
			panic(err)
		}
		d = next
	}

	return holidays
}

func basicHoliday(d date.Date) (string, bool) {
	if d.Weekday().IsWeekend() {
		return "Weekend", true
	}

	_, month, day := d.Date()

	if day == 1 && month == date.January {
		return "New Year's Day", true
	}

	if day == 25 && month == date.December {
		return "Christmas Day", true
	}

	return "", false
}
