package calendar

import (
	"benritz/fixedincome/internal/date"
)

// ukHoliday follows the UK settlement calendar. Rules are checked in order
// and the first match names the holiday; years with exceptional dates are
// excluded from the generic weekday rules they replace.
func ukHoliday(d date.Date) (string, bool) {
	wd := d.Weekday()
	if wd.IsWeekend() {
		return "Weekend", true
	}

	year, month, day := d.Date()

	if name, ok := ukBankHoliday(year, month, day, wd); ok {
		return name, true
	}

	easterMonday := d.EasterMonday(false)

	if date.DaysBetween(d, easterMonday) == 3 {
		return "Good Friday", true
	}

	if d == easterMonday {
		return "Easter Monday", true
	}

	// New Year's Day, moved to Monday when it falls on a weekend
	if month == date.January && (day == 1 || ((day == 2 || day == 3) && wd == date.Monday)) {
		return "New Year's Day", true
	}

	// Christmas Day and Boxing Day, moved to Monday or Tuesday when either falls on a weekend
	if month == date.December {
		if day == 25 || (day == 27 && (wd == date.Monday || wd == date.Tuesday)) {
			return "Christmas Day", true
		}

		if day == 26 || (day == 28 && (wd == date.Monday || wd == date.Tuesday)) {
			return "Boxing Day", true
		}
	}

	if year == 1999 && month == date.December && day == 31 {
		return "Millennium Celebrations", true
	}

	return "", false
}

func ukBankHoliday(year int, month date.Month, day int, wd date.Weekday) (string, bool) {
	// First Monday of May, moved to 8 May in 1995 and 2020 for VE day
	if month == date.May {
		if year == 1995 || year == 2020 {
			if day == 8 {
				return "Early May Bank Holiday", true
			}
		} else if day <= 7 && wd == date.Monday {
			return "Early May Bank Holiday", true
		}
	}

	// Last Monday of May, moved into June for the 2002, 2012 and 2022 jubilees
	switch year {
	case 2002:
		if month == date.June && (day == 3 || day == 4) {
			return "Spring Bank Holiday", true
		}
	case 2012:
		if month == date.June && (day == 4 || day == 5) {
			return "Spring Bank Holiday", true
		}
	case 2022:
		if month == date.June && (day == 2 || day == 3) {
			return "Spring Bank Holiday", true
		}
	default:
		if month == date.May && day >= 25 && wd == date.Monday {
			return "Spring Bank Holiday", true
		}
	}

	// Last Monday of August
	if month == date.August && day >= 25 && wd == date.Monday {
		return "Summer Bank Holiday", true
	}

	switch {
	case year == 2011 && month == date.April && day == 29:
		return "Royal Wedding Bank Holiday", true
	case year == 2022 && month == date.September && day == 19:
		return "The Queen's Funeral Bank Holiday", true
	case year == 2023 && month == date.May && day == 8:
		return "King Charles III Coronation Bank Holiday", true
	}

	return "", false
}
