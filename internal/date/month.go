package date

import (
	"benritz/fixedincome/internal/errs"
	"strconv"
)

// Month of the year, January = 1.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthFromInt validates a 1-based month number.
func MonthFromInt(m int) (Month, error) {
	if m < int(January) || m > int(December) {
		return 0, errs.NewArgumentRange("month", int64(January), int64(December), int64(m))
	}
	return Month(m), nil
}

// mustMonth decodes months computed internally, which are always in range.
func mustMonth(m int) Month {
	month, err := MonthFromInt(m)
	if err != nil {
		panic(err)
	}
	return month
}

// Days returns the number of days in the month.
func (m Month) Days(leap bool) int {
	switch m {
	case February:
		if leap {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

func (m Month) Next() Month {
	return m.Add(1)
}

func (m Month) Previous() Month {
	return m.Add(-1)
}

// Add returns the month n months after m, wrapping around December.
// A negative n moves backwards.
func (m Month) Add(n int) Month {
	i := (int(m) - 1 + n) % 12
	if i < 0 {
		i += 12
	}
	return Month(i + 1)
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}
