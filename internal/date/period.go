package date

import (
	"benritz/fixedincome/internal/errs"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidPeriod = fmt.Errorf("invalid period")

// Unit of a Period.
type Unit int

const (
	UnitDays Unit = iota
	UnitMonths
	UnitYears
)

func (u Unit) String() string {
	switch u {
	case UnitDays:
		return "D"
	case UnitMonths:
		return "M"
	case UnitYears:
		return "Y"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Period is a calendar offset applied to a Date.
type Period struct {
	Unit   Unit
	Amount int
}

func Days(n uint32) Period {
	return Period{Unit: UnitDays, Amount: int(n)}
}

func Months(n uint16) Period {
	return Period{Unit: UnitMonths, Amount: int(n)}
}

func Years(n uint16) Period {
	return Period{Unit: UnitYears, Amount: int(n)}
}

// WholeDays returns the number of days in a day period. Month and year
// periods have no fixed length and report false.
func (p Period) WholeDays() (int, bool) {
	if p.Unit != UnitDays {
		return 0, false
	}
	return p.Amount, true
}

func (p Period) IsZero() bool {
	return p.Amount == 0
}

func (p Period) String() string {
	return fmt.Sprintf("%d%s", p.Amount, p.Unit)
}

// ParsePeriod reads a period written as an amount followed by a unit, e.g.
// "30D", "6M" or "1Y". Units are case insensitive.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}

	n, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}

	switch s[len(s)-1] {
	case 'D':
		return Days(uint32(n)), nil
	case 'M', 'Y':
		if n > math.MaxUint16 {
			return Period{}, errs.NewArgumentRange("amount", 0, math.MaxUint16, int64(n))
		}
		if s[len(s)-1] == 'M' {
			return Months(uint16(n)), nil
		}
		return Years(uint16(n)), nil
	}

	return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}
