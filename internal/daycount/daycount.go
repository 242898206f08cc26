// Package daycount converts date spans into year fractions.
package daycount

import (
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/errs"
	"fmt"
	"strings"
)

// Convention is a day count convention.
type Convention int

const (
	Actual360 Convention = iota
	Actual365Fixed
	// ActualActual divides the actual day count by the length of the start
	// date's year. It is exact only for spans within a single year.
	ActualActual
	// Thirty360 is the 30/360 US bond basis (2006 ISDA Definitions 4.16(f)).
	Thirty360
)

var ErrUnknownConvention = fmt.Errorf("unknown day count convention")

func ParseConvention(s string) (Convention, error) {
	switch strings.ToUpper(strings.NewReplacer(" ", "", "_", "").Replace(s)) {
	case "ACT/360", "ACTUAL/360", "ACTUAL360":
		return Actual360, nil
	case "ACT/365F", "ACT/365", "ACTUAL/365F", "ACTUAL/365FIXED", "ACTUAL365FIXED":
		return Actual365Fixed, nil
	case "ACT/ACT", "ACTUAL/ACTUAL", "ACTUALACTUAL":
		return ActualActual, nil
	case "30/360", "THIRTY360":
		return Thirty360, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
}

func (c Convention) String() string {
	switch c {
	case Actual360:
		return "Actual / 360"
	case Actual365Fixed:
		return "Actual / 365F"
	case ActualActual:
		return "Actual / Actual"
	case Thirty360:
		return "30 / 360"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// YearFrac returns the year fraction from from to to. It fails with
// errs.ErrInvalidDate when from is after to.
func (c Convention) YearFrac(from, to date.Date) (float64, error) {
	if from.After(to) {
		return 0, fmt.Errorf("%w: year fraction from %s to %s", errs.ErrInvalidDate, from, to)
	}

	days := float64(date.DaysBetween(from, to))

	switch c {
	case Actual360:
		return days / 360, nil
	case Actual365Fixed:
		return days / 365, nil
	case ActualActual:
		if from.IsLeap() {
			return days / 366, nil
		}
		return days / 365, nil
	case Thirty360:
		return float64(thirty360Days(from, to)) / 360, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnknownConvention, int(c))
}

func thirty360Days(from, to date.Date) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()

	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	if d1 == 31 {
		d1 = 30
	}

	return 360*(y2-y1) + 30*(int(m2)-int(m1)) + (d2 - d1)
}
