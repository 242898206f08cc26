package calendar

import (
	"benritz/fixedincome/internal/date"
	"fmt"
	"strings"
)

// Adjustment is a business-day convention for rolling dates that fall on
// a holiday.
type Adjustment int

const (
	Unadjusted Adjustment = iota
	Following
	Preceding
	ModifiedFollowing
	ModifiedPreceding
)

var ErrUnknownAdjustment = fmt.Errorf("unknown date adjustment")

func ParseAdjustment(s string) (Adjustment, error) {
	switch strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)) {
	case "unadjusted", "none":
		return Unadjusted, nil
	case "following", "f":
		return Following, nil
	case "preceding", "p":
		return Preceding, nil
	case "modifiedfollowing", "mf":
		return ModifiedFollowing, nil
	case "modifiedpreceding", "mp":
		return ModifiedPreceding, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAdjustment, s)
}

func (a Adjustment) String() string {
	switch a {
	case Unadjusted:
		return "Unadjusted"
	case Following:
		return "Following"
	case Preceding:
		return "Preceding"
	case ModifiedFollowing:
		return "Modified Following"
	case ModifiedPreceding:
		return "Modified Preceding"
	}
	return fmt.Sprintf("Adjustment(%d)", int(a))
}

// Adjust rolls d to a business day using a. The modified conventions
// reverse direction rather than leave the month of d.
func (c Calendar) Adjust(d date.Date, a Adjustment) (date.Date, error) {
	switch a {
	case Unadjusted:
		return d, nil
	case Following:
		return c.roll(d, 1)
	case Preceding:
		return c.roll(d, -1)
	case ModifiedFollowing, ModifiedPreceding:
		step := 1
		if a == ModifiedPreceding {
			step = -1
		}

		adjusted, err := c.roll(d, step)
		if err == nil && adjusted.Month() == d.Month() {
			return adjusted, nil
		}

		return c.roll(d, -step)
	}
	return date.Date{}, fmt.Errorf("%w: %d", ErrUnknownAdjustment, int(a))
}

func (c Calendar) roll(d date.Date, step int) (date.Date, error) {
	var err error
	for c.IsHoliday(d) {
		if step > 0 {
			d, err = d.NextDay()
		} else {
			d, err = d.PreviousDay()
		}
		if err != nil {
			return date.Date{}, err
		}
	}
	return d, nil
}
