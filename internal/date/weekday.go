package date

import (
	"benritz/fixedincome/internal/errs"
	"strconv"
)

// Weekday with Monday = 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func WeekdayFromInt(d int) (Weekday, error) {
	if d < int(Monday) || d > int(Sunday) {
		return 0, errs.NewArgumentRange("weekday", int64(Monday), int64(Sunday), int64(d))
	}
	return Weekday(d), nil
}

func (w Weekday) Next() Weekday {
	return (w + 1) % 7
}

func (w Weekday) Previous() Weekday {
	return (w + 6) % 7
}

func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

func (w Weekday) IsWeekday() bool {
	return !w.IsWeekend()
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}
