package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate       = fmt.Errorf("invalid date")
	ErrDifferentVariant  = fmt.Errorf("value was of a different variant than required")
	ErrNoFutureCashFlows = fmt.Errorf("no future cash flows")
)

// ArgumentRange reports an argument outside of its valid inclusive range.
type ArgumentRange struct {
	Name  string
	Min   int64
	Max   int64
	Value int64
	// Detail is set when the valid range depends on other arguments,
	// e.g. "February 2005 has 28 days".
	Detail string
}

func (e *ArgumentRange) Error() string {
	msg := fmt.Sprintf("%s must be in the range %d..=%d, but %d was provided", e.Name, e.Min, e.Max, e.Value)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func NewArgumentRange(name string, min, max, value int64) *ArgumentRange {
	return &ArgumentRange{Name: name, Min: min, Max: max, Value: value}
}

// AsArgumentRange narrows err to an *ArgumentRange, returning
// ErrDifferentVariant when err is any other kind of error.
func AsArgumentRange(err error) (*ArgumentRange, error) {
	var ar *ArgumentRange
	if errors.As(err, &ar) {
		return ar, nil
	}
	return nil, ErrDifferentVariant
}
