// Package cashflow values dated cash amounts and generates coupon schedules.
package cashflow

import (
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/daycount"
	"fmt"
	"math"
	"strings"
)

// InterestType selects how a cash flow is discounted.
type InterestType int

const (
	// Simple discounts with PV = FV / (1 + rt).
	Simple InterestType = iota
	// Compound discounts with PV = FV / (1 + r)^t.
	Compound
	// Continuous discounts with PV = FV * e^(-rt).
	Continuous
)

var ErrUnknownInterestType = fmt.Errorf("unknown interest type")

func ParseInterestType(s string) (InterestType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return Simple, nil
	case "compound":
		return Compound, nil
	case "continuous":
		return Continuous, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterestType, s)
}

func (i InterestType) String() string {
	switch i {
	case Simple:
		return "Simple"
	case Compound:
		return "Compound"
	case Continuous:
		return "Continuous"
	}
	return fmt.Sprintf("InterestType(%d)", int(i))
}

// CashFlow is an amount paid on a date.
type CashFlow struct {
	Value float64
	Date  date.Date
}

func New(value float64, d date.Date) CashFlow {
	return CashFlow{Value: value, Date: d}
}

// SimplePresentValue discounts the cash flow back to today at the annual
// rate using simple interest.
func (c CashFlow) SimplePresentValue(today date.Date, rate float64, convention daycount.Convention) (float64, error) {
	t, err := convention.YearFrac(today, c.Date)
	if err != nil {
		return 0, err
	}
	return c.Value / (1 + rate*t), nil
}

// CompoundPresentValue discounts the cash flow back to today at the annual
// rate using annual compounding.
func (c CashFlow) CompoundPresentValue(today date.Date, rate float64, convention daycount.Convention) (float64, error) {
	t, err := convention.YearFrac(today, c.Date)
	if err != nil {
		return 0, err
	}
	return c.Value / math.Pow(1+rate, t), nil
}

// ContinuousPresentValue discounts the cash flow back to today at the
// annual rate using continuous compounding.
func (c CashFlow) ContinuousPresentValue(today date.Date, rate float64, convention daycount.Convention) (float64, error) {
	t, err := convention.YearFrac(today, c.Date)
	if err != nil {
		return 0, err
	}
	return c.Value * math.Exp(-rate*t), nil
}

func (c CashFlow) PresentValue(today date.Date, rate float64, convention daycount.Convention, interest InterestType) (float64, error) {
	switch interest {
	case Simple:
		return c.SimplePresentValue(today, rate, convention)
	case Compound:
		return c.CompoundPresentValue(today, rate, convention)
	case Continuous:
		return c.ContinuousPresentValue(today, rate, convention)
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownInterestType, int(interest))
}

func (c CashFlow) String() string {
	return fmt.Sprintf("Cash Flow: %g on %s", c.Value, c.Date)
}
