// Package bond prices bonds from their scheduled cash flows.
package bond

import (
	"benritz/fixedincome/internal/calendar"
	"benritz/fixedincome/internal/cashflow"
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/daycount"
	"benritz/fixedincome/internal/errs"
	"fmt"
	"strings"
)

// Terms are the contractual parts of a bond.
type Terms struct {
	Calendar   calendar.Calendar
	DayCount   daycount.Convention
	Adjustment calendar.Adjustment
	IssueDate  date.Date
	// MaturityDate is when the principal is repaid.
	MaturityDate date.Date
	FaceValue    float64
	Principal    float64
	// Coupons is nil for a zero-coupon bond.
	Coupons *cashflow.Coupons
}

type Bond struct {
	terms Terms
}

func New(terms Terms) (*Bond, error) {
	if terms.IssueDate.After(terms.MaturityDate) {
		return nil, fmt.Errorf("%w: issued %s after maturity %s", errs.ErrInvalidDate, terms.IssueDate, terms.MaturityDate)
	}

	if terms.Coupons != nil {
		c := *terms.Coupons
		terms.Coupons = &c
	}

	return &Bond{terms: terms}, nil
}

func (b *Bond) Terms() Terms {
	t := b.terms
	if t.Coupons != nil {
		c := *t.Coupons
		t.Coupons = &c
	}
	return t
}

func (b *Bond) Calendar() calendar.Calendar {
	return b.terms.Calendar
}

func (b *Bond) DayCount() daycount.Convention {
	return b.terms.DayCount
}

func (b *Bond) IssueDate() date.Date {
	return b.terms.IssueDate
}

func (b *Bond) MaturityDate() date.Date {
	return b.terms.MaturityDate
}

func (b *Bond) FaceValue() float64 {
	return b.terms.FaceValue
}

func (b *Bond) Principal() float64 {
	return b.terms.Principal
}

// CashFlows returns the coupon schedule followed by the repayment of the
// principal on the maturity date. A coupon paid on the maturity date is
// kept as a separate flow. The schedule is rebuilt on every call.
func (b *Bond) CashFlows() ([]cashflow.CashFlow, error) {
	var cashFlows []cashflow.CashFlow

	if b.terms.Coupons != nil {
		coupons, err := b.terms.Coupons.CashFlows(b.terms.IssueDate, b.terms.MaturityDate, b.terms.Principal)
		if err != nil {
			return nil, err
		}
		cashFlows = coupons
	}

	return append(cashFlows, cashflow.New(b.terms.Principal, b.terms.MaturityDate)), nil
}

// PaymentDates returns the date each cash flow settles on, rolled to a
// business day by the bond's calendar and adjustment. Pricing uses the
// unadjusted dates.
func (b *Bond) PaymentDates() ([]date.Date, error) {
	cashFlows, err := b.CashFlows()
	if err != nil {
		return nil, err
	}

	dates := make([]date.Date, 0, len(cashFlows))
	for _, cf := range cashFlows {
		d, err := b.terms.Calendar.Adjust(cf.Date, b.terms.Adjustment)
		if err != nil {
			return nil, fmt.Errorf("adjusting %s: %w", cf.Date, err)
		}
		dates = append(dates, d)
	}

	return dates, nil
}

// DirtyPrice sums the compound present value at the yield to maturity of
// every cash flow on or after today.
func (b *Bond) DirtyPrice(ytm float64, today date.Date) (float64, error) {
	cashFlows, err := b.CashFlows()
	if err != nil {
		return 0, err
	}

	price := 0.0
	for _, cf := range cashFlows {
		if cf.Date.Before(today) {
			continue
		}

		pv, err := cf.CompoundPresentValue(today, ytm, b.terms.DayCount)
		if err != nil {
			return 0, err
		}
		price += pv
	}

	return price, nil
}

// AccruedInterest is the value of the last cash flow before today scaled
// by the year fraction elapsed since it was paid. It is zero before the
// first cash flow.
func (b *Bond) AccruedInterest(today date.Date) (float64, error) {
	if today.After(b.terms.MaturityDate) {
		return 0, fmt.Errorf("%w: %s is after maturity %s", errs.ErrInvalidDate, today, b.terms.MaturityDate)
	}

	cashFlows, err := b.CashFlows()
	if err != nil {
		return 0, err
	}

	next := -1
	for i, cf := range cashFlows {
		if cf.Date.After(today) {
			next = i
			break
		}
	}

	if next < 0 {
		return 0, fmt.Errorf("%w after %s", errs.ErrNoFutureCashFlows, today)
	}

	if next == 0 {
		return 0, nil
	}

	prev := cashFlows[next-1]

	t, err := b.terms.DayCount.YearFrac(prev.Date, today)
	if err != nil {
		return 0, err
	}

	return prev.Value * t, nil
}

// CleanPrice is the dirty price less accrued interest.
func (b *Bond) CleanPrice(ytm float64, today date.Date) (float64, error) {
	accrued, err := b.AccruedInterest(today)
	if err != nil {
		return 0, err
	}

	dirty, err := b.DirtyPrice(ytm, today)
	if err != nil {
		return 0, err
	}

	return dirty - accrued, nil
}

// PresentValue discounts every cash flow on or after today at rate.
func (b *Bond) PresentValue(rate float64, today date.Date, interest cashflow.InterestType) (float64, error) {
	if today.After(b.terms.MaturityDate) {
		return 0, fmt.Errorf("%w: %s is after maturity %s", errs.ErrInvalidDate, today, b.terms.MaturityDate)
	}

	cashFlows, err := b.CashFlows()
	if err != nil {
		return 0, err
	}

	value := 0.0
	for _, cf := range cashFlows {
		if cf.Date.Before(today) {
			continue
		}

		pv, err := cf.PresentValue(today, rate, b.terms.DayCount, interest)
		if err != nil {
			return 0, err
		}
		value += pv
	}

	return value, nil
}

func (b *Bond) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Bond:\n")
	fmt.Fprintf(&sb, "\tCalendar: %s, Day Count: %s, Date Adjustment: %s\n", b.terms.Calendar, b.terms.DayCount, b.terms.Adjustment)
	fmt.Fprintf(&sb, "\tIssued: %s, Maturity: %s\n", b.terms.IssueDate, b.terms.MaturityDate)
	fmt.Fprintf(&sb, "\tFace: %g, Principal: %g\n", b.terms.FaceValue, b.terms.Principal)

	if b.terms.Coupons != nil {
		fmt.Fprintf(&sb, "\tCoupons: %s", b.terms.Coupons)
	} else {
		fmt.Fprintf(&sb, "\tCoupons: none")
	}

	return sb.String()
}
