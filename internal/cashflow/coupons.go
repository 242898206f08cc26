package cashflow

import (
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/errs"
	"fmt"
	"math"
)

// CouponKind identifies how coupons are generated.
type CouponKind int

const (
	FixedCoupon CouponKind = iota
)

// Coupons describes a coupon schedule. Only fixed coupons exist today.
type Coupons struct {
	Kind CouponKind
	// Rate is paid on the principal at every interval.
	Rate     float64
	Interval date.Period
}

// Fixed pays rate * principal every interval.
func Fixed(rate float64, interval date.Period) Coupons {
	return Coupons{Kind: FixedCoupon, Rate: rate, Interval: interval}
}

// CashFlows generates the coupons from issued to maturity inclusive,
// stepping forward one interval at a time from the issue date.
func (c Coupons) CashFlows(issued, maturity date.Date, principal float64) ([]CashFlow, error) {
	if issued.After(maturity) {
		return nil, fmt.Errorf("%w: issued %s after maturity %s", errs.ErrInvalidDate, issued, maturity)
	}

	if c.Interval.Amount < 1 {
		return nil, errs.NewArgumentRange("coupon_interval", 1, math.MaxUint32, int64(c.Interval.Amount))
	}

	switch c.Kind {
	case FixedCoupon:
		cashFlows := []CashFlow{}

		var err error
		for d := issued; !d.After(maturity); {
			cashFlows = append(cashFlows, New(c.Rate*principal, d))

			d, err = d.Increment(c.Interval)
			if err != nil {
				return nil, fmt.Errorf("coupon after %s: %w", cashFlows[len(cashFlows)-1].Date, err)
			}
		}

		return cashFlows, nil
	}

	return nil, fmt.Errorf("unknown coupon kind %d", int(c.Kind))
}

func (c Coupons) String() string {
	return fmt.Sprintf("Fixed(%g, %s)", c.Rate, c.Interval)
}
