package bond

import (
	"benritz/fixedincome/internal/date"
	"fmt"
	"math"
)

var (
	ErrYieldToMaturityNoConvergence      = fmt.Errorf("Newton-Raphson failed to converge within max iterations")
	ErrYieldToMaturityDerivativeTooSmall = fmt.Errorf("Newton-Raphson failed (derivative is too small)")
)

// SolverOptions control the Newton-Raphson yield search.
type SolverOptions struct {
	// Tolerance is the largest accepted difference between the target
	// price and the price at the solved yield.
	Tolerance     float64
	MaxIterations int
}

var DefaultSolverOptions = SolverOptions{
	Tolerance:     1e-9,
	MaxIterations: 1_000,
}

// DirtyPriceDerivative is the derivative of DirtyPrice with respect to the
// yield, d/dy CF(1+y)^-t = -t CF (1+y)^-(t+1).
func (b *Bond) DirtyPriceDerivative(ytm float64, today date.Date) (float64, error) {
	cashFlows, err := b.CashFlows()
	if err != nil {
		return 0, err
	}

	derivative := 0.0
	for _, cf := range cashFlows {
		if cf.Date.Before(today) {
			continue
		}

		t, err := b.terms.DayCount.YearFrac(today, cf.Date)
		if err != nil {
			return 0, err
		}

		derivative += -t * cf.Value / math.Pow(1+ytm, t+1)
	}

	return derivative, nil
}

// YieldToMaturity solves for the annually compounded yield at which the
// dirty price on today equals dirtyPrice, starting from guess.
func (b *Bond) YieldToMaturity(dirtyPrice float64, today date.Date, guess float64, opts SolverOptions) (float64, error) {
	y := guess

	for i := 0; i < opts.MaxIterations; i++ {
		p, err := b.DirtyPrice(y, today)
		if err != nil {
			return 0, err
		}

		dp := p - dirtyPrice
		if math.Abs(dp) < opts.Tolerance {
			return y, nil
		}

		d, err := b.DirtyPriceDerivative(y, today)
		if err != nil {
			return 0, err
		}

		if math.Abs(d) < 1e-12 {
			return 0, ErrYieldToMaturityDerivativeTooSmall
		}

		next := y - dp/d
		if next <= -1 {
			// (1+y)^t is undefined at or below -100%
			next = (y - 1) / 2
		}
		y = next
	}

	return 0, ErrYieldToMaturityNoConvergence
}

// EstimatedYieldToMaturity is a rough yield used to seed YieldToMaturity.
//
//	coupon: annual coupon paid per unit of face value (0.05 for 5%)
//	face:   face value of the bond
//	price:  market price of the bond
//	years:  years to maturity
func EstimatedYieldToMaturity(coupon, face, price, years float64) float64 {
	if years <= 0 {
		years = 1
	}
	return (coupon*face + (face-price)/years) / ((face + price) / 2)
}
