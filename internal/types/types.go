package types

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/calendar"
	"benritz/fixedincome/internal/cashflow"
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/daycount"
	"fmt"
	"time"
)

type BondType string

var (
	UKGilt BondType = "UK Gilt"
)

// GiltCouponsPerYear is the coupon frequency of conventional gilts.
const GiltCouponsPerYear = 2

// Gilt is a priced market observation of a UK gilt.
//
// Coupon and YieldToMaturity are percentages. YieldToMaturity is the
// annually compounded yield on an Actual/Actual basis.
type Gilt struct {
	Type             BondType
	Source           string
	ISIN             string
	Ticker           string
	Desc             string
	FacePrice        float64
	Coupon           float64
	SettlementDate   time.Time
	PrevCouponDate   time.Time
	NextCouponDate   time.Time
	RemainingDays    int
	AccruedDays      int
	CouponPeriodDays int
	CouponPeriods    int
	MaturityDate     time.Time
	MaturityYears    int
	MaturityDays     int
	CleanPrice       float64
	DirtyPrice       float64
	AccruedAmount    float64
	YieldToMaturity  float64
}

func NewUKGilt(source string, settlementDate time.Time) *Gilt {
	return &Gilt{
		Type:           UKGilt,
		FacePrice:      100.0,
		Source:         source,
		SettlementDate: settlementDate,
	}
}

var (
	ErrNilGilt                      = fmt.Errorf("gilt is nil")
	ErrMissingSettlementDate        = fmt.Errorf("missing settlement date")
	ErrDataUnavailable              = fmt.Errorf("data unavailable")
	ErrUnsupportedGilt              = fmt.Errorf("unsupported gilt")
	ErrInvalidTicker                = fmt.Errorf("invalid ticker")
	ErrInvalidCoupon                = fmt.Errorf("invalid coupon")
	ErrInvalidDesc                  = fmt.Errorf("invalid description")
	ErrInvalidMaturityDate          = fmt.Errorf("invalid maturity date")
	ErrInvalidSettlementDate        = fmt.Errorf("invalid settlement date")
	ErrMaturityDateBeforeSettlement = fmt.Errorf("maturity date is not after settlement date")
	ErrInvalidCleanPrice            = fmt.Errorf("invalid clean price")
	ErrInvalidDirtyPrice            = fmt.Errorf("invalid dirty price")
	ErrInvalidYieldToMaturity       = fmt.Errorf("invalid yield to maturity")
	ErrInvalidFacePrice             = fmt.Errorf("invalid face price")
	ErrMissingPriceAndYield         = fmt.Errorf("missing price and yield")
)

// MaturityYears splits the time to maturity into whole years and the
// remaining days.
func MaturityYears(settlement, maturity date.Date) (int, int, error) {
	if maturity.Before(settlement) {
		return 0, 0, ErrMaturityDateBeforeSettlement
	}

	years := maturity.Year() - settlement.Year()

	start, err := maturity.Decrement(date.Years(uint16(years)))
	if err != nil {
		return 0, 0, err
	}

	if start.Before(settlement) {
		years--
		if start, err = maturity.Decrement(date.Years(uint16(years))); err != nil {
			return 0, 0, err
		}
	}

	return years, date.DaysBetween(settlement, start), nil
}

// GiltBond builds the semi-annual gilt paying coupon percent a year. The
// schedule starts from the last coupon date on or before settlement.
func GiltBond(coupon, face float64, settlement, maturity date.Date) (*bond.Bond, error) {
	if !maturity.After(settlement) {
		return nil, ErrMaturityDateBeforeSettlement
	}

	interval := 12 / GiltCouponsPerYear

	var issue date.Date
	for k := 1; ; k++ {
		d, err := maturity.Decrement(date.Months(uint16(k * interval)))
		if err != nil {
			return nil, fmt.Errorf("previous coupon date: %w", err)
		}
		if !d.After(settlement) {
			issue = d
			break
		}
	}

	coupons := cashflow.Fixed(coupon/100/GiltCouponsPerYear, date.Months(uint16(interval)))

	return bond.New(bond.Terms{
		Calendar:     calendar.UnitedKingdom,
		DayCount:     daycount.ActualActual,
		Adjustment:   calendar.Following,
		IssueDate:    issue,
		MaturityDate: maturity,
		FaceValue:    face,
		Principal:    face,
		Coupons:      &coupons,
	})
}

func validate(g *Gilt) error {
	if g == nil {
		return ErrNilGilt
	}

	if g.SettlementDate.IsZero() {
		return ErrInvalidSettlementDate
	}

	if g.MaturityDate.IsZero() {
		return ErrInvalidMaturityDate
	}

	if g.Coupon <= 0 {
		return ErrInvalidCoupon
	}

	if g.FacePrice <= 0 {
		return ErrInvalidFacePrice
	}

	if g.CleanPrice < 0 {
		return ErrInvalidCleanPrice
	}

	if g.DirtyPrice < 0 {
		return ErrInvalidDirtyPrice
	}

	if g.YieldToMaturity < 0 {
		return ErrInvalidYieldToMaturity
	}

	// requires either a price or yield to maturity to calculate the other
	if g.CleanPrice == 0 && g.DirtyPrice == 0 && g.YieldToMaturity == 0 {
		return ErrMissingPriceAndYield
	}

	return nil
}

// CompleteGilt fills in the coupon dates, accrued interest, and whichever
// of price and yield is missing.
func CompleteGilt(g *Gilt, opts bond.SolverOptions) error {
	if err := validate(g); err != nil {
		return err
	}

	settlement, err := date.FromTime(g.SettlementDate)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettlementDate, err)
	}

	maturity, err := date.FromTime(g.MaturityDate)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMaturityDate, err)
	}

	years, days, err := MaturityYears(settlement, maturity)
	if err != nil {
		return err
	}

	g.MaturityYears = years
	g.MaturityDays = days

	b, err := GiltBond(g.Coupon, g.FacePrice, settlement, maturity)
	if err != nil {
		return err
	}

	cashFlows, err := b.CashFlows()
	if err != nil {
		return err
	}

	prev := cashFlows[0].Date
	next := cashFlows[1].Date

	// coupons still to be paid, including one paid on settlement
	g.CouponPeriods = 0
	paidToday := 0.0
	for _, cf := range cashFlows[:len(cashFlows)-1] {
		if cf.Date.After(settlement) {
			g.CouponPeriods++
		} else if cf.Date == settlement {
			paidToday += cf.Value
		}
	}

	g.PrevCouponDate = prev.Time()
	g.NextCouponDate = next.Time()
	g.RemainingDays = date.DaysBetween(settlement, next)
	g.AccruedDays = date.DaysBetween(prev, settlement)
	g.CouponPeriodDays = date.DaysBetween(prev, next)
	g.AccruedAmount = float64(g.AccruedDays) / float64(g.CouponPeriodDays) * g.Coupon / GiltCouponsPerYear / 100 * g.FacePrice

	// the bond's dirty price includes a coupon paid on settlement, a
	// quoted dirty price does not
	if g.YieldToMaturity == 0 {
		target := g.DirtyPrice
		if target == 0 {
			target = g.CleanPrice + g.AccruedAmount
		}

		guess := bond.EstimatedYieldToMaturity(
			g.Coupon/100,
			g.FacePrice,
			target,
			float64(g.MaturityYears)+float64(g.MaturityDays)/365.0,
		)

		ytm, err := b.YieldToMaturity(target+paidToday, settlement, guess, opts)
		if err != nil {
			return err
		}

		g.YieldToMaturity = ytm * 100
	}

	if g.CleanPrice == 0 && g.DirtyPrice == 0 {
		dirty, err := b.DirtyPrice(g.YieldToMaturity/100, settlement)
		if err != nil {
			return err
		}

		g.DirtyPrice = dirty - paidToday
	}

	if g.CleanPrice == 0 {
		g.CleanPrice = g.DirtyPrice - g.AccruedAmount
	} else if g.DirtyPrice == 0 {
		g.DirtyPrice = g.CleanPrice + g.AccruedAmount
	}

	return nil
}
