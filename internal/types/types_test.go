package types

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/date"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompleteGiltFromYield(t *testing.T) {
	g := NewUKGilt("test", day(2024, time.January, 15))
	g.Coupon = 2
	g.MaturityDate = day(2025, time.September, 7)
	g.YieldToMaturity = 4

	require.NoError(t, CompleteGilt(g, bond.DefaultSolverOptions))

	assert.Equal(t, day(2023, time.September, 7), g.PrevCouponDate)
	assert.Equal(t, day(2024, time.March, 7), g.NextCouponDate)
	assert.Equal(t, 130, g.AccruedDays)
	assert.Equal(t, 182, g.CouponPeriodDays)
	assert.Equal(t, 52, g.RemainingDays)
	assert.Equal(t, 4, g.CouponPeriods)
	assert.Equal(t, 1, g.MaturityYears)
	assert.Equal(t, 236, g.MaturityDays)

	assert.InDelta(t, 130.0/182*1.0, g.AccruedAmount, 1e-12)
	assert.InDelta(t, g.DirtyPrice-g.AccruedAmount, g.CleanPrice, 1e-12)
	// a 2% coupon priced at 4% trades below par
	assert.Less(t, g.CleanPrice, 100.0)
}

func TestCompleteGiltRoundTrip(t *testing.T) {
	priced := NewUKGilt("test", day(2024, time.January, 15))
	priced.Coupon = 4.25
	priced.MaturityDate = day(2036, time.March, 7)
	priced.YieldToMaturity = 4.5
	require.NoError(t, CompleteGilt(priced, bond.DefaultSolverOptions))

	fromClean := NewUKGilt("test", priced.SettlementDate)
	fromClean.Coupon = priced.Coupon
	fromClean.MaturityDate = priced.MaturityDate
	fromClean.CleanPrice = priced.CleanPrice
	require.NoError(t, CompleteGilt(fromClean, bond.DefaultSolverOptions))

	assert.InDelta(t, 4.5, fromClean.YieldToMaturity, 1e-6)
	assert.InDelta(t, priced.DirtyPrice, fromClean.DirtyPrice, 1e-9)

	fromDirty := NewUKGilt("test", priced.SettlementDate)
	fromDirty.Coupon = priced.Coupon
	fromDirty.MaturityDate = priced.MaturityDate
	fromDirty.DirtyPrice = priced.DirtyPrice
	require.NoError(t, CompleteGilt(fromDirty, bond.DefaultSolverOptions))

	assert.InDelta(t, 4.5, fromDirty.YieldToMaturity, 1e-6)
	assert.InDelta(t, priced.CleanPrice, fromDirty.CleanPrice, 1e-9)
}

func TestCompleteGiltOnCouponDate(t *testing.T) {
	g := NewUKGilt("test", day(2024, time.March, 7))
	g.Coupon = 3
	g.MaturityDate = day(2027, time.March, 7)
	g.YieldToMaturity = 3

	require.NoError(t, CompleteGilt(g, bond.DefaultSolverOptions))

	assert.Equal(t, 0, g.AccruedDays)
	assert.Zero(t, g.AccruedAmount)
	assert.Equal(t, g.DirtyPrice, g.CleanPrice)
	assert.Equal(t, 6, g.CouponPeriods)
	// the coupon paid on settlement is not part of the price
	assert.InDelta(t, 100, g.DirtyPrice, 0.5)
}

func TestCompleteGiltErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(g *Gilt)
		want error
	}{
		{"no price or yield", func(g *Gilt) {}, ErrMissingPriceAndYield},
		{"no coupon", func(g *Gilt) { g.Coupon = 0; g.CleanPrice = 99 }, ErrInvalidCoupon},
		{"no maturity", func(g *Gilt) { g.MaturityDate = time.Time{}; g.CleanPrice = 99 }, ErrInvalidMaturityDate},
		{"negative dirty price", func(g *Gilt) { g.DirtyPrice = -1 }, ErrInvalidDirtyPrice},
		{"matured", func(g *Gilt) { g.MaturityDate = day(2023, time.June, 1); g.CleanPrice = 99 }, ErrMaturityDateBeforeSettlement},
		{"maturity out of range", func(g *Gilt) { g.MaturityDate = day(2250, time.June, 1); g.CleanPrice = 99 }, ErrInvalidMaturityDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewUKGilt("test", day(2024, time.January, 15))
			g.Coupon = 2
			g.MaturityDate = day(2030, time.June, 1)
			tt.edit(g)

			assert.ErrorIs(t, CompleteGilt(g, bond.DefaultSolverOptions), tt.want)
		})
	}

	assert.ErrorIs(t, CompleteGilt(nil, bond.DefaultSolverOptions), ErrNilGilt)
}

func TestMaturityYears(t *testing.T) {
	s, err := date.Parse("2024-01-15")
	require.NoError(t, err)

	m, err := date.Parse("2034-01-10")
	require.NoError(t, err)

	years, days, err := MaturityYears(s, m)
	require.NoError(t, err)
	assert.Equal(t, 9, years)
	assert.Equal(t, 361, days)

	_, _, err = MaturityYears(m, s)
	assert.ErrorIs(t, err, ErrMaturityDateBeforeSettlement)
}
