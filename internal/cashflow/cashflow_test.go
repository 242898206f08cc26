package cashflow

import (
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/daycount"
	"benritz/fixedincome/internal/errs"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) date.Date {
	t.Helper()
	v, err := date.Parse(s)
	require.NoError(t, err)
	return v
}

func TestPresentValue(t *testing.T) {
	today := d(t, "2024-01-01")
	cf := New(100, d(t, "2025-01-01")) // 366 days

	tests := []struct {
		interest InterestType
		want     float64
	}{
		{Simple, 100 / (1 + 0.05*366.0/365)},
		{Compound, 100 / math.Pow(1.05, 366.0/365)},
		{Continuous, 100 * math.Exp(-0.05*366.0/365)},
	}

	for _, tt := range tests {
		t.Run(tt.interest.String(), func(t *testing.T) {
			got, err := cf.PresentValue(today, 0.05, daycount.Actual365Fixed, tt.interest)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	pv, err := cf.CompoundPresentValue(cf.Date, 0.05, daycount.Actual365Fixed)
	require.NoError(t, err)
	assert.Equal(t, 100.0, pv)
}

func TestPresentValueAfterPayment(t *testing.T) {
	cf := New(100, d(t, "2024-01-01"))

	for _, it := range []InterestType{Simple, Compound, Continuous} {
		_, err := cf.PresentValue(d(t, "2024-01-02"), 0.05, daycount.Thirty360, it)
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	}
}

func TestFixedCoupons(t *testing.T) {
	coupons := Fixed(0.055, date.Months(12))

	flows, err := coupons.CashFlows(d(t, "2006-05-26"), d(t, "2009-05-26"), 100)
	require.NoError(t, err)
	require.Len(t, flows, 4)

	for i, want := range []string{"2006-05-26", "2007-05-26", "2008-05-26", "2009-05-26"} {
		assert.Equal(t, want, flows[i].Date.String())
		assert.InDelta(t, 5.5, flows[i].Value, 1e-12)
	}
}

func TestFixedCouponsStopBeforeMaturity(t *testing.T) {
	flows, err := Fixed(0.02, date.Months(6)).CashFlows(d(t, "2024-08-31"), d(t, "2025-12-31"), 100)
	require.NoError(t, err)

	var got []string
	for _, cf := range flows {
		got = append(got, cf.Date.String())
	}

	// each step starts from the previous, clamped, coupon date
	assert.Equal(t, []string{"2024-08-31", "2025-02-28", "2025-08-28"}, got)
}

func TestFixedCouponsErrors(t *testing.T) {
	_, err := Fixed(0.05, date.Years(1)).CashFlows(d(t, "2010-01-01"), d(t, "2009-01-01"), 100)
	assert.ErrorIs(t, err, errs.ErrInvalidDate)

	_, err = Fixed(0.05, date.Years(1)).CashFlows(d(t, "2195-06-01"), d(t, "2199-06-01"), 100)
	ar, narrowErr := errs.AsArgumentRange(err)
	require.NoError(t, narrowErr)
	assert.Equal(t, "year", ar.Name)

	_, err = Fixed(0.05, date.Months(0)).CashFlows(d(t, "2010-01-01"), d(t, "2011-01-01"), 100)
	ar, narrowErr = errs.AsArgumentRange(err)
	require.NoError(t, narrowErr)
	assert.Equal(t, "coupon_interval", ar.Name)
}

func TestParseInterestType(t *testing.T) {
	it, err := ParseInterestType("Continuous")
	require.NoError(t, err)
	assert.Equal(t, Continuous, it)

	_, err = ParseInterestType("exotic")
	assert.ErrorIs(t, err, ErrUnknownInterestType)
}
