package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDisplayPrice_AnnualNoCoupon(t *testing.T) {
	p := ComputeDisplayPrice(100, CycleAnnual, nil)

	assert.Equal(t, 74.00, p.DisplayPrice, "100 * 12 * 0.74 / 12")
	assert.Equal(t, 74.00, p.OriginalPrice)
	assert.Equal(t, 100.00, p.MonthlyPrice)
	assert.Equal(t, 312.00, p.AnnualSavings, "100 * 12 * 0.26")
	assert.False(t, p.CouponApplied)
	assert.True(t, p.CycleDiscounted)
}

func TestComputeDisplayPrice_MonthlyPercentageCoupon(t *testing.T) {
	p := ComputeDisplayPrice(100, CycleMonthly, PercentOff{Value: 20})

	assert.Equal(t, 80.00, p.DisplayPrice)
	assert.Equal(t, 100.00, p.OriginalPrice)
	assert.True(t, p.CouponApplied)
	assert.False(t, p.CycleDiscounted)
}

func TestComputeDisplayPrice_AnnualFixedCoupon(t *testing.T) {
	p := ComputeDisplayPrice(100, CycleAnnual, AmountOff{Value: 10})

	assert.Equal(t, 64.00, p.DisplayPrice, "74 - 10")
	assert.Equal(t, 74.00, p.OriginalPrice)
	assert.True(t, p.CouponApplied)
	assert.True(t, p.CycleDiscounted)
}

func TestComputeDisplayPrice_MonthlyNoCoupon(t *testing.T) {
	p := ComputeDisplayPrice(100, CycleMonthly, nil)

	assert.Equal(t, 100.00, p.DisplayPrice)
	assert.Equal(t, 100.00, p.OriginalPrice)
	assert.False(t, p.CouponApplied)
	assert.False(t, p.CycleDiscounted)
}

func TestComputeDisplayPrice_AnnualSavingsIgnoresCoupon(t *testing.T) {
	withCoupon := ComputeDisplayPrice(100, CycleAnnual, PercentOff{Value: 50})
	without := ComputeDisplayPrice(100, CycleAnnual, nil)

	assert.Equal(t, without.AnnualSavings, withCoupon.AnnualSavings,
		"savings messaging reflects the cycle discount alone")
}

func TestApply_FixedFloorsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, Apply(30, AmountOff{Value: 50}))
	assert.Equal(t, 0.0, Apply(50, AmountOff{Value: 50}))
}

func TestApply_PercentBounds(t *testing.T) {
	assert.Equal(t, 0.0, Apply(100, PercentOff{Value: 100}))
	assert.Equal(t, 100.0, Apply(100, PercentOff{Value: 0}))
}

func TestApply_NilIsIdentity(t *testing.T) {
	assert.Equal(t, 123.45, Apply(123.45, nil))
}

func TestUnitPrice_MatchesDisplayPrice(t *testing.T) {
	cases := []struct {
		name  string
		base  float64
		cycle BillingCycle
		d     Discount
	}{
		{"monthly plain", 50, CycleMonthly, nil},
		{"annual plain", 500, CycleAnnual, nil},
		{"monthly percent", 100, CycleMonthly, PercentOff{Value: 15}},
		{"annual percent", 100, CycleAnnual, PercentOff{Value: 15}},
		{"monthly fixed", 50, CycleMonthly, AmountOff{Value: 5}},
		{"annual fixed", 500, CycleAnnual, AmountOff{Value: 99.9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			display := ComputeDisplayPrice(tc.base, tc.cycle, tc.d)
			assert.Equal(t, UnitPrice(tc.base, tc.cycle, tc.d), display.DisplayPrice,
				"displayed price must equal charged price")
		})
	}
}

func TestUnitPrice_RoundsToCents(t *testing.T) {
	// 99.90 * 12 * 0.74 / 12 = 73.926 -> 73.93
	assert.Equal(t, 73.93, UnitPrice(99.90, CycleAnnual, nil))
}

func TestParseDiscount(t *testing.T) {
	d, err := ParseDiscount("percentage", 20)
	require.NoError(t, err)
	assert.Equal(t, PercentOff{Value: 20}, d)

	d, err = ParseDiscount("fixed", 10)
	require.NoError(t, err)
	assert.Equal(t, AmountOff{Value: 10}, d)

	_, err = ParseDiscount("percentage", 101)
	assert.Error(t, err)

	_, err = ParseDiscount("fixed", -1)
	assert.Error(t, err)

	_, err = ParseDiscount("bogus", 5)
	assert.Error(t, err)
}
