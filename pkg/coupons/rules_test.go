package coupons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/coupon"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"lowercase is upper-cased", "desc10", "DESC10", false},
		{"whitespace is trimmed", "  DESC10  ", "DESC10", false},
		{"trim and upcase together", " desc10 ", "DESC10", false},
		{"already normalized", "DESC10", "DESC10", false},
		{"truncated to 20 chars", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "ABCDEFGHIJKLMNOPQRST", false},
		{"empty is rejected", "", "", true},
		{"blank is rejected", "   ", "", true},
		{"spaces inside are rejected", "DESC 10", "", true},
		{"punctuation is rejected", "DESC-10", "", true},
		{"unicode is rejected", "DESCÁ10", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCode_Idempotent(t *testing.T) {
	first, err := NormalizeCode(" desc10 ")
	require.NoError(t, err)
	second, err := NormalizeCode(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func testCoupon(mutate func(*ent.Coupon)) *ent.Coupon {
	c := &ent.Coupon{
		Code:          "DESC10",
		DiscountType:  coupon.DiscountTypePercentage,
		DiscountValue: 10,
		Audience:      coupon.AudienceAll,
		ValidFrom:     time.Now().Add(-time.Hour),
		Active:        true,
	}
	if mutate != nil {
		mutate(c)
	}
	return c
}

func TestEvaluate_Valid(t *testing.T) {
	assert.NoError(t, Evaluate(testCoupon(nil), AudienceProfessionals, time.Now()))
}

func TestEvaluate_Inactive(t *testing.T) {
	c := testCoupon(func(c *ent.Coupon) { c.Active = false })
	assert.ErrorIs(t, Evaluate(c, AudienceAll, time.Now()), ErrInactive)
}

func TestEvaluate_NotYetValid(t *testing.T) {
	c := testCoupon(func(c *ent.Coupon) { c.ValidFrom = time.Now().Add(time.Hour) })
	assert.ErrorIs(t, Evaluate(c, AudienceAll, time.Now()), ErrNotYetValid)
}

func TestEvaluate_ExpiryBoundary(t *testing.T) {
	until := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	c := testCoupon(func(c *ent.Coupon) { c.ValidUntil = &until })

	assert.NoError(t, Evaluate(c, AudienceAll, until.Add(-time.Second)),
		"before valid_until is valid")
	assert.NoError(t, Evaluate(c, AudienceAll, until),
		"exactly at valid_until is still valid")
	assert.ErrorIs(t, Evaluate(c, AudienceAll, until.Add(time.Second)), ErrExpired,
		"after valid_until is expired")
}

func TestEvaluate_LimitReached(t *testing.T) {
	max := 5
	c := testCoupon(func(c *ent.Coupon) {
		c.MaxUses = &max
		c.CurrentUses = 5
	})
	assert.ErrorIs(t, Evaluate(c, AudienceAll, time.Now()), ErrLimitReached)

	c.CurrentUses = 4
	assert.NoError(t, Evaluate(c, AudienceAll, time.Now()))
}

func TestEvaluate_NoCapMeansUnlimited(t *testing.T) {
	c := testCoupon(func(c *ent.Coupon) { c.CurrentUses = 100000 })
	assert.NoError(t, Evaluate(c, AudienceAll, time.Now()))
}

func TestEvaluate_AudienceMatching(t *testing.T) {
	c := testCoupon(func(c *ent.Coupon) { c.Audience = coupon.AudienceProfessionals })

	assert.NoError(t, Evaluate(c, AudienceProfessionals, time.Now()))
	assert.ErrorIs(t, Evaluate(c, AudiencePatients, time.Now()), ErrAudienceMismatch)

	c.Audience = coupon.AudienceAll
	assert.NoError(t, Evaluate(c, AudiencePatients, time.Now()))
	assert.NoError(t, Evaluate(c, AudienceProfessionals, time.Now()))
}

func TestAudienceForRole(t *testing.T) {
	assert.Equal(t, AudienceProfessionals, AudienceForRole("professional"))
	assert.Equal(t, AudiencePatients, AudienceForRole("patient"))
	assert.Equal(t, AudienceAll, AudienceForRole("admin"))
}

func TestIsVerdict(t *testing.T) {
	assert.True(t, IsVerdict(ErrExpired))
	assert.True(t, IsVerdict(ErrNotFound))
	assert.True(t, IsVerdict(ErrLimitReached))
	assert.False(t, IsVerdict(assert.AnError))
	assert.False(t, IsVerdict(nil))
}
