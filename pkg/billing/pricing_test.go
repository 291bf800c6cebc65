package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupPricingService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	svc := NewService(client, coupons.NewService(client), testConfig())
	return svc, client
}

func seedPlans(t *testing.T, client *ent.Client) {
	ctx := context.Background()

	_, err := client.Plan.Create().
		SetKey("50").
		SetName("Essencial").
		SetMonthlyPrice(50).
		SetFeatures([]string{"Perfil destacado"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Plan.Create().
		SetKey("100").
		SetName("Profissional").
		SetMonthlyPrice(100).
		SetFeatures([]string{"Perfil destacado", "Agenda online"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Plan.Create().
		SetKey("500").
		SetName("Clínica").
		SetMonthlyPrice(500).
		Save(ctx)
	require.NoError(t, err)
}

func TestGetPricing_ReturnsActivePlansOrdered(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	_, err := client.Plan.Create().
		SetKey("legacy").
		SetName("Legado").
		SetMonthlyPrice(75).
		SetActive(false).
		Save(context.Background())
	require.NoError(t, err)

	resp, err := svc.GetPricing(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Plans, 3, "inactive plans are hidden")

	assert.Equal(t, "50", resp.Plans[0].Key)
	assert.Equal(t, "100", resp.Plans[1].Key)
	assert.Equal(t, "500", resp.Plans[2].Key)
}

func TestGetPricing_AnnualFigures(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	resp, err := svc.GetPricing(context.Background())
	require.NoError(t, err)

	var p100 *models.PlanPricing
	for i := range resp.Plans {
		if resp.Plans[i].Key == "100" {
			p100 = &resp.Plans[i]
		}
	}
	require.NotNil(t, p100)

	assert.Equal(t, 100.0, p100.MonthlyPrice)
	assert.Equal(t, 74.0, p100.AnnualMonthlyPrice)
	assert.Equal(t, 312.0, p100.AnnualSavings)
}

func TestPricePreview_MonthlyNoCoupon(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	resp, err := svc.PricePreview(context.Background(), coupons.AudienceProfessionals, models.PricePreviewRequest{
		PlanKey: "100",
		Cycle:   "monthly",
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.DisplayPrice)
	assert.Equal(t, 100.0, resp.OriginalPrice)
	assert.False(t, resp.CouponApplied)
	assert.False(t, resp.CycleDiscounted)
}

func TestPricePreview_AnnualAppliesCycleDiscount(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	resp, err := svc.PricePreview(context.Background(), coupons.AudienceProfessionals, models.PricePreviewRequest{
		PlanKey: "100",
		Cycle:   "annual",
	})
	require.NoError(t, err)

	assert.Equal(t, 74.0, resp.DisplayPrice)
	assert.Equal(t, 100.0, resp.OriginalPrice)
	assert.Equal(t, 312.0, resp.AnnualSavings)
	assert.True(t, resp.CycleDiscounted)
	assert.False(t, resp.CouponApplied)
}

func TestPricePreview_CouponStacksOnAnnual(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	_, err := client.Coupon.Create().
		SetCode("DESC10").
		SetDiscountType(coupon.DiscountTypeFixed).
		SetDiscountValue(10).
		SetAudience(coupon.AudienceProfessionals).
		SetValidFrom(time.Now().Add(-time.Hour)).
		Save(context.Background())
	require.NoError(t, err)

	resp, err := svc.PricePreview(context.Background(), coupons.AudienceProfessionals, models.PricePreviewRequest{
		PlanKey:    "100",
		Cycle:      "annual",
		CouponCode: "DESC10",
	})
	require.NoError(t, err)

	// Annual rate first, then the fixed discount on the monthly unit.
	assert.Equal(t, 64.0, resp.DisplayPrice)
	assert.Equal(t, 100.0, resp.OriginalPrice)
	assert.True(t, resp.CouponApplied)
	assert.True(t, resp.CycleDiscounted)
	assert.Equal(t, "DESC10", resp.CouponCode)
	assert.Empty(t, resp.CouponError)
}

func TestPricePreview_UnusableCouponIsAdvisory(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	until := time.Now().Add(-24 * time.Hour)
	_, err := client.Coupon.Create().
		SetCode("VELHO").
		SetDiscountType(coupon.DiscountTypePercentage).
		SetDiscountValue(20).
		SetAudience(coupon.AudienceAll).
		SetValidFrom(time.Now().Add(-48 * time.Hour)).
		SetValidUntil(until).
		Save(context.Background())
	require.NoError(t, err)

	resp, err := svc.PricePreview(context.Background(), coupons.AudienceProfessionals, models.PricePreviewRequest{
		PlanKey:    "100",
		Cycle:      "monthly",
		CouponCode: "VELHO",
	})
	require.NoError(t, err, "an unusable coupon degrades the preview, it does not fail it")

	assert.Equal(t, 100.0, resp.DisplayPrice)
	assert.False(t, resp.CouponApplied)
	assert.NotEmpty(t, resp.CouponError)
}

func TestPricePreview_UnknownPlan(t *testing.T) {
	svc, client := setupPricingService(t)
	defer client.Close()

	seedPlans(t, client)

	_, err := svc.PricePreview(context.Background(), coupons.AudienceProfessionals, models.PricePreviewRequest{
		PlanKey: "999",
		Cycle:   "monthly",
	})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}
