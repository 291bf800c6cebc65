package billing

import (
	"context"
	"fmt"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/plan"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/models"
	"github.com/vivasaude/vivasaude/pkg/pricing"
)

// GetPricing returns the public pricing catalog with monthly and
// annual-equivalent prices for every active plan.
func (s *Service) GetPricing(ctx context.Context) (*models.PricingResponse, error) {
	plans, err := s.db.Plan.Query().
		Where(plan.Active(true)).
		Order(ent.Asc(plan.FieldMonthlyPrice)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	resp := &models.PricingResponse{Plans: make([]models.PlanPricing, 0, len(plans))}
	for _, p := range plans {
		resp.Plans = append(resp.Plans, models.PlanPricing{
			Key:                p.Key,
			Name:               p.Name,
			Description:        p.Description,
			MonthlyPrice:       pricing.RoundCents(p.MonthlyPrice),
			AnnualMonthlyPrice: pricing.UnitPrice(p.MonthlyPrice, pricing.CycleAnnual, nil),
			AnnualSavings:      pricing.AnnualSavings(p.MonthlyPrice),
			Free:               p.Free,
			Features:           p.Features,
		})
	}
	return resp, nil
}

// PricePreview computes the display price for a plan, cycle and optional
// coupon using the same arithmetic the checkout charges with. The coupon
// verdict here is advisory: an unusable coupon yields the undiscounted
// preview plus the verdict message instead of an error.
func (s *Service) PricePreview(ctx context.Context, audience coupons.Audience, req models.PricePreviewRequest) (*models.PricePreviewResponse, error) {
	p, err := s.db.Plan.Query().
		Where(plan.KeyEQ(req.PlanKey), plan.Active(true)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlan, req.PlanKey)
	}

	resp := &models.PricePreviewResponse{
		PlanKey: req.PlanKey,
		Cycle:   req.Cycle,
	}

	var d pricing.Discount
	if req.CouponCode != "" {
		c, err := s.coupons.Validate(ctx, req.CouponCode, audience)
		switch {
		case err == nil:
			d, err = pricing.ParseDiscount(string(c.DiscountType), c.DiscountValue)
			if err != nil {
				return nil, fmt.Errorf("failed to map coupon discount: %w", err)
			}
			resp.CouponCode = c.Code
		case coupons.IsVerdict(err):
			resp.CouponError = err.Error()
		default:
			return nil, err
		}
	}

	dp := pricing.ComputeDisplayPrice(p.MonthlyPrice, pricing.BillingCycle(req.Cycle), d)
	resp.DisplayPrice = dp.DisplayPrice
	resp.OriginalPrice = dp.OriginalPrice
	resp.MonthlyPrice = dp.MonthlyPrice
	resp.AnnualSavings = dp.AnnualSavings
	resp.CouponApplied = dp.CouponApplied
	resp.CycleDiscounted = dp.CycleDiscounted

	return resp, nil
}
