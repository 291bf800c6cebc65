package coupons

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/predicate"
	"github.com/vivasaude/vivasaude/pkg/models"
)

// Service handles coupon lookup, validation and redemption accounting.
type Service struct {
	db *ent.Client
}

// NewService creates a new coupon service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Validate checks whether a code is usable by the given audience right now.
// Read-only: it never touches the usage counter, and its result carries no
// authorization. Checkout re-derives validity independently.
func (s *Service) Validate(ctx context.Context, code string, audience Audience) (*ent.Coupon, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}

	c, err := s.db.Coupon.Query().
		Where(coupon.CodeEQ(normalized)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query coupon: %w", err)
	}

	if err := Evaluate(c, audience, time.Now()); err != nil {
		return nil, err
	}

	return c, nil
}

// underCap matches coupons that still have redemptions left. Comparing the
// two columns inside the UPDATE is what closes the read-then-write race on
// the usage counter.
func underCap() predicate.Coupon {
	return predicate.Coupon(func(sel *sql.Selector) {
		sel.Where(sql.Or(
			sql.IsNull(sel.C(coupon.FieldMaxUses)),
			sql.ColumnsLT(sel.C(coupon.FieldCurrentUses), sel.C(coupon.FieldMaxUses)),
		))
	})
}

// Consume records one redemption with a single conditional UPDATE:
//
//	SET current_uses = current_uses + 1
//	WHERE code = ? AND active AND (max_uses IS NULL OR current_uses < max_uses)
//
// Zero rows affected is the authoritative late LimitReached signal, even
// when a prior Validate succeeded.
func (s *Service) Consume(ctx context.Context, code string) error {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return err
	}

	n, err := s.db.Coupon.Update().
		Where(coupon.CodeEQ(normalized), coupon.Active(true), underCap()).
		AddCurrentUses(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	if n == 0 {
		return ErrLimitReached
	}
	return nil
}

// Release is the best-effort compensating decrement used when a checkout
// fails after the coupon was already consumed.
func (s *Service) Release(ctx context.Context, code string) error {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return err
	}

	_, err = s.db.Coupon.Update().
		Where(coupon.CodeEQ(normalized), coupon.CurrentUsesGT(0)).
		AddCurrentUses(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release coupon usage: %w", err)
	}
	return nil
}

// Create stores a new coupon. ownerID is set for professional-issued
// coupons and nil for platform ones.
func (s *Service) Create(ctx context.Context, req models.CreateCouponRequest, ownerID *int) (*ent.Coupon, error) {
	normalized, err := NormalizeCode(req.Code)
	if err != nil {
		return nil, err
	}

	d := coupon.DiscountType(req.DiscountType)
	if d == coupon.DiscountTypePercentage && req.DiscountValue > 100 {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}

	audience := coupon.AudienceAll
	if req.Audience != "" {
		audience = coupon.Audience(req.Audience)
	}

	builder := s.db.Coupon.Create().
		SetCode(normalized).
		SetDiscountType(d).
		SetDiscountValue(req.DiscountValue).
		SetAudience(audience)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.ValidFrom != nil {
		builder.SetValidFrom(*req.ValidFrom)
	}
	if req.ValidUntil != nil {
		builder.SetValidUntil(*req.ValidUntil)
	}
	if req.MaxUses != nil {
		builder.SetMaxUses(*req.MaxUses)
	}
	if ownerID != nil {
		builder.SetOwnerID(*ownerID)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("coupon code already exists: %s", normalized)
		}
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return c, nil
}

// List returns all coupons, newest first.
func (s *Service) List(ctx context.Context) ([]*ent.Coupon, error) {
	list, err := s.db.Coupon.Query().
		Order(ent.Desc(coupon.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return list, nil
}

// Retire deactivates a coupon, keeping the row for audit history.
func (s *Service) Retire(ctx context.Context, id int) (*ent.Coupon, error) {
	c, err := s.db.Coupon.UpdateOneID(id).
		SetActive(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retire coupon: %w", err)
	}
	return c, nil
}

// RetireExpired deactivates every active coupon whose validity window has
// closed. Called by the nightly maintenance job.
func (s *Service) RetireExpired(ctx context.Context, now time.Time) (int, error) {
	n, err := s.db.Coupon.Update().
		Where(
			coupon.Active(true),
			coupon.ValidUntilNotNil(),
			coupon.ValidUntilLT(now),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to retire expired coupons: %w", err)
	}
	return n, nil
}

// Info builds the client-facing discount view of a validated coupon.
func Info(c *ent.Coupon) *models.CouponInfo {
	return &models.CouponInfo{
		Code:          c.Code,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		Description:   c.Description,
	}
}

// Response builds the management view of a coupon.
func Response(c *ent.Coupon) models.CouponResponse {
	return models.CouponResponse{
		ID:            c.ID,
		Code:          c.Code,
		Description:   c.Description,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		Audience:      string(c.Audience),
		ValidFrom:     c.ValidFrom,
		ValidUntil:    c.ValidUntil,
		MaxUses:       c.MaxUses,
		CurrentUses:   c.CurrentUses,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}
