package models

import "time"

// ValidateCouponRequest represents an advisory coupon validation request
type ValidateCouponRequest struct {
	Code           string `json:"code" validate:"required,max=40"`
	TargetAudience string `json:"target_audience,omitempty" validate:"omitempty,oneof=professionals patients all"`
}

// CouponInfo is the discount view returned to clients on successful validation
type CouponInfo struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	Description   string  `json:"description,omitempty"`
}

// ValidateCouponResponse represents a coupon validation verdict.
// The verdict is advisory only; checkout re-validates independently.
type ValidateCouponResponse struct {
	Valid  bool        `json:"valid"`
	Coupon *CouponInfo `json:"coupon,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// CreateCouponRequest represents a coupon creation request
type CreateCouponRequest struct {
	Code          string     `json:"code" validate:"required,max=20"`
	Description   string     `json:"description,omitempty" validate:"omitempty,max=200"`
	DiscountType  string     `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value" validate:"required,gt=0"`
	Audience      string     `json:"audience,omitempty" validate:"omitempty,oneof=professionals patients all"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	MaxUses       *int       `json:"max_uses,omitempty" validate:"omitempty,gte=1"`
}

// CouponResponse is the management view of a coupon
type CouponResponse struct {
	ID            int        `json:"id"`
	Code          string     `json:"code"`
	Description   string     `json:"description,omitempty"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	Audience      string     `json:"audience"`
	ValidFrom     time.Time  `json:"valid_from"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	MaxUses       *int       `json:"max_uses,omitempty"`
	CurrentUses   int        `json:"current_uses"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}
