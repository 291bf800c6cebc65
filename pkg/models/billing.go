package models

// CheckoutRequest represents a request to create a checkout session
type CheckoutRequest struct {
	PlanKey    string `json:"plan_key" validate:"required,max=20"`
	CouponCode string `json:"coupon_code,omitempty" validate:"omitempty,max=40"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// PricePreviewRequest represents a display-price computation request.
// The result is advisory; checkout derives the charged price independently.
type PricePreviewRequest struct {
	PlanKey    string `json:"plan_key" validate:"required,max=20"`
	Cycle      string `json:"cycle" validate:"required,oneof=monthly annual"`
	CouponCode string `json:"coupon_code,omitempty" validate:"omitempty,max=40"`
}

// PricePreviewResponse represents the computed display price breakdown
type PricePreviewResponse struct {
	PlanKey         string  `json:"plan_key"`
	Cycle           string  `json:"cycle"`
	DisplayPrice    float64 `json:"display_price"`
	OriginalPrice   float64 `json:"original_price"`
	MonthlyPrice    float64 `json:"monthly_price"`
	AnnualSavings   float64 `json:"annual_savings"`
	CouponApplied   bool    `json:"coupon_applied"`
	CycleDiscounted bool    `json:"cycle_discounted"`
	CouponCode      string  `json:"coupon_code,omitempty"`
	CouponError     string  `json:"coupon_error,omitempty"`
}

// PlanPricing represents one plan in the public pricing catalog
type PlanPricing struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	MonthlyPrice       float64  `json:"monthly_price"`
	AnnualMonthlyPrice float64  `json:"annual_monthly_price"`
	AnnualSavings      float64  `json:"annual_savings"`
	Free               bool     `json:"free"`
	Features           []string `json:"features,omitempty"`
}

// PricingResponse represents the public pricing catalog
type PricingResponse struct {
	Plans []PlanPricing `json:"plans"`
}
