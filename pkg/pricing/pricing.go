package pricing

import (
	"fmt"
	"math"
)

// BillingCycle is the cadence a subscription is charged at.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleAnnual  BillingCycle = "annual"
)

// AnnualDiscountRate is the fixed discount applied to the 12-month total
// when paying annually, before any coupon.
const AnnualDiscountRate = 0.26

// Discount is a coupon discount. Exactly two variants exist: PercentOff
// and AmountOff. New variants must be handled in Apply.
type Discount interface {
	isDiscount()
}

// PercentOff reduces the price by a percentage (0-100).
type PercentOff struct {
	Value float64
}

// AmountOff subtracts a fixed BRL amount, floored at zero.
type AmountOff struct {
	Value float64
}

func (PercentOff) isDiscount() {}
func (AmountOff) isDiscount()  {}

// ParseDiscount builds a Discount from the persisted coupon representation.
func ParseDiscount(discountType string, value float64) (Discount, error) {
	switch discountType {
	case "percentage":
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("percentage discount out of range: %v", value)
		}
		return PercentOff{Value: value}, nil
	case "fixed":
		if value < 0 {
			return nil, fmt.Errorf("fixed discount cannot be negative: %v", value)
		}
		return AmountOff{Value: value}, nil
	default:
		return nil, fmt.Errorf("unknown discount type: %s", discountType)
	}
}

// Apply applies a discount to a price. A nil discount is the identity.
func Apply(price float64, d Discount) float64 {
	switch d := d.(type) {
	case nil:
		return price
	case PercentOff:
		return price * (1 - d.Value/100)
	case AmountOff:
		p := price - d.Value
		if p < 0 {
			return 0
		}
		return p
	default:
		// Unreachable while Discount has two variants.
		return price
	}
}

// UnitPrice computes the charged monthly-equivalent price. The composition
// order is fixed and shared with the checkout side: cycle discount first,
// coupon second, rounded to cents at the end.
func UnitPrice(basePrice float64, cycle BillingCycle, d Discount) float64 {
	price := basePrice
	if cycle == CycleAnnual {
		price = basePrice * 12 * (1 - AnnualDiscountRate) / 12
	}
	return RoundCents(Apply(price, d))
}

// AnnualSavings is the yearly amount saved by the annual cycle alone,
// independent of any coupon.
func AnnualSavings(basePrice float64) float64 {
	return RoundCents(basePrice * 12 * AnnualDiscountRate)
}

// RoundCents rounds to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplayPrice is the full price breakdown shown before checkout.
type DisplayPrice struct {
	// DisplayPrice is the final monthly-equivalent price after the cycle
	// discount and the coupon, in that order.
	DisplayPrice float64 `json:"display_price"`
	// OriginalPrice is the pre-coupon price (after the cycle discount).
	OriginalPrice float64 `json:"original_price"`
	// MonthlyPrice is the undiscounted base monthly price.
	MonthlyPrice float64 `json:"monthly_price"`
	// AnnualSavings is the cycle savings messaging, coupon independent.
	AnnualSavings float64 `json:"annual_savings"`
	// CouponApplied reports whether the coupon changed the price
	// (strikethrough of OriginalPrice).
	CouponApplied bool `json:"coupon_applied"`
	// CycleDiscounted reports whether the annual cycle changed the price
	// (strikethrough of MonthlyPrice).
	CycleDiscounted bool `json:"cycle_discounted"`
}

// ComputeDisplayPrice derives the displayed price for a plan's base monthly
// price, a billing cycle and an optional already-validated coupon discount.
// Pure and I/O free; it must match UnitPrice exactly or the number shown
// will differ from the number charged.
func ComputeDisplayPrice(basePrice float64, cycle BillingCycle, d Discount) DisplayPrice {
	original := RoundCents(basePrice)
	if cycle == CycleAnnual {
		original = RoundCents(basePrice * 12 * (1 - AnnualDiscountRate) / 12)
	}

	display := UnitPrice(basePrice, cycle, d)

	return DisplayPrice{
		DisplayPrice:    display,
		OriginalPrice:   original,
		MonthlyPrice:    RoundCents(basePrice),
		AnnualSavings:   AnnualSavings(basePrice),
		CouponApplied:   d != nil && display != original,
		CycleDiscounted: cycle == CycleAnnual && original != RoundCents(basePrice),
	}
}
