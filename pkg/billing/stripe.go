package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	stripecoupon "github.com/stripe/stripe-go/v76/coupon"
	"github.com/stripe/stripe-go/v76/customer"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/models"
	"github.com/vivasaude/vivasaude/pkg/pricing"
)

// ErrInvalidPlan is returned for an unknown plan key. It is detected before
// any call to Stripe and never retried.
var ErrInvalidPlan = errors.New("invalid plan key")

// UpstreamError wraps a Stripe API failure. It is fatal for the attempt and
// surfaced to the caller with the provider's message.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("stripe %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// AuditLogger abstracts audit logging for billing events.
type AuditLogger interface {
	LogCouponRedeemed(userID int, code string, metadata map[string]interface{}) error
	LogPaymentFailed(userID int, subscriptionID string, metadata map[string]interface{}) error
}

// MetricsRecorder abstracts business metrics for billing events.
type MetricsRecorder interface {
	RecordSubscriptionSold(plan string)
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string

	Price50Monthly  string
	Price50Annual   string
	Price100Monthly string
	Price100Annual  string
	Price500Monthly string
	Price500Annual  string

	SuccessURL string
	CancelURL  string
	BaseURL    string
}

// Service is the checkout orchestrator. It is the only component authorized
// to mark a coupon as spent and to trigger an actual charge; client-side
// validation results are advisory and never trusted here.
type Service struct {
	db      *ent.Client
	coupons *coupons.Service
	config  *StripeConfig
	prices  map[string]string
	email   EmailSender
	audit   AuditLogger
	metrics MetricsRecorder
}

// NewService creates a new billing service
func NewService(db *ent.Client, couponService *coupons.Service, config *StripeConfig) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:      db,
		coupons: couponService,
		config:  config,
		prices: map[string]string{
			"50-monthly":  config.Price50Monthly,
			"50-annual":   config.Price50Annual,
			"100-monthly": config.Price100Monthly,
			"100-annual":  config.Price100Annual,
			"500-monthly": config.Price500Monthly,
			"500-annual":  config.Price500Annual,
		},
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetAuditLogger sets the audit logger for billing events.
func (s *Service) SetAuditLogger(a AuditLogger) {
	s.audit = a
}

// SetMetrics sets the business metrics recorder for billing events.
func (s *Service) SetMetrics(m MetricsRecorder) {
	s.metrics = m
}

// priceIDForPlan resolves a plan key to a Stripe price ID.
func (s *Service) priceIDForPlan(planKey string) (string, error) {
	priceID, ok := s.prices[planKey]
	if !ok || priceID == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidPlan, planKey)
	}
	return priceID, nil
}

// SplitPlanKey splits a "{tier}-{cycle}" plan key into its parts.
func SplitPlanKey(planKey string) (string, pricing.BillingCycle, error) {
	parts := strings.SplitN(planKey, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPlan, planKey)
	}
	cycle := pricing.BillingCycle(parts[1])
	switch cycle {
	case pricing.CycleMonthly, pricing.CycleAnnual:
		return parts[0], cycle, nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPlan, planKey)
	}
}

// CreateCheckoutSession creates a Stripe subscription checkout session for a
// professional. The coupon code, if any, is re-validated here regardless of
// what the client already saw; an unusable coupon degrades the checkout to
// full price instead of blocking it.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID int, planKey, couponCode string) (*models.CheckoutResponse, error) {
	priceID, err := s.priceIDForPlan(planKey)
	if err != nil {
		return nil, err
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var applied *ent.Coupon
	if couponCode != "" {
		c, err := s.coupons.Validate(ctx, couponCode, coupons.AudienceProfessionals)
		switch {
		case err == nil:
			applied = c
		case coupons.IsVerdict(err):
			log.Printf("⚠️  Coupon %q unusable at checkout (user %d): %v — proceeding without discount", couponCode, userID, err)
		default:
			log.Printf("⚠️  Coupon lookup failed at checkout (user %d): %v — proceeding without discount", userID, err)
		}
	}

	customerID, err := s.resolveCustomer(ctx, u)
	if err != nil {
		return nil, err
	}

	// The atomic usage increment is the authorization to apply the
	// discount. A late LimitReached here means racing checkouts exhausted
	// the coupon after validation; degrade like any other unusable coupon.
	if applied != nil {
		if err := s.coupons.Consume(ctx, applied.Code); err != nil {
			log.Printf("⚠️  Coupon %q could not be consumed (user %d): %v — proceeding without discount", applied.Code, userID, err)
			applied = nil
		}
	}

	if applied != nil {
		if err := s.ensureStripeCoupon(applied); err != nil {
			s.releaseCoupon(ctx, applied.Code)
			return nil, err
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	} else {
		params.CustomerEmail = stripe.String(u.Email)
	}
	if applied != nil {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(applied.Code)},
		}
	}
	params.AddMetadata("user_id", strconv.Itoa(userID))
	params.AddMetadata("plan_key", planKey)
	if applied != nil {
		params.AddMetadata("coupon_code", applied.Code)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		if applied != nil {
			s.releaseCoupon(ctx, applied.Code)
		}
		return nil, &UpstreamError{Op: "checkout session create", Err: err}
	}

	if applied != nil {
		log.Printf("✅ Coupon %s applied to checkout (user %d, plan %s)", applied.Code, userID, planKey)
		if s.audit != nil {
			if err := s.audit.LogCouponRedeemed(userID, applied.Code, map[string]interface{}{
				"plan_key":   planKey,
				"session_id": sess.ID,
			}); err != nil {
				log.Printf("⚠️  Failed to audit coupon redemption: %v", err)
			}
		}
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// resolveCustomer returns the Stripe customer ID for a user, searching by
// email before creating so repeated first checkouts converge on one
// customer per email. The resolved ID is persisted on the user.
func (s *Service) resolveCustomer(ctx context.Context, u *ent.User) (string, error) {
	if u.StripeCustomerID != nil && *u.StripeCustomerID != "" {
		return *u.StripeCustomerID, nil
	}

	listParams := &stripe.CustomerListParams{
		Email: stripe.String(u.Email),
	}
	listParams.Limit = stripe.Int64(1)

	var customerID string
	iter := customer.List(listParams)
	if iter.Next() {
		customerID = iter.Customer().ID
	}
	if err := iter.Err(); err != nil {
		return "", &UpstreamError{Op: "customer search", Err: err}
	}

	if customerID == "" {
		params := &stripe.CustomerParams{
			Email: stripe.String(u.Email),
			Name:  stripe.String(u.Name),
		}
		params.AddMetadata("user_id", strconv.Itoa(u.ID))

		cust, err := customer.New(params)
		if err != nil {
			return "", &UpstreamError{Op: "customer create", Err: err}
		}
		customerID = cust.ID
	}

	if _, err := s.db.User.UpdateOneID(u.ID).
		SetStripeCustomerID(customerID).
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to save customer ID: %w", err)
	}

	return customerID, nil
}

// ensureStripeCoupon lazily materializes the Stripe discount object for a
// coupon, keyed by the coupon's own code so repeated checkouts against the
// same coupon reuse one object upstream.
func (s *Service) ensureStripeCoupon(c *ent.Coupon) error {
	if _, err := stripecoupon.Get(c.Code, nil); err == nil {
		return nil
	} else {
		var stripeErr *stripe.Error
		if !errors.As(err, &stripeErr) || stripeErr.Code != stripe.ErrorCodeResourceMissing {
			return &UpstreamError{Op: "coupon lookup", Err: err}
		}
	}

	d, err := pricing.ParseDiscount(string(c.DiscountType), c.DiscountValue)
	if err != nil {
		return fmt.Errorf("failed to map coupon discount: %w", err)
	}

	params := &stripe.CouponParams{
		ID:       stripe.String(c.Code),
		Name:     stripe.String(c.Code),
		Duration: stripe.String(string(stripe.CouponDurationOnce)),
	}
	switch d := d.(type) {
	case pricing.PercentOff:
		params.PercentOff = stripe.Float64(d.Value)
	case pricing.AmountOff:
		params.AmountOff = stripe.Int64(int64(math.Round(d.Value * 100)))
		params.Currency = stripe.String(string(stripe.CurrencyBRL))
	}

	if _, err := stripecoupon.New(params); err != nil {
		var stripeErr *stripe.Error
		// A concurrent checkout may have created it first.
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceAlreadyExists {
			return nil
		}
		return &UpstreamError{Op: "coupon create", Err: err}
	}

	log.Printf("✅ Materialized Stripe coupon %s (%s %.2f)", c.Code, c.DiscountType, c.DiscountValue)
	return nil
}

// releaseCoupon undoes a consumed use after a failed checkout, best effort.
func (s *Service) releaseCoupon(ctx context.Context, code string) {
	if err := s.coupons.Release(ctx, code); err != nil {
		log.Printf("⚠️  Failed to release coupon %s after checkout failure: %v", code, err)
	}
}
