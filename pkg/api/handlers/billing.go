package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/vivasaude/vivasaude/pkg/api/errors"
	"github.com/vivasaude/vivasaude/pkg/billing"
	"github.com/vivasaude/vivasaude/pkg/metrics"
	"github.com/vivasaude/vivasaude/pkg/models"
)

// BillingHandler handles checkout, pricing and Stripe webhook endpoints
type BillingHandler struct {
	billing   *billing.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service, m *metrics.Metrics) *BillingHandler {
	return &BillingHandler{
		billing:   billingService,
		metrics:   m,
		validator: validator.New(),
	}
}

// Checkout creates a Stripe checkout session for the calling professional
func (h *BillingHandler) Checkout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	resp, err := h.billing.CreateCheckoutSession(ctx, userID, req.PlanKey, req.CouponCode)
	if err != nil {
		var upstream *billing.UpstreamError
		switch {
		case errors.Is(err, billing.ErrInvalidPlan):
			if h.metrics != nil {
				h.metrics.RecordCheckoutSession("invalid_plan")
			}
			return apierrors.BadRequestError(c, "Unknown plan")
		case errors.As(err, &upstream):
			if h.metrics != nil {
				h.metrics.RecordCheckoutSession("upstream_error")
			}
			return apierrors.UpstreamError(c, err)
		default:
			return apierrors.InternalError(c, err)
		}
	}

	if h.metrics != nil {
		h.metrics.RecordCheckoutSession("created")
	}

	return c.JSON(http.StatusOK, resp)
}

// PricePreview computes the display price for a plan, cycle and optional coupon
func (h *BillingHandler) PricePreview(c echo.Context) error {
	var req models.PricePreviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.billing.PricePreview(ctx, callerAudience(c), req)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidPlan) {
			return apierrors.BadRequestError(c, "Unknown plan")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetPricing returns the public pricing catalog
func (h *BillingHandler) GetPricing(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.billing.GetPricing(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Webhook processes Stripe webhook events
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apierrors.BadRequestError(c, "Failed to read request body")
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if err := h.billing.HandleWebhook(ctx, payload, signature); err != nil {
		// Stripe retries on non-2xx, so signal failure for transient errors
		return apierrors.BadRequestError(c, "Webhook processing failed")
	}

	return c.JSON(http.StatusOK, map[string]string{"received": "true"})
}
