package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/vivasaude/vivasaude/pkg/api/errors"
	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/metrics"
	"github.com/vivasaude/vivasaude/pkg/models"
)

// CouponHandler handles coupon validation and management endpoints
type CouponHandler struct {
	coupons     *coupons.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *coupons.Service, auditLogger *audit.Service, m *metrics.Metrics) *CouponHandler {
	return &CouponHandler{
		coupons:     couponService,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// callerAudience resolves the coupon audience for the request: the claim
// frozen at token issuance when present, the role mapping otherwise.
func callerAudience(c echo.Context) coupons.Audience {
	if a, ok := c.Get("user_audience").(string); ok && a != "" {
		return coupons.Audience(a)
	}
	role, _ := c.Get("user_role").(string)
	return coupons.AudienceForRole(role)
}

// verdictLabel maps a validation verdict to its wire and metric label.
func verdictLabel(err error) string {
	switch err {
	case nil:
		return "valid"
	case coupons.ErrInvalidFormat:
		return "invalid_format"
	case coupons.ErrNotFound:
		return "not_found"
	case coupons.ErrInactive:
		return "inactive"
	case coupons.ErrNotYetValid:
		return "not_yet_valid"
	case coupons.ErrExpired:
		return "expired"
	case coupons.ErrLimitReached:
		return "limit_reached"
	case coupons.ErrAudienceMismatch:
		return "audience_mismatch"
	default:
		return "error"
	}
}

// Validate checks a coupon code for the calling user's audience. The verdict
// is advisory: a valid answer here carries no reservation, checkout decides.
func (h *CouponHandler) Validate(c echo.Context) error {
	var req models.ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	role, _ := c.Get("user_role").(string)
	audience := callerAudience(c)
	if req.TargetAudience != "" && role == "admin" {
		// Admins may probe any audience
		audience = coupons.Audience(req.TargetAudience)
	}

	coup, err := h.coupons.Validate(ctx, req.Code, audience)
	if h.metrics != nil {
		h.metrics.RecordCouponValidation(verdictLabel(err))
	}
	if err != nil {
		if coupons.IsVerdict(err) {
			// An unusable coupon is a negative verdict, not a failed request
			return c.JSON(http.StatusOK, models.ValidateCouponResponse{
				Valid: false,
				Error: err.Error(),
			})
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.ValidateCouponResponse{
		Valid:  true,
		Coupon: coupons.Info(coup),
	})
}

// Create stores a new coupon owned by the calling professional
func (h *CouponHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "unauthorized",
		})
	}

	role, _ := c.Get("user_role").(string)
	if role != "professional" && role != "admin" {
		return errors.ForbiddenError(c, "only professionals can issue coupons")
	}

	var req models.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	coup, err := h.coupons.Create(ctx, req, &userID)
	if err != nil {
		if err == coupons.ErrInvalidFormat {
			return errors.BadRequestError(c, "Coupon code must be 1-20 uppercase letters or digits")
		}
		return errors.ConflictError(c, err.Error())
	}

	go h.auditLogger.LogCouponCreated(context.Background(), userID, coup.Code)

	return c.JSON(http.StatusCreated, coupons.Response(coup))
}

// AdminCreate stores a new platform coupon (no owner)
func (h *CouponHandler) AdminCreate(c echo.Context) error {
	var req models.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	coup, err := h.coupons.Create(ctx, req, nil)
	if err != nil {
		if err == coupons.ErrInvalidFormat {
			return errors.BadRequestError(c, "Coupon code must be 1-20 uppercase letters or digits")
		}
		return errors.ConflictError(c, err.Error())
	}

	userID, _ := c.Get("user_id").(int)
	go h.auditLogger.LogCouponCreated(context.Background(), userID, coup.Code)

	return c.JSON(http.StatusCreated, coupons.Response(coup))
}

// AdminList returns all coupons, newest first
func (h *CouponHandler) AdminList(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.coupons.List(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	resp := make([]models.CouponResponse, 0, len(list))
	for _, coup := range list {
		resp = append(resp, coupons.Response(coup))
	}

	return c.JSON(http.StatusOK, resp)
}

// AdminRetire deactivates a coupon while keeping its row for audit history
func (h *CouponHandler) AdminRetire(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequestError(c, "Invalid coupon ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	coup, err := h.coupons.Retire(ctx, id)
	if err != nil {
		if err == coupons.ErrNotFound {
			return errors.NotFoundError(c, "coupon")
		}
		return errors.DatabaseError(c, err)
	}

	userID, _ := c.Get("user_id").(int)
	go h.auditLogger.LogCouponRetired(context.Background(), userID, coup.Code)

	return c.JSON(http.StatusOK, coupons.Response(coup))
}
