package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

// setupCouponTest creates a test database and coupon handler
func setupCouponTest(t *testing.T) (*ent.Client, *CouponHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	handler := NewCouponHandler(coupons.NewService(client), audit.NewService(client), nil)
	return client, handler
}

func seedCoupon(t *testing.T, client *ent.Client, code string, mutate func(*ent.CouponCreate)) {
	builder := client.Coupon.Create().
		SetCode(code).
		SetDiscountType(coupon.DiscountTypePercentage).
		SetDiscountValue(10).
		SetAudience(coupon.AudienceAll).
		SetValidFrom(time.Now().Add(-time.Hour))
	if mutate != nil {
		mutate(builder)
	}
	_, err := builder.Save(context.Background())
	require.NoError(t, err)
}

func doValidate(handler *CouponHandler, body, role string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coupons/validate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("user_role", role)
	_ = handler.Validate(c)
	return rec
}

func TestValidateEndpoint_Valid(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	seedCoupon(t, client, "DESC10", nil)

	rec := doValidate(handler, `{"code":"desc10"}`, "patient")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ValidateCouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	require.NotNil(t, resp.Coupon)
	assert.Equal(t, "DESC10", resp.Coupon.Code)
	assert.Equal(t, "percentage", resp.Coupon.DiscountType)
	assert.Equal(t, 10.0, resp.Coupon.DiscountValue)
}

func TestValidateEndpoint_NegativeVerdictIs200(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	rec := doValidate(handler, `{"code":"MISSING"}`, "patient")
	require.Equal(t, http.StatusOK, rec.Code, "a negative verdict is a successful request")

	var resp models.ValidateCouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Nil(t, resp.Coupon)
	assert.NotEmpty(t, resp.Error)
}

func TestValidateEndpoint_AudienceMismatch(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	seedCoupon(t, client, "SOPRO", func(b *ent.CouponCreate) {
		b.SetAudience(coupon.AudienceProfessionals)
	})

	rec := doValidate(handler, `{"code":"SOPRO"}`, "patient")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ValidateCouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)

	rec = doValidate(handler, `{"code":"SOPRO"}`, "professional")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestValidateEndpoint_ValidationNeverConsumes(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	seedCoupon(t, client, "CAPPED", func(b *ent.CouponCreate) {
		b.SetMaxUses(2)
	})

	for i := 0; i < 5; i++ {
		rec := doValidate(handler, `{"code":"CAPPED"}`, "patient")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	coup, err := client.Coupon.Query().Where(coupon.CodeEQ("CAPPED")).Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, coup.CurrentUses)
}

func TestCreateEndpoint_ProfessionalOwnsCoupon(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	u, err := client.User.Create().
		SetEmail("pro@example.com").
		SetPasswordHash("x").
		SetName("Pro").
		SetRole("professional").
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	body := `{"code":"MEUCUPOM","discount_type":"fixed","discount_value":25}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coupons", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", u.ID)
	c.Set("user_role", "professional")

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.CouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "MEUCUPOM", resp.Code)
	assert.Equal(t, "fixed", resp.DiscountType)
}

func TestCreateEndpoint_PatientForbidden(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	e := echo.New()
	body := `{"code":"NAOPODE","discount_type":"fixed","discount_value":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coupons", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("user_role", "patient")

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminListAndRetire(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	seedCoupon(t, client, "UM", nil)
	seedCoupon(t, client, "DOIS", nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/coupons", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AdminList(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.CouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)

	// Retire one of them
	coup, err := client.Coupon.Query().Where(coupon.CodeEQ("UM")).Only(context.Background())
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/coupons/"+strconv.Itoa(coup.ID), nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(coup.ID))
	c.Set("user_id", 1)

	require.NoError(t, handler.AdminRetire(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var retired models.CouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &retired))
	assert.False(t, retired.Active)
}

func TestAdminRetire_UnknownCoupon(t *testing.T) {
	client, handler := setupCouponTest(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/coupons/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, handler.AdminRetire(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerdictLabel(t *testing.T) {
	assert.Equal(t, "valid", verdictLabel(nil))
	assert.Equal(t, "not_found", verdictLabel(coupons.ErrNotFound))
	assert.Equal(t, "expired", verdictLabel(coupons.ErrExpired))
	assert.Equal(t, "limit_reached", verdictLabel(coupons.ErrLimitReached))
	assert.Equal(t, "error", verdictLabel(assert.AnError))
}
