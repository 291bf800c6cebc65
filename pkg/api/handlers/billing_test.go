package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/billing"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

// setupBillingTest creates a test database and billing handler
func setupBillingTest(t *testing.T) (*ent.Client, *BillingHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	cfg := &billing.StripeConfig{
		SecretKey:       "sk_test_xxx",
		WebhookSecret:   "whsec_xxx",
		Price50Monthly:  "price_50m",
		Price50Annual:   "price_50a",
		Price100Monthly: "price_100m",
		Price100Annual:  "price_100a",
		Price500Monthly: "price_500m",
		Price500Annual:  "price_500a",
		SuccessURL:      "https://app.vivasaude.com.br/sucesso",
		CancelURL:       "https://app.vivasaude.com.br/planos",
		BaseURL:         "https://app.vivasaude.com.br",
	}
	svc := billing.NewService(client, coupons.NewService(client), cfg)
	return client, NewBillingHandler(svc, nil)
}

func seedBillingPlans(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	for _, p := range []struct {
		key   string
		name  string
		price float64
	}{
		{"50", "Essencial", 50},
		{"100", "Profissional", 100},
		{"500", "Clínica", 500},
	} {
		_, err := client.Plan.Create().
			SetKey(p.key).
			SetName(p.name).
			SetMonthlyPrice(p.price).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestCheckoutEndpoint_InvalidPlanIs400(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	e := echo.New()
	body := `{"plan_key":"200-monthly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("user_role", "professional")

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutEndpoint_MissingUserIs401(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	e := echo.New()
	body := `{"plan_key":"100-monthly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPricePreviewEndpoint(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	seedBillingPlans(t, client)

	e := echo.New()
	body := `{"plan_key":"100","cycle":"annual"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/price-preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("user_role", "professional")

	require.NoError(t, handler.PricePreview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PricePreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 74.0, resp.DisplayPrice)
	assert.Equal(t, 100.0, resp.OriginalPrice)
	assert.Equal(t, 312.0, resp.AnnualSavings)
	assert.True(t, resp.CycleDiscounted)
}

func TestPricePreviewEndpoint_UnknownPlanIs400(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	seedBillingPlans(t, client)

	e := echo.New()
	body := `{"plan_key":"999","cycle":"monthly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/price-preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PricePreview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricePreviewEndpoint_InvalidCycleRejected(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	e := echo.New()
	body := `{"plan_key":"100","cycle":"weekly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/price-preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PricePreview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPricingEndpoint(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	seedBillingPlans(t, client)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetPricing(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 3)
	assert.Equal(t, "50", resp.Plans[0].Key)
}

func TestWebhookEndpoint_BadSignatureRejected(t *testing.T) {
	client, handler := setupBillingTest(t)
	defer client.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "bogus")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Webhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
