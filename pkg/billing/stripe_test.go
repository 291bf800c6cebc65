package billing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/pkg/pricing"
)

func testConfig() *StripeConfig {
	return &StripeConfig{
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
}

func TestPriceIDForPlan(t *testing.T) {
	s := NewService(nil, nil, testConfig())

	tests := []struct {
		planKey string
		want    string
		wantErr bool
	}{
		{"50-monthly", "price_50m", false},
		{"50-annual", "price_50a", false},
		{"100-monthly", "price_100m", false},
		{"100-annual", "price_100a", false},
		{"500-monthly", "price_500m", false},
		{"500-annual", "price_500a", false},
		{"200-monthly", "", true},
		{"100-weekly", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.planKey, func(t *testing.T) {
			got, err := s.priceIDForPlan(tt.planKey)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlan)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceIDForPlan_UnconfiguredPriceRejected(t *testing.T) {
	cfg := testConfig()
	cfg.Price500Annual = ""
	s := NewService(nil, nil, cfg)

	_, err := s.priceIDForPlan("500-annual")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestSplitPlanKey(t *testing.T) {
	tier, cycle, err := SplitPlanKey("100-annual")
	require.NoError(t, err)
	assert.Equal(t, "100", tier)
	assert.Equal(t, pricing.CycleAnnual, cycle)

	tier, cycle, err = SplitPlanKey("50-monthly")
	require.NoError(t, err)
	assert.Equal(t, "50", tier)
	assert.Equal(t, pricing.CycleMonthly, cycle)

	_, _, err = SplitPlanKey("100")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	_, _, err = SplitPlanKey("100-weekly")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestUpstreamError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &UpstreamError{Op: "checkout session create", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "checkout session create")

	var ue *UpstreamError
	assert.True(t, errors.As(error(err), &ue))
}

func TestBuildSubscriptionActivatedEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionActivatedEmail("João", "100-annual", "https://app.vivasaude.com.br")

	assert.Contains(t, subject, "ativa")
	assert.Contains(t, html, "João")
	assert.Contains(t, html, "100-annual")
	assert.Contains(t, plain, "João")
	assert.Contains(t, plain, "100-annual")
	assert.NotEmpty(t, subject)
}

func TestBuildSubscriptionCancelledEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionCancelledEmail("Maria", "https://app.vivasaude.com.br")

	assert.Contains(t, subject, "cancelada")
	assert.Contains(t, html, "Maria")
	assert.Contains(t, plain, "Maria")
	assert.NotEmpty(t, subject)
}

func TestBuildSubscriptionRenewedEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionRenewedEmail("Ana", "500-monthly", "2026-10-01", "https://app.vivasaude.com.br")

	assert.Contains(t, subject, "renovada")
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "500-monthly")
	assert.Contains(t, html, "2026-10-01")
	assert.Contains(t, plain, "2026-10-01")
	assert.NotEmpty(t, subject)
}

func TestBuildPaymentFailedEmail(t *testing.T) {
	subject, html, plain := buildPaymentFailedEmail("Carlos", "https://app.vivasaude.com.br")

	assert.Contains(t, subject, "pagamento")
	assert.Contains(t, html, "Carlos")
	assert.Contains(t, plain, "Carlos")
	assert.NotEmpty(t, subject)
}
