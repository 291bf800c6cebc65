package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/pkg/models"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpstreamError_SurfacesProviderMessage(t *testing.T) {
	c, rec := newTestContext()

	providerErr := fmt.Errorf("No such price: 'price_xyz'")
	require.NoError(t, UpstreamError(c, providerErr))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_error", resp.Error)
	assert.Contains(t, resp.Message, "No such price: 'price_xyz'")
}

func TestUpstreamError_UnwrapsToProviderMessage(t *testing.T) {
	c, rec := newTestContext()

	wrapped := fmt.Errorf("stripe checkout session create failed: %w",
		fmt.Errorf("No such coupon: 'DESC10'"))
	require.NoError(t, UpstreamError(c, wrapped))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No such coupon: 'DESC10'", resp.Message)
}

func TestUpstreamError_NilError(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, UpstreamError(c, nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestGenericHelpersStayGeneric(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, DatabaseError(c, fmt.Errorf("pq: connection refused on 10.0.0.5")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Message, "10.0.0.5")
}
