package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 120 requests per minute (2 per second) with burst of 1
	rl := NewRateLimiter(120, 1)

	limiter := rl.GetLimiter("192.168.1.1")

	assert.True(t, limiter.Allow(), "First request should be allowed")
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	// Wait for token refill (120 req/min = 2 req/sec = 0.5 seconds per token)
	time.Sleep(600 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Third request should be allowed after waiting")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(2, 1)

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow(), "IP 1 first request should be allowed")
	assert.True(t, limiter2.Allow(), "IP 2 first request should be allowed")

	assert.False(t, limiter1.Allow(), "IP 1 second request should be blocked")
	assert.False(t, limiter2.Allow(), "IP 2 second request should be blocked")
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(2, 1)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	wrappedHandler := rl.RateLimitMiddleware()(handler)

	req1 := httptest.NewRequest(http.MethodGet, "/test", nil)
	req1.RemoteAddr = "192.168.1.1:12345"
	rec1 := httptest.NewRecorder()
	c1 := e.NewContext(req1, rec1)

	err := wrappedHandler(c1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec1.Code)

	// Second request from same IP should be rate limited
	req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
	req2.RemoteAddr = "192.168.1.1:12346"
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req2, rec2)

	err = wrappedHandler(c2)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
}
