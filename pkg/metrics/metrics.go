package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	UsersRegistered   prometheus.Counter
	LoginAttempts     *prometheus.CounterVec
	CouponValidations *prometheus.CounterVec
	CheckoutSessions  *prometheus.CounterVec
	SubscriptionsSold *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		CouponValidations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coupon_validations_total",
				Help: "Total number of coupon validation requests",
			},
			[]string{"verdict"}, // valid, not_found, expired, limit_reached, ...
		),
		CheckoutSessions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_sessions_total",
				Help: "Total number of checkout session attempts",
			},
			[]string{"status"}, // created, invalid_plan, upstream_error
		),
		SubscriptionsSold: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscriptions_sold_total",
				Help: "Total number of subscriptions sold",
			},
			[]string{"plan"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/coupons/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordUserRegistered increments users registered counter
func (m *Metrics) RecordUserRegistered() {
	m.UsersRegistered.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordCouponValidation increments the coupon validation counter per verdict
func (m *Metrics) RecordCouponValidation(verdict string) {
	m.CouponValidations.WithLabelValues(verdict).Inc()
}

// RecordCheckoutSession increments the checkout session counter per outcome
func (m *Metrics) RecordCheckoutSession(status string) {
	m.CheckoutSessions.WithLabelValues(status).Inc()
}

// RecordSubscriptionSold increments subscriptions sold counter
func (m *Metrics) RecordSubscriptionSold(plan string) {
	m.SubscriptionsSold.WithLabelValues(plan).Inc()
}
