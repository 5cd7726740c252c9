package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics holds the service's business metrics.
type StoreMetrics struct {
	// Checkout
	CheckoutsTotal      *prometheus.CounterVec
	CheckoutAmountTotal *prometheus.CounterVec
	CheckoutDiscountSum prometheus.Counter
	CheckoutDuration    prometheus.Histogram
	CouponRedemptions   *prometheus.CounterVec

	// Orders
	OrderStatusChanges *prometheus.CounterVec

	// Interaction
	PollVotesTotal    *prometheus.CounterVec
	CommentsSubmitted prometheus.Counter
	RateLimitedTotal  *prometheus.CounterVec

	// Admin
	AuditFailuresTotal *prometheus.CounterVec

	// Inventory
	LowStockVariants prometheus.Gauge
}

// NewStoreMetrics registers every metric on reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	f := promauto.With(reg)
	return &StoreMetrics{
		CheckoutsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_checkouts_total",
				Help: "Checkout attempts by result",
			},
			[]string{"result"},
		),
		CheckoutAmountTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_checkout_amount_total",
				Help: "Final totals of placed orders in the smallest currency unit",
			},
			[]string{"payment_method"},
		),
		CheckoutDiscountSum: f.NewCounter(
			prometheus.CounterOpts{
				Name: "bcs_checkout_discount_total",
				Help: "Discounts granted at checkout in the smallest currency unit",
			},
		),
		CheckoutDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bcs_checkout_duration_seconds",
				Help:    "Time spent placing an order",
				Buckets: prometheus.DefBuckets,
			},
		),
		CouponRedemptions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_coupon_redemptions_total",
				Help: "Coupons applied to placed orders",
			},
			[]string{"type"},
		),
		OrderStatusChanges: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_order_status_changes_total",
				Help: "Admin order status updates by target status",
			},
			[]string{"status"},
		),
		PollVotesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_poll_votes_total",
				Help: "Poll vote attempts by result",
			},
			[]string{"result"},
		),
		CommentsSubmitted: f.NewCounter(
			prometheus.CounterOpts{
				Name: "bcs_comments_submitted_total",
				Help: "Comments accepted for moderation",
			},
		),
		RateLimitedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
			[]string{"scope"},
		),
		AuditFailuresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bcs_audit_failures_total",
				Help: "Audit log writes that failed",
			},
			[]string{"action"},
		),
		LowStockVariants: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "bcs_low_stock_variants",
				Help: "Variants at or below the low stock threshold",
			},
		),
	}
}

func (m *StoreMetrics) RecordCheckout(paymentMethod string, finalTotal, discount int64) {
	m.CheckoutsTotal.WithLabelValues("success").Inc()
	m.CheckoutAmountTotal.WithLabelValues(paymentMethod).Add(float64(finalTotal))
	m.CheckoutDiscountSum.Add(float64(discount))
}

func (m *StoreMetrics) RecordCheckoutFailure(reason string) {
	m.CheckoutsTotal.WithLabelValues(reason).Inc()
}

func (m *StoreMetrics) RecordCheckoutDuration(seconds float64) {
	m.CheckoutDuration.Observe(seconds)
}

func (m *StoreMetrics) RecordCouponRedemption(couponType string) {
	m.CouponRedemptions.WithLabelValues(couponType).Inc()
}

func (m *StoreMetrics) RecordOrderStatus(status string) {
	m.OrderStatusChanges.WithLabelValues(status).Inc()
}

func (m *StoreMetrics) RecordVote(result string) {
	m.PollVotesTotal.WithLabelValues(result).Inc()
}

func (m *StoreMetrics) RecordComment() {
	m.CommentsSubmitted.Inc()
}

func (m *StoreMetrics) RecordRateLimited(scope string) {
	m.RateLimitedTotal.WithLabelValues(scope).Inc()
}

func (m *StoreMetrics) RecordAuditFailure(action string) {
	m.AuditFailuresTotal.WithLabelValues(action).Inc()
}

func (m *StoreMetrics) SetLowStockVariants(n int) {
	m.LowStockVariants.Set(float64(n))
}
