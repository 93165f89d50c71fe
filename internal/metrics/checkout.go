package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeCompleted = "completed"
	OutcomePartial   = "partial"
	OutcomeFailed    = "failed"
	OutcomeError     = "error"

	LineSucceeded = "succeeded"
	LineFailed    = "failed"
	LineSkipped   = "skipped"

	NotificationSent      = "sent"
	NotificationFailed    = "failed"
	NotificationPublished = "published"
)

// CheckoutMetrics 結帳與通知的 Prometheus 指標；nil 時所有方法皆為 no-op
type CheckoutMetrics struct {
	checkouts     *prometheus.CounterVec
	duration      prometheus.Histogram
	lines         *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout executions in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	lines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_line_total",
		Help: "Cart lines processed during checkout by result.",
	}, []string{"result"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_total",
		Help: "Purchase notifications by result.",
	}, []string{"result"})
	reg.MustRegister(checkouts, duration, lines, notifications)
	return &CheckoutMetrics{
		checkouts:     checkouts,
		duration:      duration,
		lines:         lines,
		notifications: notifications,
	}
}

func (m *CheckoutMetrics) ObserveCheckout(outcome string, elapsed time.Duration) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *CheckoutMetrics) AddLines(result string, n int) {
	if m == nil || m.lines == nil || n <= 0 {
		return
	}
	m.lines.WithLabelValues(result).Add(float64(n))
}

func (m *CheckoutMetrics) IncNotification(result string) {
	if m == nil || m.notifications == nil {
		return
	}
	m.notifications.WithLabelValues(result).Inc()
}
