package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.ObserveCheckout(OutcomePartial, 120*time.Millisecond)
	m.ObserveCheckout(OutcomeCompleted, 80*time.Millisecond)
	m.AddLines(LineSucceeded, 2)
	m.AddLines(LineSkipped, 1)
	m.AddLines(LineFailed, 0)
	m.IncNotification(NotificationSent)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := counterValue(mfs, "checkout_total", "outcome", OutcomePartial)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = counterValue(mfs, "checkout_line_total", "result", LineSucceeded)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	_, err = counterValue(mfs, "checkout_line_total", "result", LineFailed)
	assert.Error(t, err)

	got, err = counterValue(mfs, "notification_total", "result", NotificationSent)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	hist := findMetricFamily(mfs, "checkout_duration_seconds")
	require.NotNil(t, hist)
	assert.Equal(t, uint64(2), hist.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestCheckoutMetrics_NilSafe(t *testing.T) {
	var nilMetrics *CheckoutMetrics
	assert.NotPanics(t, func() {
		nilMetrics.ObserveCheckout(OutcomeFailed, time.Second)
		nilMetrics.AddLines(LineFailed, 1)
		nilMetrics.IncNotification(NotificationFailed)
	})

	unregistered := NewCheckoutMetrics(nil)
	assert.NotPanics(t, func() {
		unregistered.ObserveCheckout(OutcomeError, time.Second)
	})
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, lp := range metric.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
