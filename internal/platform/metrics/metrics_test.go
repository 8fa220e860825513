package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncRegistrationCreated("live")
	m.IncRegistrationCreated("live")
	m.IncRegistrationCreated("mock")
	m.IncRegistrationRejected("validation")
	m.IncNotificationSent()
	m.IncNotificationFailed()
	m.IncNotificationDropped()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegistrationsCreated.WithLabelValues("live")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationsCreated.WithLabelValues("mock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationsRejected.WithLabelValues("validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsFailed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsDropped))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncRegistrationCreated("live")
		m.IncRegistrationRejected("persistence")
		m.IncNotificationSent()
		m.IncNotificationFailed()
		m.IncNotificationDropped()
	})
}
