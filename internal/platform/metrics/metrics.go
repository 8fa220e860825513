package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RegistrationsCreated  *prometheus.CounterVec
	RegistrationsRejected *prometheus.CounterVec
	NotificationsSent     prometheus.Counter
	NotificationsFailed   prometheus.Counter
	NotificationsDropped  prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RegistrationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fest_registrations_created_total",
			Help: "Registrations accepted, by persistence mode",
		}, []string{"mode"}),
		RegistrationsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fest_registrations_rejected_total",
			Help: "Registrations refused, by reason",
		}, []string{"reason"}),
		NotificationsSent: f.NewCounter(prometheus.CounterOpts{
			Name: "fest_notifications_sent_total",
			Help: "Confirmation emails delivered to the mail provider",
		}),
		NotificationsFailed: f.NewCounter(prometheus.CounterOpts{
			Name: "fest_notifications_failed_total",
			Help: "Confirmation emails that could not be sent",
		}),
		NotificationsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "fest_notifications_dropped_total",
			Help: "Confirmation emails dropped because the queue was full or closed",
		}),
	}
}

// IncRegistrationCreated counts an accepted registration.
func (m *Metrics) IncRegistrationCreated(mode string) {
	if m == nil {
		return
	}
	m.RegistrationsCreated.WithLabelValues(mode).Inc()
}

// IncRegistrationRejected counts a refused registration ("validation", "catalog" or "persistence").
func (m *Metrics) IncRegistrationRejected(reason string) {
	if m == nil {
		return
	}
	m.RegistrationsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncNotificationSent() {
	if m == nil {
		return
	}
	m.NotificationsSent.Inc()
}

func (m *Metrics) IncNotificationFailed() {
	if m == nil {
		return
	}
	m.NotificationsFailed.Inc()
}

func (m *Metrics) IncNotificationDropped() {
	if m == nil {
		return
	}
	m.NotificationsDropped.Inc()
}
