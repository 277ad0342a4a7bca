package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	CycleCount            prometheus.Counter
	RemindersSent         prometheus.Counter
	ReminderFailures      prometheus.Counter
	EmailRemindersSent    prometheus.Counter
	ConfirmationsReceived prometheus.Counter
	ConflictsDetected     prometheus.Counter
	ProcessingTime        prometheus.Histogram
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		CycleCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appointment_reminder_cycle_count",
			Help: "Total number of reminder processing cycles",
		}),
		RemindersSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appointment_reminder_sms_successes",
			Help: "Total number of SMS reminders sent",
		}),
		ReminderFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appointment_reminder_failures",
			Help: "Total number of reminder dispatch failures",
		}),
		EmailRemindersSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appointment_reminder_email_successes",
			Help: "Total number of email reminders sent",
		}),
		ConfirmationsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appointment_reminder_confirmations_received",
			Help: "Total number of inbound confirmation messages processed",
		}),
		ConflictsDetected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "appointment_reminder_conflicts_detected",
			Help: "Total number of scheduling conflicts detected",
		}),
		ProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "appointment_reminder_processing_duration_seconds",
			Help:    "Time spent processing reminder cycles",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
