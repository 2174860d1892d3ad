package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_received_total",
			Help: "Inbound webhook requests by outcome",
		},
		[]string{"outcome"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webhook_payment_amounts",
			Help:    "Distribution of processed payment amounts",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"currency"},
	)

	PaymentsProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Processed payments by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_notifications_total",
			Help: "Notifier decisions by outcome",
		},
		[]string{"outcome"},
	)

	RoutedEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routed_events_total",
			Help: "Bus events delivered per routing rule and target",
		},
		[]string{"rule", "target"},
	)

	QueueMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_total",
			Help: "Consumed queue messages by queue and outcome",
		},
		[]string{"queue", "outcome"},
	)

	BatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "queue_batch_duration_seconds",
			Help:    "Time spent handling one batch",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"queue"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			WebhooksReceivedTotal,
			PaymentAmounts,
			PaymentsProcessedTotal,
			NotificationsTotal,
			RoutedEventsTotal,
			QueueMessagesTotal,
			BatchDuration,
		)
	})
}
