package service

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/alerting"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/logger"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/normalizer"
	"github.com/sirupsen/logrus"
)

// NotifierService alerts operators about high-value and failed payments.
type NotifierService struct {
	Repo   PaymentEventRepo
	Alerts AlertChannel
}

func NewNotifierService(repo PaymentEventRepo, alerts AlertChannel) *NotifierService {
	return &NotifierService{Repo: repo, Alerts: alerts}
}

// Notify looks up the stored record for event and sends an alert when the event is
// high value or failed. A missing record is logged and skipped. Duplicate deliveries
// produce duplicate alerts.
func (s *NotifierService) Notify(ctx context.Context, event models.PaymentEvent) error {
	ctx = logger.WithFields(ctx, logrus.Fields{"payment_id": event.PaymentID, "timestamp_ms": event.Timestamp})
	log := logger.FromContext(ctx)

	record, err := s.Repo.GetByKey(ctx, event.Key())
	if errors.Is(err, models.ErrNotFound) {
		metrics.NotificationsTotal.WithLabelValues("record_missing").Inc()
		log.Warn("payment record not found, skipping notification")
		return nil
	}
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("store_error").Inc()
		return wrapErr(ctx, "loading payment record", err)
	}

	if !normalizer.EventShouldNotify(event) {
		metrics.NotificationsTotal.WithLabelValues("not_required").Inc()
		log.Debug("payment does not require an alert")
		return nil
	}

	view := *record
	view.Amount = event.Amount
	if event.ProviderStatus != "" {
		view.ProviderStatus = event.ProviderStatus
	}
	if view.ProcessedAt == nil {
		view.ProcessedAt = event.ProcessedAt
	}

	alert := alerting.Compose(view)
	if err := s.Alerts.Send(ctx, alert); err != nil {
		metrics.NotificationsTotal.WithLabelValues("send_error").Inc()
		return wrapErr(ctx, "sending alert", err)
	}

	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	log.WithField("subject", alert.Subject).Info("alert sent")
	return nil
}
