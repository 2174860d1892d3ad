package alerting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/normalizer"
	"github.com/sirupsen/logrus"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Compose renders the operator alert for event. A failed payment gets the urgent
// subject; anything else is reported as high value.
func Compose(event models.PaymentEvent) models.Alert {
	amount := event.Amount.StringFixed(2)

	subject := fmt.Sprintf("High-Value Payment Alert: $%s", amount)
	if normalizer.IsFailed(event.ProviderStatus) || normalizer.IsFailed(string(event.Status)) {
		subject = fmt.Sprintf("URGENT: Failed Payment Alert - $%s", amount)
	}

	at := event.Timestamp
	if event.ProcessedAt != nil {
		at = *event.ProcessedAt
	}

	var body strings.Builder
	body.WriteString("Payment Alert\n\n")
	fmt.Fprintf(&body, "Payment ID: %s\n", event.PaymentID)
	fmt.Fprintf(&body, "Provider: %s\n", event.Provider)
	fmt.Fprintf(&body, "Amount: %s\n", amount)
	fmt.Fprintf(&body, "Currency: %s\n", event.Currency)
	fmt.Fprintf(&body, "Status: %s\n", event.Status)
	if event.ProviderStatus != "" {
		fmt.Fprintf(&body, "Provider Status: %s\n", event.ProviderStatus)
	}
	fmt.Fprintf(&body, "Timestamp: %s\n", time.UnixMilli(at).UTC().Format(isoMillis))

	return models.Alert{
		Subject:   subject,
		Body:      body.String(),
		PaymentID: event.PaymentID,
	}
}

// Publisher is satisfied by *publisher.KafkaPublisher.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// TopicChannel publishes alerts as JSON to a Kafka topic.
type TopicChannel struct {
	Publisher Publisher
	Topic     string
}

func NewTopicChannel(p Publisher, topic string) *TopicChannel {
	return &TopicChannel{Publisher: p, Topic: topic}
}

func (c *TopicChannel) Send(ctx context.Context, alert models.Alert) error {
	if err := c.Publisher.Publish(ctx, c.Topic, alert.PaymentID, alert); err != nil {
		return fmt.Errorf("error publishing alert for %s: %w", alert.PaymentID, err)
	}
	return nil
}

// LogChannel writes alerts to the log. Used when no alert topic is wired.
type LogChannel struct{}

func (LogChannel) Send(_ context.Context, alert models.Alert) error {
	logrus.WithFields(logrus.Fields{
		"payment_id": alert.PaymentID,
		"subject":    alert.Subject,
	}).Warn(alert.Body)
	return nil
}
