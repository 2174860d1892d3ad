// Package normalizer turns provider payloads into PaymentEvent values and holds the
// amount threshold shared by the processor, the notifier and the default routing rules.
package normalizer

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// HighValueThreshold is exclusive: amounts strictly greater alert.
var HighValueThreshold = decimal.NewFromInt(10000)

// Amounts are limited to MaxIntegerDigits digits before the decimal point and
// MaxFractionDigits after it.
const (
	MaxIntegerDigits  = 18
	MaxFractionDigits = 30

	maxCoefficientBits = 256
)

// ParseAmount accepts JSON numbers, numeric strings and floats. Anything absent,
// unparseable, negative or out of range becomes zero.
func ParseAmount(v any) decimal.Decimal {
	var (
		amount decimal.Decimal
		err    error
	)

	switch value := v.(type) {
	case json.Number:
		amount, err = decimal.NewFromString(value.String())
	case string:
		amount, err = decimal.NewFromString(strings.TrimSpace(value))
	case float64:
		amount = decimal.NewFromFloat(value)
	case int:
		amount = decimal.NewFromInt(int64(value))
	case int64:
		amount = decimal.NewFromInt(value)
	default:
		return decimal.Zero
	}

	if err != nil || amount.IsNegative() || !inRange(amount) {
		return decimal.Zero
	}
	return amount
}

// inRange checks the digit limits on the coefficient and exponent only. Rendering or
// comparing an amount like 1e900000000 would expand every digit.
func inRange(amount decimal.Decimal) bool {
	exp := int(amount.Exponent())
	if exp < -MaxFractionDigits {
		return false
	}
	coefficient := amount.Coefficient()
	if coefficient.BitLen() > maxCoefficientBits {
		return false
	}
	return len(coefficient.String())+exp <= MaxIntegerDigits
}

func Provider(p models.WebhookPayload) string {
	if provider := p.Provider(); provider != "" {
		return provider
	}
	return models.DefaultProvider
}

func Currency(p models.WebhookPayload) string {
	if currency := strings.ToUpper(p.Currency()); currency != "" {
		return currency
	}
	return models.DefaultCurrency
}

// Received builds the record the receiver stores on ingestion.
func Received(paymentID string, timestamp int64, p models.WebhookPayload, raw []byte) *models.PaymentEvent {
	return &models.PaymentEvent{
		PaymentID:      paymentID,
		Timestamp:      timestamp,
		Provider:       Provider(p),
		Amount:         ParseAmount(p.Amount()),
		Currency:       Currency(p),
		Status:         models.StatusReceived,
		ProviderStatus: p.Status(),
		RawPayload:     datatypes.JSON(raw),
	}
}

// Processed builds the canonical event for a queued payload. The raw payload is not
// copied onto the canonical event.
func Processed(msg models.ProcessingMessage, p models.WebhookPayload, now time.Time) models.PaymentEvent {
	processedAt := now.UnixMilli()
	return models.PaymentEvent{
		PaymentID:      msg.PaymentID,
		Timestamp:      msg.Timestamp,
		Provider:       Provider(p),
		Amount:         ParseAmount(p.Amount()),
		Currency:       Currency(p),
		Status:         models.StatusProcessed,
		ProviderStatus: p.Status(),
		ProcessedAt:    &processedAt,
	}
}

func IsHighValue(amount decimal.Decimal) bool {
	return amount.GreaterThan(HighValueThreshold)
}

func IsFailed(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), string(models.StatusFailed))
}

// ShouldNotify is the notification trigger: high value, or a provider reported failure.
func ShouldNotify(amount decimal.Decimal, status string) bool {
	return IsHighValue(amount) || IsFailed(status)
}

// EventShouldNotify applies ShouldNotify to a canonical event, looking at both the
// pipeline status and the provider's original status.
func EventShouldNotify(e models.PaymentEvent) bool {
	return ShouldNotify(e.Amount, e.ProviderStatus) || IsFailed(string(e.Status))
}
