package models_test

import (
	"encoding/json"
	"testing"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentEvent_AmountIsJSONNumber(t *testing.T) {
	processedAt := int64(1700000000500)
	event := models.PaymentEvent{
		PaymentID:   "pay_1",
		Timestamp:   1700000000000,
		Provider:    "stripe",
		Amount:      decimal.RequireFromString("10000.01"),
		Currency:    "USD",
		Status:      models.StatusProcessed,
		ProcessedAt: &processedAt,
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"paymentId": "pay_1",
		"timestamp": 1700000000000,
		"provider": "stripe",
		"amount": 10000.01,
		"currency": "USD",
		"status": "processed",
		"processedAt": 1700000000500
	}`, string(raw))

	var decoded models.PaymentEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, event.Amount.Equal(decoded.Amount))
	assert.Equal(t, event.Key(), decoded.Key())
}

func TestPaymentEvent_DomainEventDetailKeepsNumericAmount(t *testing.T) {
	raw, err := json.Marshal(models.DomainEvent{Detail: models.PaymentEvent{PaymentID: "pay_2", Amount: decimal.NewFromInt(50)}})
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"amount":50`)
	assert.NotContains(t, string(raw), `"amount":"50"`)
}
