package normalizer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/normalizer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"json number", json.Number("15000"), "15000"},
		{"json decimal", json.Number("10000.01"), "10000.01"},
		{"numeric string", " 42.50 ", "42.5"},
		{"float", 12.25, "12.25"},
		{"int", 7, "7"},
		{"absent", nil, "0"},
		{"garbage string", "twelve", "0"},
		{"negative", json.Number("-5"), "0"},
		{"bool", true, "0"},
		{"largest integer part", json.Number("999999999999999999.99"), "999999999999999999.99"},
		{"fraction at limit", json.Number("0.000000000000000000000000000001"), "0.000000000000000000000000000001"},
		{"integer part too long", json.Number("1000000000000000000"), "0"},
		{"huge exponent", json.Number("1e900000000"), "0"},
		{"huge negative exponent", json.Number("1e-900000000"), "0"},
		{"huge exponent string", "5E2000000", "0"},
		{"fraction too long", json.Number("0.0000000000000000000000000000001"), "0"},
		{"huge float", 1e300, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tc.want).Equal(normalizer.ParseAmount(tc.in)), "got %s", normalizer.ParseAmount(tc.in))
		})
	}
}

func TestProcessed_Defaults(t *testing.T) {
	payload, err := models.ParseWebhookPayload([]byte(`{"paymentId":"pay_9"}`))
	require.NoError(t, err)
	now := time.UnixMilli(1700000000123)

	event := normalizer.Processed(models.ProcessingMessage{PaymentID: "pay_9", Timestamp: 1700000000000}, payload, now)

	assert.Equal(t, "unknown", event.Provider)
	assert.True(t, event.Amount.IsZero())
	assert.Equal(t, "USD", event.Currency)
	assert.Equal(t, models.StatusProcessed, event.Status)
	require.NotNil(t, event.ProcessedAt)
	assert.Equal(t, int64(1700000000123), *event.ProcessedAt)
	assert.Equal(t, int64(1700000000000), event.Timestamp)
	assert.Nil(t, event.RawPayload)
}

func TestReceived_KeepsRawPayloadAndNormalizes(t *testing.T) {
	raw := []byte(`{"paymentId":"pay_1","provider":"stripe","amount":"15000","currency":"eur","status":"succeeded"}`)
	payload, err := models.ParseWebhookPayload(raw)
	require.NoError(t, err)

	record := normalizer.Received("pay_1", 1700000000000, payload, raw)

	assert.Equal(t, models.StatusReceived, record.Status)
	assert.Equal(t, "stripe", record.Provider)
	assert.Equal(t, "EUR", record.Currency)
	assert.Equal(t, "succeeded", record.ProviderStatus)
	assert.True(t, decimal.NewFromInt(15000).Equal(record.Amount))
	assert.JSONEq(t, string(raw), string(record.RawPayload))
	assert.Nil(t, record.ProcessedAt)
}

func TestShouldNotify(t *testing.T) {
	assert.True(t, normalizer.ShouldNotify(decimal.RequireFromString("10000.01"), "succeeded"))
	assert.False(t, normalizer.ShouldNotify(decimal.NewFromInt(10000), "succeeded"))
	assert.True(t, normalizer.ShouldNotify(decimal.NewFromInt(50), "failed"))
	assert.True(t, normalizer.ShouldNotify(decimal.NewFromInt(50), "FAILED"))
	assert.False(t, normalizer.ShouldNotify(decimal.Zero, ""))
}

func TestEventShouldNotify(t *testing.T) {
	assert.True(t, normalizer.EventShouldNotify(models.PaymentEvent{Amount: decimal.NewFromInt(50), Status: models.StatusProcessed, ProviderStatus: "failed"}))
	assert.True(t, normalizer.EventShouldNotify(models.PaymentEvent{Amount: decimal.NewFromInt(50), Status: models.StatusFailed}))
	assert.False(t, normalizer.EventShouldNotify(models.PaymentEvent{Amount: decimal.NewFromInt(50), Status: models.StatusProcessed}))
}
