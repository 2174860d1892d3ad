package models_test

import (
	"encoding/json"
	"testing"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookPayload_Object(t *testing.T) {
	payload, err := models.ParseWebhookPayload([]byte(`{"paymentId":"pay_1","provider":" stripe ","amount":15000.5,"status":"failed","extra":{"a":1}}`))

	require.NoError(t, err)
	assert.Equal(t, "pay_1", payload.PaymentID())
	assert.Equal(t, "stripe", payload.Provider())
	assert.Equal(t, "failed", payload.Status())
	assert.Equal(t, "", payload.Currency())
	assert.Equal(t, json.Number("15000.5"), payload.Amount())
	assert.Contains(t, payload, "extra")
}

func TestParseWebhookPayload_NumericPaymentID(t *testing.T) {
	payload, err := models.ParseWebhookPayload([]byte(`{"paymentId":12345}`))

	require.NoError(t, err)
	assert.Equal(t, "12345", payload.PaymentID())
}

func TestParseWebhookPayload_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"whitespace": "  \n\t",
		"truncated":  `{"paymentId":`,
		"array":      `[1,2,3]`,
		"string":     `"hello"`,
		"null":       `null`,
		"trailing":   `{"a":1} {"b":2}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := models.ParseWebhookPayload([]byte(body))
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}
