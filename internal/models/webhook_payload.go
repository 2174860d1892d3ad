package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// WebhookPayload is the provider's JSON object. Unknown fields are kept as-is;
// numbers are decoded as json.Number so nothing is lost before archiving.
type WebhookPayload map[string]any

// ParseWebhookPayload decodes a JSON object. Empty bodies and non-object JSON are validation errors.
func ParseWebhookPayload(raw []byte) (WebhookPayload, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: missing request body", ErrValidation)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload WebhookPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON payload: %s", ErrValidation, err.Error())
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: invalid JSON payload: expected an object", ErrValidation)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: invalid JSON payload: trailing data", ErrValidation)
	}
	return payload, nil
}

func (p WebhookPayload) PaymentID() string { return p.stringField("paymentId") }
func (p WebhookPayload) Provider() string  { return p.stringField("provider") }
func (p WebhookPayload) Currency() string  { return p.stringField("currency") }
func (p WebhookPayload) Status() string    { return p.stringField("status") }

// Amount returns the raw amount value, which may be a json.Number, a string or absent.
func (p WebhookPayload) Amount() any { return p["amount"] }

func (p WebhookPayload) stringField(name string) string {
	switch v := p[name].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
