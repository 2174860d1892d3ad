package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	HeaderName       = "X-Webhook-Signature"
	DefaultTolerance = 5 * time.Minute

	timestampField = "t"
	signatureField = "v1"
)

var (
	ErrMissingSignature   = fmt.Errorf("%w: missing signature", models.ErrAuthentication)
	ErrMalformedSignature = fmt.Errorf("%w: malformed signature header", models.ErrAuthentication)
	ErrSignatureMismatch  = fmt.Errorf("%w: signature mismatch", models.ErrAuthentication)
	ErrStaleSignature     = fmt.Errorf("%w: signature timestamp outside tolerance", models.ErrAuthentication)
	ErrNoSecret           = fmt.Errorf("%w: no secret configured for provider", models.ErrAuthentication)
)

// Validator checks a webhook signature over the raw request body.
type Validator interface {
	Validate(provider string, payload []byte, signature string) error
}

// HMACValidator verifies headers of the form "t=<unix seconds>,v1=<hex>[,v1=<hex>]".
// The MAC is HMAC-SHA256 over "<t>.<payload>" with the provider's secret, falling back
// to DefaultSecret. Timestamps further than Tolerance from now are rejected.
type HMACValidator struct {
	DefaultSecret string
	Secrets       map[string]string
	Tolerance     time.Duration
	Now           func() time.Time
}

func NewHMACValidator(defaultSecret string, secrets map[string]string, tolerance time.Duration) *HMACValidator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &HMACValidator{
		DefaultSecret: defaultSecret,
		Secrets:       secrets,
		Tolerance:     tolerance,
		Now:           time.Now,
	}
}

func (v *HMACValidator) Validate(provider string, payload []byte, header string) error {
	header = strings.TrimSpace(header)
	if header == "" {
		return ErrMissingSignature
	}

	secret := v.secretFor(provider)
	if secret == "" {
		return ErrNoSecret
	}

	timestamp, signatures, err := parseHeader(header)
	if err != nil {
		return err
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	if age := now().Sub(time.Unix(timestamp, 0)); age > v.Tolerance || age < -v.Tolerance {
		return ErrStaleSignature
	}

	expected := computeMAC(secret, timestamp, payload)
	for _, candidate := range signatures {
		decoded, err := hex.DecodeString(candidate)
		if err != nil {
			continue
		}
		if subtle.ConstantTimeCompare(decoded, expected) == 1 {
			return nil
		}
	}
	return ErrSignatureMismatch
}

func (v *HMACValidator) secretFor(provider string) string {
	if secret, ok := v.Secrets[provider]; ok && secret != "" {
		return secret
	}
	return v.DefaultSecret
}

// Sign builds a header value for payload signed at t.
func Sign(secret string, payload []byte, t time.Time) string {
	mac := computeMAC(secret, t.Unix(), payload)
	return fmt.Sprintf("%s=%d,%s=%s", timestampField, t.Unix(), signatureField, hex.EncodeToString(mac))
}

func computeMAC(secret string, timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}

func parseHeader(header string) (int64, []string, error) {
	var (
		timestamp    int64
		hasTimestamp bool
		signatures   []string
	)

	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return 0, nil, ErrMalformedSignature
		}
		switch strings.TrimSpace(key) {
		case timestampField:
			ts, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedSignature
			}
			timestamp, hasTimestamp = ts, true
		case signatureField:
			signatures = append(signatures, strings.TrimSpace(value))
		}
	}

	if !hasTimestamp || len(signatures) == 0 {
		return 0, nil, ErrMalformedSignature
	}
	return timestamp, signatures, nil
}

// AllowAll accepts every request. It exists for local runs with SIGNATURE_MODE=none.
type AllowAll struct{}

func NewAllowAll() AllowAll {
	logrus.Warn("webhook signature validation is disabled")
	return AllowAll{}
}

func (AllowAll) Validate(string, []byte, string) error { return nil }
