package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/service"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/signature"
	"github.com/sirupsen/logrus"
)

type ReceiverService interface {
	Ingest(ctx context.Context, raw []byte, payload models.WebhookPayload) (*service.IngestResult, error)
	ListPayments(ctx context.Context, provider string, from, to int64, limit int) ([]models.PaymentEvent, error)
}

type SignatureValidator interface {
	Validate(provider string, payload []byte, signature string) error
}

type WebhookHandler struct {
	Service   ReceiverService
	Validator SignatureValidator
	Timeout   time.Duration
	Now       func() time.Time
}

func NewWebhookHandler(s ReceiverService, v SignatureValidator, timeout time.Duration) *WebhookHandler {
	return &WebhookHandler{Service: s, Validator: v, Timeout: timeout, Now: time.Now}
}

// GET /health, GET /webhook
func (h *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.Now().UTC().Format(time.RFC3339),
	})
}

// POST /webhook
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		metrics.WebhooksReceivedTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing request body"})
		return
	}

	payload, err := models.ParseWebhookPayload(raw)
	if err != nil {
		logrus.Warnf("rejecting webhook: %s", err.Error())
		metrics.WebhooksReceivedTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if err := h.Validator.Validate(payload.Provider(), raw, c.GetHeader(signature.HeaderName)); err != nil {
		logrus.Warnf("rejecting webhook: %s", err.Error())
		metrics.WebhooksReceivedTotal.WithLabelValues("unauthorized").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	result, err := h.Service.Ingest(ctx, raw, payload)
	if err != nil {
		logrus.Errorf("Error ingesting webhook: %s", err.Error())
		metrics.WebhooksReceivedTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	outcome := "accepted"
	if result.Duplicate {
		outcome = "duplicate"
	}
	metrics.WebhooksReceivedTotal.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, gin.H{
		"message":   "Webhook received successfully",
		"paymentId": result.PaymentID,
		"timestamp": result.Timestamp,
	})
}

// GET /payments?provider=&from=&to=&limit=
func (h *WebhookHandler) ListPayments(c *gin.Context) {
	provider := c.Query("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider is required"})
		return
	}

	from, errFrom := queryInt(c, "from")
	to, errTo := queryInt(c, "to")
	limit, errLimit := queryInt(c, "limit")
	if err := errors.Join(errFrom, errTo, errLimit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and limit must be integers"})
		return
	}

	events, err := h.Service.ListPayments(c.Request.Context(), provider, from, to, int(limit))
	if err != nil {
		logrus.Errorf("Error listing payments: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": events, "count": len(events)})
}

func queryInt(c *gin.Context, name string) (int64, error) {
	value := c.Query(name)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
