package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/service"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func canonicalEvent(amount int64, providerStatus string) models.PaymentEvent {
	processed := int64(1705314605000)
	return models.PaymentEvent{
		PaymentID:      "pay_1",
		Timestamp:      1705314600000,
		Provider:       "stripe",
		Amount:         decimal.NewFromInt(amount),
		Currency:       "USD",
		Status:         models.StatusProcessed,
		ProviderStatus: providerStatus,
		ProcessedAt:    &processed,
	}
}

func TestNotify_HighValueAlert(t *testing.T) {
	repo := mocks.NewMockPaymentEventRepo(t)
	alerts := mocks.NewMockAlertChannel(t)
	svc := service.NewNotifierService(repo, alerts)

	event := canonicalEvent(15000, "completed")
	record := event
	repo.EXPECT().GetByKey(mock.Anything, event.Key()).Return(&record, nil).Once()

	alerts.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("models.Alert")).
		Run(func(_ context.Context, alert models.Alert) {
			assert.Equal(t, "High-Value Payment Alert: $15000.00", alert.Subject)
			assert.Equal(t, "pay_1", alert.PaymentID)
			assert.Contains(t, alert.Body, "Payment ID: pay_1\n")
			assert.Contains(t, alert.Body, "Amount: 15000.00\n")
			assert.Contains(t, alert.Body, "Timestamp: 2024-01-15T10:30:05.000Z\n")
		}).
		Return(nil).
		Once()

	err := svc.Notify(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotify_FailedPaymentAlert(t *testing.T) {
	repo := mocks.NewMockPaymentEventRepo(t)
	alerts := mocks.NewMockAlertChannel(t)
	svc := service.NewNotifierService(repo, alerts)

	event := canonicalEvent(50, "failed")
	record := event
	record.ProviderStatus = ""
	record.ProcessedAt = nil
	repo.EXPECT().GetByKey(mock.Anything, event.Key()).Return(&record, nil).Once()

	alerts.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("models.Alert")).
		Run(func(_ context.Context, alert models.Alert) {
			assert.Equal(t, "URGENT: Failed Payment Alert - $50.00", alert.Subject)
			assert.Contains(t, alert.Body, "Provider Status: failed\n")
			assert.Contains(t, alert.Body, "Timestamp: 2024-01-15T10:30:05.000Z\n")
		}).
		Return(nil).
		Once()

	err := svc.Notify(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotify_RecordMissingIsSkipped(t *testing.T) {
	repo := mocks.NewMockPaymentEventRepo(t)
	alerts := mocks.NewMockAlertChannel(t)
	svc := service.NewNotifierService(repo, alerts)

	event := canonicalEvent(15000, "")
	repo.EXPECT().GetByKey(mock.Anything, event.Key()).Return(nil, models.ErrNotFound).Once()

	err := svc.Notify(context.Background(), event)

	assert.NoError(t, err)
	alerts.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotify_BelowThresholdIsSkipped(t *testing.T) {
	repo := mocks.NewMockPaymentEventRepo(t)
	alerts := mocks.NewMockAlertChannel(t)
	svc := service.NewNotifierService(repo, alerts)

	event := canonicalEvent(10000, "completed")
	record := event
	repo.EXPECT().GetByKey(mock.Anything, event.Key()).Return(&record, nil).Once()

	err := svc.Notify(context.Background(), event)

	assert.NoError(t, err)
	alerts.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotify_StoreError(t *testing.T) {
	repo := mocks.NewMockPaymentEventRepo(t)
	alerts := mocks.NewMockAlertChannel(t)
	svc := service.NewNotifierService(repo, alerts)

	event := canonicalEvent(15000, "")
	repo.EXPECT().GetByKey(mock.Anything, event.Key()).Return(nil, models.ErrTransient).Once()

	err := svc.Notify(context.Background(), event)

	assert.ErrorIs(t, err, models.ErrTransient)
	alerts.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotify_SendError(t *testing.T) {
	repo := mocks.NewMockPaymentEventRepo(t)
	alerts := mocks.NewMockAlertChannel(t)
	svc := service.NewNotifierService(repo, alerts)

	event := canonicalEvent(15000, "")
	record := event
	expectedError := errors.New("alert topic unavailable")
	repo.EXPECT().GetByKey(mock.Anything, event.Key()).Return(&record, nil).Once()
	alerts.EXPECT().Send(mock.Anything, mock.Anything).Return(expectedError).Once()

	err := svc.Notify(context.Background(), event)

	assert.ErrorIs(t, err, expectedError)
}
