package posgrest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/database"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newRepo(t *testing.T) *posgrest.PaymentEventRepository {
	t.Helper()
	db, err := database.OpenInMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return posgrest.NewPaymentEventRepository(db)
}

func receivedEvent(id string, ts int64, provider string, amount int64) *models.PaymentEvent {
	return &models.PaymentEvent{
		PaymentID:  id,
		Timestamp:  ts,
		Provider:   provider,
		Amount:     decimal.NewFromInt(amount),
		Currency:   "USD",
		Status:     models.StatusReceived,
		RawPayload: datatypes.JSON(`{"paymentId":"` + id + `"}`),
	}
}

func TestCreate_AndGetByKey(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 1000, "stripe", 15000)))

	got, err := repo.GetByKey(ctx, models.Key{PaymentID: "pay_1", Timestamp: 1000})
	require.NoError(t, err)
	assert.Equal(t, models.StatusReceived, got.Status)
	assert.Equal(t, "stripe", got.Provider)
	assert.True(t, decimal.NewFromInt(15000).Equal(got.Amount))
	assert.Nil(t, got.ProcessedAt)
	assert.JSONEq(t, `{"paymentId":"pay_1"}`, string(got.RawPayload))
}

func TestCreate_DuplicateKeyDoesNotOverwrite(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 1000, "stripe", 10)))

	err := repo.Create(ctx, receivedEvent("pay_1", 1000, "adyen", 99))
	assert.ErrorIs(t, err, models.ErrDuplicateKey)

	got, err := repo.GetByKey(ctx, models.Key{PaymentID: "pay_1", Timestamp: 1000})
	require.NoError(t, err)
	assert.Equal(t, "stripe", got.Provider)
}

func TestCreate_SamePaymentDifferentTimestampIsDistinct(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 1000, "stripe", 10)))
	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 1001, "stripe", 10)))

	events, err := repo.ListByProvider(ctx, "stripe", 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestGetByKey_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByKey(context.Background(), models.Key{PaymentID: "missing", Timestamp: 1})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMarkProcessed_IsIdempotent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	key := models.Key{PaymentID: "pay_1", Timestamp: 1000}
	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 1000, "stripe", 15000)))

	first, err := repo.MarkProcessed(ctx, key, "USD", 2000)
	require.NoError(t, err)
	second, err := repo.MarkProcessed(ctx, key, "USD", 3000)
	require.NoError(t, err)

	assert.Equal(t, models.StatusProcessed, first.Status)
	require.NotNil(t, first.ProcessedAt)
	require.NotNil(t, second.ProcessedAt)
	assert.Equal(t, int64(2000), *first.ProcessedAt)
	assert.Equal(t, *first.ProcessedAt, *second.ProcessedAt)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Currency, second.Currency)
}

func TestMarkProcessed_MissingRecord(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.MarkProcessed(context.Background(), models.Key{PaymentID: "ghost", Timestamp: 1}, "USD", 2)

	assert.ErrorIs(t, err, models.ErrProcessingInconsistency)
}

func TestDeleteReceived_OnlyRemovesUnprocessedRows(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	pending := models.Key{PaymentID: "pay_1", Timestamp: 1000}
	done := models.Key{PaymentID: "pay_1", Timestamp: 2000}
	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 1000, "stripe", 10)))
	require.NoError(t, repo.Create(ctx, receivedEvent("pay_1", 2000, "stripe", 10)))
	_, err := repo.MarkProcessed(ctx, done, "USD", 3000)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteReceived(ctx, pending))
	require.NoError(t, repo.DeleteReceived(ctx, done))
	require.NoError(t, repo.DeleteReceived(ctx, models.Key{PaymentID: "ghost", Timestamp: 1}))

	_, err = repo.GetByKey(ctx, pending)
	assert.ErrorIs(t, err, models.ErrNotFound)
	got, err := repo.GetByKey(ctx, done)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessed, got.Status)
}

func TestListByProvider_NewestFirstWithinRange(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for i, ts := range []int64{1000, 2000, 3000, 4000} {
		require.NoError(t, repo.Create(ctx, receivedEvent("pay_"+string(rune('a'+i)), ts, "stripe", 1)))
	}
	require.NoError(t, repo.Create(ctx, receivedEvent("other", 2500, "adyen", 1)))

	events, err := repo.ListByProvider(ctx, "stripe", 2000, 3500, 10)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, int64(3000), events[0].Timestamp)
	assert.Equal(t, int64(2000), events[1].Timestamp)

	limited, err := repo.ListByProvider(ctx, "stripe", 0, 0, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(4000), limited[0].Timestamp)
}
