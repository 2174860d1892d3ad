package archive_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/archive"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/database"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *archive.Store {
	t.Helper()
	db, err := database.OpenInMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return archive.NewStore(db)
}

func TestKey(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 59, 59, 0, time.FixedZone("UTC-5", -5*3600))

	assert.Equal(t, "webhooks/2024-03-10/pay_1.json", archive.Key(at, "pay_1"))
	assert.Equal(t, "webhooks/2023-11-14/pay_2.json", archive.KeyFor(1700000000000, "pay_2"))
	assert.Equal(t, "webhooks/2023-11-14/pay_2-1700000000000.json", archive.RevisionKey(1700000000000, "pay_2"))
}

func TestPutJSON_RoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	raw := []byte(`{"paymentId":"pay_1","provider":"stripe","amount":15000,"currency":"USD","status":"succeeded","meta":{"tags":["a","b"]}}`)
	key := archive.KeyFor(1700000000000, "pay_1")

	require.NoError(t, store.PutJSON(ctx, key, raw))

	body, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Contains(t, string(body), "\n  \"paymentId\": \"pay_1\"")

	var want, got map[string]any
	require.NoError(t, json.Unmarshal(raw, &want))
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, want, got)
}

func TestPutJSON_WriteOnce(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	key := archive.KeyFor(1700000000000, "pay_1")

	require.NoError(t, store.PutJSON(ctx, key, []byte(`{"amount":1}`)))
	assert.NoError(t, store.PutJSON(ctx, key, []byte(`{"amount":1}`)))
	assert.ErrorIs(t, store.PutJSON(ctx, key, []byte(`{"amount":2}`)), models.ErrDuplicateKey)

	body, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":1}`, string(body))
}

func TestGet_NotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Get(context.Background(), "webhooks/2024-01-01/missing.json")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPutJSON_RejectsInvalidJSON(t *testing.T) {
	store := newStore(t)

	err := store.PutJSON(context.Background(), "webhooks/2024-01-01/bad.json", []byte(`{"a":`))

	assert.ErrorIs(t, err, models.ErrValidation)
}
