package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newMemoryQueue(maxReceives int) (*queue.MemoryQueue, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	q := queue.NewMemoryQueue("test", time.Minute, maxReceives, 10*time.Millisecond)
	q.Now = clock.Now
	return q, clock
}

func TestMemoryQueue_ReceiveUpToMax(t *testing.T) {
	q, _ := newMemoryQueue(3)
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, q.Send(ctx, key, []byte(key)))
	}

	msgs, err := q.Receive(ctx, 2)

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "a", msgs[0].Key)
	assert.Equal(t, 1, msgs[0].Attempt)

	rest, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "c", rest[0].Key)
}

func TestMemoryQueue_EmptyReceiveReturnsAfterWait(t *testing.T) {
	q, _ := newMemoryQueue(3)

	msgs, err := q.Receive(context.Background(), 10)

	assert.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMemoryQueue_AckedMessagesAreGone(t *testing.T) {
	q, clock := newMemoryQueue(3)
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, "a", []byte("a")))

	msgs, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	require.NoError(t, q.Ack(ctx, msgs...))

	clock.Advance(2 * time.Minute)
	again, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Equal(t, 0, q.Len())
}

func TestMemoryQueue_NackedMessageReturnsAfterVisibilityTimeout(t *testing.T) {
	q, clock := newMemoryQueue(3)
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, "a", []byte("a")))

	msgs, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	require.NoError(t, q.Nack(ctx, msgs[0], errors.New("boom")))

	hidden, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, hidden)

	clock.Advance(time.Minute)
	redelivered, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, redelivered, 1)
	assert.Equal(t, 2, redelivered[0].Attempt)
	assert.Equal(t, msgs[0].ID, redelivered[0].ID)
}

func TestMemoryQueue_StaleReceiptAckIsIgnored(t *testing.T) {
	q, clock := newMemoryQueue(3)
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, "a", []byte("a")))

	first, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = q.Receive(ctx, 10)
	require.NoError(t, err)

	require.NoError(t, q.Ack(ctx, first...))
	assert.Equal(t, 1, q.Len())
}

func TestMemoryQueue_DeadLettersAfterMaxReceives(t *testing.T) {
	q, clock := newMemoryQueue(2)
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, "pay_1", []byte(`{"paymentId":"pay_1"}`)))

	for i := 0; i < 2; i++ {
		msgs, err := q.Receive(ctx, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.NoError(t, q.Nack(ctx, msgs[0], errors.New("processing inconsistency")))
		clock.Advance(time.Minute)
	}

	msgs, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	dead := q.DeadLetters()
	require.Len(t, dead, 1)
	assert.Equal(t, "test", dead[0].OriginalTopic)
	assert.Equal(t, "pay_1", dead[0].Key)
	assert.Equal(t, 2, dead[0].Attempts)
	assert.Equal(t, "processing inconsistency", dead[0].Error)
	assert.Equal(t, 0, q.Len())
}

func TestMemoryQueue_ReceiveHonoursContext(t *testing.T) {
	q := queue.NewMemoryQueue("test", time.Minute, 3, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := q.Receive(ctx, 10)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryQueue_Closed(t *testing.T) {
	q, _ := newMemoryQueue(3)
	require.NoError(t, q.Close())

	assert.ErrorIs(t, q.Send(context.Background(), "a", nil), queue.ErrQueueClosed)
	_, err := q.Receive(context.Background(), 1)
	assert.ErrorIs(t, err, queue.ErrQueueClosed)
}

func TestSendJSON(t *testing.T) {
	q, _ := newMemoryQueue(3)
	ctx := context.Background()

	require.NoError(t, queue.SendJSON(ctx, q, "pay_1", map[string]any{"paymentId": "pay_1", "timestamp": 1}))

	msgs, err := q.Receive(ctx, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.JSONEq(t, `{"paymentId":"pay_1","timestamp":1}`, string(msgs[0].Body))
}
