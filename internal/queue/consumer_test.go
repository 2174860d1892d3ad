package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/config"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_PartialBatchFailureOnlyRedeliversFailedItems(t *testing.T) {
	q, clock := newMemoryQueue(5)
	ctx := context.Background()
	for _, key := range []string{"ok-1", "bad", "ok-2"} {
		require.NoError(t, q.Send(ctx, key, []byte(key)))
	}

	var seen []string
	handler := func(_ context.Context, batch []queue.Message) []error {
		results := make([]error, len(batch))
		for i, m := range batch {
			seen = append(seen, m.Key)
			if m.Key == "bad" {
				results[i] = errors.New("boom")
			}
		}
		return results
	}
	c := queue.NewConsumer("test", q, handler, 10, time.Second, config.RetryConfig{})

	n, err := c.PollOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	clock.Advance(time.Minute)
	n, err = c.PollOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"ok-1", "bad", "ok-2", "bad"}, seen)
}

func TestConsumer_MissingOutcomesCountAsFailures(t *testing.T) {
	q, clock := newMemoryQueue(5)
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, "a", []byte("a")))
	require.NoError(t, q.Send(ctx, "b", []byte("b")))

	c := queue.NewConsumer("test", q, func(context.Context, []queue.Message) []error {
		return []error{nil}
	}, 10, time.Second, config.RetryConfig{})

	_, err := c.PollOnce(ctx)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	msgs, err := q.Receive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "b", msgs[0].Key)
}

func TestConsumer_HandlerRunsUnderInvocationTimeout(t *testing.T) {
	q, _ := newMemoryQueue(5)
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, "a", []byte("a")))

	var deadline time.Time
	var hasDeadline bool
	c := queue.NewConsumer("test", q, func(ctx context.Context, batch []queue.Message) []error {
		deadline, hasDeadline = ctx.Deadline()
		return make([]error, len(batch))
	}, 10, 5*time.Second, config.RetryConfig{})

	_, err := c.PollOnce(ctx)

	require.NoError(t, err)
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestConsumer_RunStopsOnCancel(t *testing.T) {
	q, _ := newMemoryQueue(5)
	ctx, cancel := context.WithCancel(context.Background())
	c := queue.NewConsumer("test", q, func(context.Context, []queue.Message) []error { return nil }, 10, time.Second, config.RetryConfig{})

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
