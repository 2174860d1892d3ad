package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/config"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/metrics"
	"github.com/sirupsen/logrus"
)

// BatchHandler processes a batch and returns one outcome per message, aligned by
// index. A nil entry means success.
type BatchHandler func(ctx context.Context, batch []Message) []error

// Consumer polls a queue and runs the handler once per batch under a timeout.
type Consumer struct {
	Name              string
	Queue             Queue
	Handler           BatchHandler
	BatchSize         int
	InvocationTimeout time.Duration
	RetryConfig       config.RetryConfig
}

func NewConsumer(name string, q Queue, handler BatchHandler, batchSize int, timeout time.Duration, retry config.RetryConfig) *Consumer {
	return &Consumer{
		Name:              name,
		Queue:             q,
		Handler:           handler,
		BatchSize:         batchSize,
		InvocationTimeout: timeout,
		RetryConfig:       retry.WithDefaults(),
	}
}

// Run polls until ctx is cancelled. Receive errors back off exponentially.
func (c *Consumer) Run(ctx context.Context) error {
	logrus.Infof("consumer %s started", c.Name)
	failures := 0
	for {
		if ctx.Err() != nil {
			logrus.Infof("consumer %s stopped", c.Name)
			return nil
		}

		_, err := c.PollOnce(ctx)
		if err == nil {
			failures = 0
			continue
		}
		if ctx.Err() != nil {
			logrus.Infof("consumer %s stopped", c.Name)
			return nil
		}

		delay := c.RetryConfig.Backoff(failures)
		failures++
		logrus.Errorf("consumer %s: %v, retrying in %v", c.Name, err, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
	}
}

// PollOnce receives one batch, handles it and settles every message. It returns the
// number of messages received.
func (c *Consumer) PollOnce(ctx context.Context) (int, error) {
	batch, err := c.Queue.Receive(ctx, c.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("receive: %w", err)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	start := time.Now()
	invocationCtx, cancel := context.WithTimeout(ctx, c.InvocationTimeout)
	results := c.Handler(invocationCtx, batch)
	cancel()
	metrics.BatchDuration.WithLabelValues(c.Name).Observe(time.Since(start).Seconds())

	var (
		succeeded []Message
		settleErr error
	)
	for i, msg := range batch {
		var itemErr error
		if i < len(results) {
			itemErr = results[i]
		} else {
			itemErr = errors.New("handler returned no outcome for message")
		}

		if itemErr == nil {
			succeeded = append(succeeded, msg)
			continue
		}

		metrics.QueueMessagesTotal.WithLabelValues(c.Name, "failed").Inc()
		logrus.WithFields(logrus.Fields{"queue": c.Name, "key": msg.Key, "attempt": msg.Attempt}).
			Warnf("message failed: %v", itemErr)
		if err := c.Queue.Nack(ctx, msg, itemErr); err != nil {
			settleErr = errors.Join(settleErr, err)
		}
	}

	// A failed nack must not be hidden behind a later offset commit.
	if settleErr != nil {
		return len(batch), fmt.Errorf("settle batch: %w", settleErr)
	}

	if len(succeeded) > 0 {
		if err := c.Queue.Ack(ctx, succeeded...); err != nil {
			return len(batch), fmt.Errorf("ack: %w", err)
		}
		metrics.QueueMessagesTotal.WithLabelValues(c.Name, "succeeded").Add(float64(len(succeeded)))
	}
	return len(batch), nil
}
