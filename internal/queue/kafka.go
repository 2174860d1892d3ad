package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	HeaderAttempt   = "x-attempt"
	HeaderNotBefore = "x-not-before"
	HeaderLastError = "x-last-error"
)

// MessageReader is the part of *kafka.Reader the queue uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RawPublisher writes prepared Kafka messages to a topic.
type RawPublisher interface {
	PublishRaw(ctx context.Context, topic string, msg kafka.Message) error
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// KafkaQueue maps queue semantics onto a topic and a consumer group. Offsets are
// committed on Ack. Nack republishes the message with an incremented attempt and a
// not-before time one visibility timeout away, then commits the original offset.
// After MaxReceives attempts the message goes to DLQTopic instead.
//
// Receive never waits on a message that is not visible yet. It is republished as is
// and its offset is committed once the rest of the batch has been settled, so later
// messages on the partition keep flowing.
type KafkaQueue struct {
	Topic             string
	DLQTopic          string
	VisibilityTimeout time.Duration
	MaxReceives       int
	WaitTime          time.Duration
	Now               func() time.Time

	reader    MessageReader
	publisher RawPublisher

	mu       sync.Mutex
	deferred []kafka.Message
}

func NewKafkaQueue(topic, dlqTopic string, reader MessageReader, publisher RawPublisher, visibility time.Duration, maxReceives int, wait time.Duration) *KafkaQueue {
	return &KafkaQueue{
		Topic:             topic,
		DLQTopic:          dlqTopic,
		VisibilityTimeout: visibility,
		MaxReceives:       maxReceives,
		WaitTime:          wait,
		Now:               time.Now,
		reader:            reader,
		publisher:         publisher,
	}
}

// NewKafkaReader builds a consumer-group reader for topic.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func (q *KafkaQueue) Send(ctx context.Context, key string, body []byte) error {
	return q.publisher.PublishRaw(ctx, q.Topic, kafka.Message{Key: []byte(key), Value: body})
}

func (q *KafkaQueue) Receive(ctx context.Context, max int) ([]Message, error) {
	if q.reader == nil {
		return nil, fmt.Errorf("queue %s has no reader configured", q.Topic)
	}
	// Anything deferred by the previous batch is safe to commit once it has been settled.
	if err := q.commitDeferred(ctx); err != nil {
		return nil, err
	}

	first, err := q.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}
	fetched := []kafka.Message{first}

	waitCtx, cancel := context.WithTimeout(ctx, q.WaitTime)
	defer cancel()
	for len(fetched) < max {
		msg, err := q.reader.FetchMessage(waitCtx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				break
			}
			return nil, err
		}
		fetched = append(fetched, msg)
	}

	var (
		msgs     = make([]Message, 0, len(fetched))
		earliest time.Time
	)
	for _, m := range fetched {
		if notBefore, ok := q.invisibleUntil(m); ok {
			err := q.deferMessage(ctx, m)
			if err == nil {
				if earliest.IsZero() || notBefore.Before(earliest) {
					earliest = notBefore
				}
				continue
			}
			logrus.WithError(err).WithFields(logrus.Fields{"topic": q.Topic, "offset": m.Offset}).
				Warn("Could not defer message, delivering it early")
		}
		msgs = append(msgs, Message{
			ID:      fmt.Sprintf("%s/%d/%d", m.Topic, m.Partition, m.Offset),
			Key:     string(m.Key),
			Body:    m.Value,
			Attempt: AttemptFromHeaders(m.Headers) + 1,
			handle:  m,
		})
	}

	if len(msgs) == 0 && !earliest.IsZero() {
		if err := q.commitDeferred(ctx); err != nil {
			return nil, err
		}
		q.pause(ctx, earliest)
	}
	return msgs, nil
}

// invisibleUntil reports the not-before time of a redelivered message that is not
// visible yet.
func (q *KafkaQueue) invisibleUntil(m kafka.Message) (time.Time, bool) {
	notBefore, ok := NotBeforeFromHeaders(m.Headers)
	if !ok || !notBefore.After(q.Now()) {
		return time.Time{}, false
	}
	return notBefore, true
}

// deferMessage puts a copy of m back on the topic and remembers m for commit.
func (q *KafkaQueue) deferMessage(ctx context.Context, m kafka.Message) error {
	copied := kafka.Message{Key: m.Key, Value: m.Value, Headers: m.Headers}
	if err := q.publisher.PublishRaw(ctx, q.Topic, copied); err != nil {
		return err
	}
	q.mu.Lock()
	q.deferred = append(q.deferred, m)
	q.mu.Unlock()
	return nil
}

func (q *KafkaQueue) commitDeferred(ctx context.Context) error {
	q.mu.Lock()
	pending := q.deferred
	q.deferred = nil
	q.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := q.reader.CommitMessages(ctx, pending...); err != nil {
		q.mu.Lock()
		q.deferred = append(pending, q.deferred...)
		q.mu.Unlock()
		return fmt.Errorf("commit deferred messages on %s: %w", q.Topic, err)
	}
	return nil
}

// pause waits until the earliest deferred message turns visible, at most WaitTime,
// so a topic holding only deferred messages is not republished in a tight loop.
func (q *KafkaQueue) pause(ctx context.Context, until time.Time) {
	wait := until.Sub(q.Now())
	if wait > q.WaitTime {
		wait = q.WaitTime
	}
	if wait <= 0 {
		return
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (q *KafkaQueue) Ack(ctx context.Context, msgs ...Message) error {
	raws := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		if raw, ok := m.handle.(kafka.Message); ok {
			raws = append(raws, raw)
		}
	}
	if len(raws) > 0 {
		if err := q.reader.CommitMessages(ctx, raws...); err != nil {
			return err
		}
	}
	return q.commitDeferred(ctx)
}

func (q *KafkaQueue) Nack(ctx context.Context, msg Message, cause error) error {
	raw, ok := msg.handle.(kafka.Message)
	if !ok {
		return fmt.Errorf("nack %s: message was not received from kafka", msg.ID)
	}

	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	if q.MaxReceives > 0 && msg.Attempt >= q.MaxReceives {
		dlq := models.DLQMessage{
			OriginalTopic: q.Topic,
			Key:           msg.Key,
			Value:         string(msg.Body),
			Timestamp:     q.Now().UTC(),
			Attempts:      msg.Attempt,
			Error:         reason,
		}
		if err := q.publisher.Publish(ctx, q.DLQTopic, msg.Key, dlq); err != nil {
			return fmt.Errorf("send %s to DLQ: %w", msg.ID, err)
		}
		logrus.WithFields(logrus.Fields{"topic": q.Topic, "key": msg.Key, "attempts": msg.Attempt}).
			Error("Message sent to DLQ")
	} else {
		retry := kafka.Message{
			Key:   raw.Key,
			Value: raw.Value,
			Headers: []kafka.Header{
				{Key: HeaderAttempt, Value: []byte(strconv.Itoa(msg.Attempt))},
				{Key: HeaderNotBefore, Value: []byte(strconv.FormatInt(q.Now().Add(q.VisibilityTimeout).UnixMilli(), 10))},
				{Key: HeaderLastError, Value: []byte(reason)},
			},
		}
		if err := q.publisher.PublishRaw(ctx, q.Topic, retry); err != nil {
			return fmt.Errorf("requeue %s: %w", msg.ID, err)
		}
	}

	return q.reader.CommitMessages(ctx, raw)
}

func (q *KafkaQueue) Close() error {
	if q.reader == nil {
		return nil
	}
	return q.reader.Close()
}

// AttemptFromHeaders returns how many deliveries already failed, 0 when absent.
func AttemptFromHeaders(headers []kafka.Header) int {
	for _, h := range headers {
		if h.Key == HeaderAttempt {
			if n, err := strconv.Atoi(string(h.Value)); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

// NotBeforeFromHeaders returns the earliest redelivery time, if any.
func NotBeforeFromHeaders(headers []kafka.Header) (time.Time, bool) {
	for _, h := range headers {
		if h.Key == HeaderNotBefore {
			ms, err := strconv.ParseInt(string(h.Value), 10, 64)
			if err != nil {
				return time.Time{}, false
			}
			return time.UnixMilli(ms), true
		}
	}
	return time.Time{}, false
}
