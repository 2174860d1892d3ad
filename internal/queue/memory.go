package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/sirupsen/logrus"
)

const memoryPollInterval = 20 * time.Millisecond

var ErrQueueClosed = errors.New("queue closed")

type memoryEntry struct {
	id             string
	key            string
	body           []byte
	receives       int
	invisibleUntil time.Time
	receipt        string
	lastError      string
}

// MemoryQueue is an in-process queue with visibility timeouts, receive counting and
// a dead-letter list. It is used by the local all-in-one mode and by tests.
type MemoryQueue struct {
	Name              string
	VisibilityTimeout time.Duration
	MaxReceives       int
	WaitTime          time.Duration
	Now               func() time.Time

	mu      sync.Mutex
	entries []*memoryEntry
	dead    []models.DLQMessage
	notify  chan struct{}
	closed  bool
}

func NewMemoryQueue(name string, visibility time.Duration, maxReceives int, wait time.Duration) *MemoryQueue {
	return &MemoryQueue{
		Name:              name,
		VisibilityTimeout: visibility,
		MaxReceives:       maxReceives,
		WaitTime:          wait,
		Now:               time.Now,
		notify:            make(chan struct{}, 1),
	}
}

func (q *MemoryQueue) Send(_ context.Context, key string, body []byte) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.entries = append(q.entries, &memoryEntry{
		id:   uuid.NewString(),
		key:  key,
		body: append([]byte(nil), body...),
	})
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

func (q *MemoryQueue) Receive(ctx context.Context, max int) ([]Message, error) {
	deadline := time.Now().Add(q.WaitTime)
	for {
		msgs, err := q.take(max)
		if err != nil || len(msgs) > 0 {
			return msgs, err
		}
		if !time.Now().Before(deadline) {
			return nil, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.notify:
		case <-time.After(memoryPollInterval):
		}
	}
}

func (q *MemoryQueue) take(max int) ([]Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, ErrQueueClosed
	}

	now := q.Now()
	var msgs []Message
	kept := q.entries[:0]
	for _, e := range q.entries {
		if len(msgs) >= max || now.Before(e.invisibleUntil) {
			kept = append(kept, e)
			continue
		}
		if q.MaxReceives > 0 && e.receives >= q.MaxReceives {
			q.deadLetter(e, now)
			continue
		}

		e.receives++
		e.invisibleUntil = now.Add(q.VisibilityTimeout)
		e.receipt = uuid.NewString()
		msgs = append(msgs, Message{
			ID:      e.id,
			Key:     e.key,
			Body:    append([]byte(nil), e.body...),
			Attempt: e.receives,
			handle:  e.receipt,
		})
		kept = append(kept, e)
	}
	q.entries = kept
	return msgs, nil
}

func (q *MemoryQueue) deadLetter(e *memoryEntry, now time.Time) {
	logrus.WithFields(logrus.Fields{"queue": q.Name, "key": e.key, "receives": e.receives}).
		Error("message exceeded receive limit, moved to dead letters")
	q.dead = append(q.dead, models.DLQMessage{
		OriginalTopic: q.Name,
		Key:           e.key,
		Value:         string(e.body),
		Timestamp:     now.UTC(),
		Attempts:      e.receives,
		Error:         e.lastError,
	})
}

// Ack deletes messages whose receipt is still current. A stale receipt means the
// message was already redelivered and is ignored.
func (q *MemoryQueue) Ack(_ context.Context, msgs ...Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	receipts := make(map[any]struct{}, len(msgs))
	for _, m := range msgs {
		receipts[m.handle] = struct{}{}
	}
	kept := q.entries[:0]
	for _, e := range q.entries {
		if _, ok := receipts[e.receipt]; ok && e.receipt != "" {
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	return nil
}

// Nack records the failure; the message stays invisible until its timeout expires.
func (q *MemoryQueue) Nack(_ context.Context, msg Message, cause error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		if e.receipt == msg.handle {
			if cause != nil {
				e.lastError = cause.Error()
			}
			return nil
		}
	}
	return fmt.Errorf("nack %s: %w", msg.ID, models.ErrNotFound)
}

// Len counts messages not yet acknowledged or dead-lettered.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func (q *MemoryQueue) DeadLetters() []models.DLQMessage {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.DLQMessage(nil), q.dead...)
}

func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return nil
}
