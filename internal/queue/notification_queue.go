package queue

import (
	"context"

	"github.com/luckysnap/backend/internal/notify"
)

type Delivery struct {
	Data *notify.Notification
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	Publish(ctx context.Context, notification *notify.Notification) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryNotificationQueue backs the queue with a Go channel, for tests and
// single-process deployments without Redis Streams.
type MemoryNotificationQueue struct {
	ch chan *notify.Notification
}

func NewMemoryNotificationQueue(bufferSize int) NotificationQueue {
	return &MemoryNotificationQueue{
		ch: make(chan *notify.Notification, bufferSize),
	}
}

func (q *MemoryNotificationQueue) Publish(ctx context.Context, notification *notify.Notification) error {
	select {
	case q.ch <- notification:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryNotificationQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: notification,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- notification
						}
					},
				}
			}
		}
	}()

	return out, nil
}
