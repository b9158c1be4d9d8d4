package worker

import (
	"context"

	"github.com/luckysnap/backend/internal/notify"
	"github.com/luckysnap/backend/internal/queue"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

// NotificationWorker drains the notification queue and hands each message to
// the Notifier. Failed sends are nacked for a delayed retry; the queue drops
// poison messages after its retry budget.
type NotificationWorker interface {
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	notifier notify.Notifier
	queue    queue.NotificationQueue
}

func NewNotificationWorker(notifier notify.Notifier, queue queue.NotificationQueue) NotificationWorker {
	return &NotificationWorkerImpl{
		notifier: notifier,
		queue:    queue,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.notifier.Send(ctx, msg.Data); err != nil {
				logger.WithComponent("worker").Warn("notification send failed",
					zap.String("kind", msg.Data.Kind),
					zap.String("folio", msg.Data.Folio),
					zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()

	return nil
}
