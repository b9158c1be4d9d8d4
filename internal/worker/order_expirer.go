package worker

import (
	"context"
	"time"

	"github.com/luckysnap/backend/internal/service"
	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

// OrderExpirer periodically sweeps pending orders past their expiry so
// unpaid tickets go back on sale without anyone reading the order first.
type OrderExpirer interface {
	Start(ctx context.Context) error
}

type OrderExpirerImpl struct {
	service  service.OrderService
	interval time.Duration
}

func NewOrderExpirer(service service.OrderService, interval time.Duration) OrderExpirer {
	return &OrderExpirerImpl{
		service:  service,
		interval: interval,
	}
}

func (w *OrderExpirerImpl) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				expired, err := w.service.ExpireStaleOrders(ctx)
				if err != nil {
					logger.WithComponent("worker").Error("expiry sweep failed", zap.Error(err))
					continue
				}
				if expired > 0 {
					logger.WithComponent("worker").Info("expired stale orders", zap.Int("count", expired))
				}
			}
		}
	}()

	return nil
}
