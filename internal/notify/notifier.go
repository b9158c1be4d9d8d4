package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/luckysnap/backend/pkg/logger"
	"go.uber.org/zap"
)

// Notifier is the boundary to external messaging. Deliveries are best effort;
// a failed send never fails the order that triggered it.
type Notifier interface {
	Send(ctx context.Context, notification *Notification) error
}

// WebhookNotifier POSTs notifications as JSON to a relay endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *WebhookNotifier) Send(ctx context.Context, notification *Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// LogNotifier logs deliveries instead of sending them; used when no webhook
// is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, notification *Notification) error {
	logger.WithComponent("notify").Info("notification",
		zap.String("kind", notification.Kind),
		zap.String("folio", notification.Folio),
		zap.String("phone", notification.CustomerPhone),
	)
	return nil
}
