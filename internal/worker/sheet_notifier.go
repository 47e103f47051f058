package worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"comanda/internal/model"
)

// SheetNotifier forwards created orders to an external sheet webhook as
// form-urlencoded records, off the request path. Deliveries are best-effort:
// failures are logged, never retried, and never affect order creation.
type SheetNotifier struct {
	webhookURL string
	client     *http.Client
	queue      chan model.Order
}

func NewSheetNotifier(webhookURL string) *SheetNotifier {
	return &SheetNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		queue:      make(chan model.Order, 64),
	}
}

// Notify enqueues an order for delivery without blocking. If the queue is
// full the order is dropped with a warning.
func (n *SheetNotifier) Notify(o model.Order) {
	select {
	case n.queue <- o:
	default:
		slog.Warn("sheet notifier queue full, dropping order", "id", o.ID)
	}
}

func (n *SheetNotifier) Start(ctx context.Context) {
	slog.Info("starting sheet notifier", "webhook", n.webhookURL)
	for {
		select {
		case <-ctx.Done():
			slog.Info("sheet notifier stopped")
			return
		case o := <-n.queue:
			if err := n.post(ctx, o); err != nil {
				slog.Error("sheet notify failed", "id", o.ID, "error", err)
			}
		}
	}
}

func (n *SheetNotifier) post(ctx context.Context, o model.Order) error {
	form := url.Values{
		"item":     {o.Item},
		"quantity": {strconv.Itoa(o.Quantity)},
		"notes":    {o.Notes},
		"price":    {o.Price},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return nil
}
