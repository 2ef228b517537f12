package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// messengerClient implements service.MessengerService against the messaging
// bot API.
type messengerClient struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
	logger     *slog.Logger
}

type noopMessengerClient struct {
	logger *slog.Logger
}

func (c *noopMessengerClient) SendOrderUpdate(_ context.Context, recipient string, orderID uuid.UUID, status entity.OrderStatus, _ string) error {
	c.logger.Debug("[Messenger] Integration disabled, skipping message",
		slog.String("recipient", recipient),
		slog.String("order_id", orderID.String()),
		slog.String("status", status.String()),
	)

	return nil
}

// NewMessengerService creates the messenger client, or a no-op when unconfigured.
func NewMessengerService(cfg *config.Config, logger *slog.Logger) service.MessengerService {
	if cfg.Messenger == nil || cfg.Messenger.BaseURL == "" {
		logger.Info("Messenger integration not configured, using no-op client")

		return &noopMessengerClient{logger: logger}
	}

	return &messengerClient{
		baseURL:  cfg.Messenger.BaseURL,
		botToken: cfg.Messenger.BotToken,
		httpClient: &http.Client{
			Timeout: defaultClientTimeout,
		},
		logger: logger,
	}
}

// messengerPayload is the request body accepted by the messaging API.
type messengerPayload struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Text      string `json:"text"`
}

// statusMessages maps each order status to the customer-facing message line.
var statusMessages = map[entity.OrderStatus]string{
	entity.StatusPlaced:     "我們已收到您的訂單,正在等待確認。",
	entity.StatusConfirmed:  "您的訂單已確認,即將開始備貨。",
	entity.StatusProcessing: "您的訂單正在備貨中。",
	entity.StatusShipped:    "您的訂單已出貨,請留意物流通知。",
	entity.StatusDelivered:  "您的訂單已送達,感謝您的購買!",
	entity.StatusCancelled:  "您的訂單已取消,如有疑問請與我們聯繫。",
}

// SendOrderUpdate delivers a status message for an order to the customer.
func (c *messengerClient) SendOrderUpdate(ctx context.Context, recipient string, orderID uuid.UUID, status entity.OrderStatus, summary string) error {
	text, ok := statusMessages[status]
	if !ok {
		text = fmt.Sprintf("您的訂單狀態已更新為 %s。", status)
	}
	if summary != "" {
		text = text + "\n" + summary
	}

	payload := messengerPayload{
		Recipient: recipient,
		Subject:   fmt.Sprintf("訂單 %s 狀態更新", shortOrderRef(orderID)),
		Text:      text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	endpoint := c.baseURL + "/messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.botToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "messenger request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("messenger returned non-success status: %d", resp.StatusCode)
	}

	c.logger.Info("[Messenger] Order update sent",
		slog.String("recipient", recipient),
		slog.String("order_id", orderID.String()),
		slog.String("status", status.String()),
	)

	return nil
}

// shortOrderRef keeps customer messages readable without the full UUID.
func shortOrderRef(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}

	return s
}
