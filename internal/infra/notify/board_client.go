// Package notify contains the REST clients for the third-party collaborators:
// the project board that mirrors fulfillment progress and the messaging API
// that keeps customers informed. Both are best-effort integrations.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultClientTimeout = 10 * time.Second

// boardClient implements service.BoardService against the project-board REST API.
// Each order has a card named after its ID; a status transition moves the card
// to the list configured for that status.
type boardClient struct {
	baseURL    string
	apiKey     string
	token      string
	listIDs    map[string]string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopBoardClient is used when the board integration is not configured.
type noopBoardClient struct {
	logger *slog.Logger
}

func (c *noopBoardClient) SyncOrderStatus(_ context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	c.logger.Debug("[Board] Integration disabled, skipping sync",
		slog.String("order_id", orderID.String()),
		slog.String("status", status.String()),
	)

	return nil
}

// NewBoardService creates the board client, or a no-op when unconfigured.
func NewBoardService(cfg *config.Config, logger *slog.Logger) service.BoardService {
	if cfg.Board == nil || cfg.Board.BaseURL == "" {
		logger.Info("Board integration not configured, using no-op client")

		return &noopBoardClient{logger: logger}
	}

	return &boardClient{
		baseURL: cfg.Board.BaseURL,
		apiKey:  cfg.Board.APIKey,
		token:   cfg.Board.Token,
		listIDs: cfg.Board.ListIDs,
		httpClient: &http.Client{
			Timeout: defaultClientTimeout,
		},
		logger: logger,
	}
}

// boardCardUpdate is the request body for moving/annotating an order card.
type boardCardUpdate struct {
	ListID      string `json:"idList"`
	Description string `json:"desc"`
}

// SyncOrderStatus moves the board card of an order to the list configured for
// its new status.
func (c *boardClient) SyncOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	listID, ok := c.listIDs[status.String()]
	if !ok {
		c.logger.Warn("[Board] No list configured for status, skipping sync",
			slog.String("status", status.String()),
		)

		return nil
	}

	payload := boardCardUpdate{
		ListID:      listID,
		Description: fmt.Sprintf("Order %s moved to %s", orderID, status),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	endpoint := fmt.Sprintf("%s/cards/%s?key=%s&token=%s",
		c.baseURL, orderID, url.QueryEscape(c.apiKey), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "board request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("board returned non-success status: %d", resp.StatusCode)
	}

	c.logger.Info("[Board] Order card synced",
		slog.String("order_id", orderID.String()),
		slog.String("status", status.String()),
	)

	return nil
}
