package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func boardConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Board = &config.BoardConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Token:   "test-token",
		ListIDs: map[string]string{
			"SHIPPED":   "list-shipped",
			"DELIVERED": "list-delivered",
		},
	}

	return cfg
}

func TestBoardClient_SyncOrderStatus(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()

	var gotMethod, gotPath, gotKey, gotToken string
	var gotBody boardCardUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotToken = r.URL.Query().Get("token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewBoardService(boardConfig(server.URL), testLogger())

	err := client.SyncOrderStatus(context.Background(), orderID, entity.StatusShipped)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/cards/"+orderID.String(), gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "list-shipped", gotBody.ListID)
	assert.Contains(t, gotBody.Description, orderID.String())
}

func TestBoardClient_UnmappedStatusSkipped(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewBoardService(boardConfig(server.URL), testLogger())

	err := client.SyncOrderStatus(context.Background(), uuid.New(), entity.StatusPlaced)

	require.NoError(t, err)
	assert.False(t, called)
}

func TestBoardClient_ServerErrorSurfaced(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewBoardService(boardConfig(server.URL), testLogger())

	err := client.SyncOrderStatus(context.Background(), uuid.New(), entity.StatusDelivered)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewBoardService_UnconfiguredReturnsNoop(t *testing.T) {
	t.Parallel()

	client := NewBoardService(&config.Config{}, testLogger())

	// The no-op client never makes network calls, so any status is fine.
	err := client.SyncOrderStatus(context.Background(), uuid.New(), entity.StatusShipped)

	assert.NoError(t, err)
}
