package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messengerConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Messenger = &config.MessengerConfig{
		BaseURL:  baseURL,
		BotToken: "bot-secret",
	}

	return cfg
}

func TestMessengerClient_SendOrderUpdate(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()

	var gotPath, gotAuth string
	var gotPayload messengerPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewMessengerService(messengerConfig(server.URL), testLogger())

	err := client.SendOrderUpdate(context.Background(), "shopper@example.com", orderID, entity.StatusShipped, "Taipei hub")

	require.NoError(t, err)
	assert.Equal(t, "/messages", gotPath)
	assert.Equal(t, "Bearer bot-secret", gotAuth)
	assert.Equal(t, "shopper@example.com", gotPayload.Recipient)
	assert.Contains(t, gotPayload.Subject, orderID.String()[:8])
	assert.Contains(t, gotPayload.Text, "出貨")
	assert.True(t, strings.HasSuffix(gotPayload.Text, "Taipei hub"))
}

func TestMessengerClient_ServerErrorSurfaced(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewMessengerService(messengerConfig(server.URL), testLogger())

	err := client.SendOrderUpdate(context.Background(), "shopper@example.com", uuid.New(), entity.StatusDelivered, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewMessengerService_UnconfiguredReturnsNoop(t *testing.T) {
	t.Parallel()

	client := NewMessengerService(&config.Config{}, testLogger())

	err := client.SendOrderUpdate(context.Background(), "shopper@example.com", uuid.New(), entity.StatusPlaced, "")

	assert.NoError(t, err)
}
