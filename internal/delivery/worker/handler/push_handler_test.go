package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockservice "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	boardSvc     *mockservice.MockBoardService
	messengerSvc *mockservice.MockMessengerService
}

func createTestPushHandler(t *testing.T) (*PushHandler, *pushHandlerFixtures) {
	t.Helper()

	f := &pushHandlerFixtures{
		boardSvc:     mockservice.NewMockBoardService(t),
		messengerSvc: mockservice.NewMockMessengerService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPushHandler(PushHandlerParams{
		Config:       &config.Config{},
		Logger:       logger,
		BoardSvc:     f.boardSvc,
		MessengerSvc: f.messengerSvc,
	})

	return h, f
}

func buildPushBody(t *testing.T, event *service.OrderStatusEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = event.OrderID
	pushMsg.Subscription = "projects/test/subscriptions/order-status"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return string(body)
}

func performPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandlePush(c)
	require.NoError(t, err)

	return rec
}

func TestHandlePush_Success(t *testing.T) {
	t.Parallel()

	h, f := createTestPushHandler(t)
	orderID := uuid.New()

	event := &service.OrderStatusEvent{
		OrderID:       orderID.String(),
		Status:        "SHIPPED",
		CustomerEmail: "shopper@example.com",
		Summary:       "Taipei hub / BlackCat",
	}

	f.boardSvc.EXPECT().
		SyncOrderStatus(mock.Anything, orderID, entity.StatusShipped).
		Return(nil).Once()
	f.messengerSvc.EXPECT().
		SendOrderUpdate(mock.Anything, "shopper@example.com", orderID, entity.StatusShipped, "Taipei hub / BlackCat").
		Return(nil).Once()

	rec := performPush(t, h, buildPushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_NoCustomerContactSkipsMessage(t *testing.T) {
	t.Parallel()

	h, f := createTestPushHandler(t)
	orderID := uuid.New()

	event := &service.OrderStatusEvent{
		OrderID: orderID.String(),
		Status:  "CONFIRMED",
	}

	f.boardSvc.EXPECT().
		SyncOrderStatus(mock.Anything, orderID, entity.StatusConfirmed).
		Return(nil).Once()

	rec := performPush(t, h, buildPushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BoardFailureRequestsRetry(t *testing.T) {
	t.Parallel()

	h, f := createTestPushHandler(t)
	orderID := uuid.New()

	event := &service.OrderStatusEvent{
		OrderID:       orderID.String(),
		Status:        "DELIVERED",
		CustomerEmail: "shopper@example.com",
	}

	f.boardSvc.EXPECT().
		SyncOrderStatus(mock.Anything, orderID, entity.StatusDelivered).
		Return(errors.New("board api 502")).Once()

	rec := performPush(t, h, buildPushBody(t, event))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MessengerFailureRequestsRetry(t *testing.T) {
	t.Parallel()

	h, f := createTestPushHandler(t)
	orderID := uuid.New()

	event := &service.OrderStatusEvent{
		OrderID:       orderID.String(),
		Status:        "CANCELLED",
		CustomerEmail: "shopper@example.com",
		Summary:       "changed my mind",
	}

	f.boardSvc.EXPECT().
		SyncOrderStatus(mock.Anything, orderID, entity.StatusCancelled).
		Return(nil).Once()
	f.messengerSvc.EXPECT().
		SendOrderUpdate(mock.Anything, "shopper@example.com", orderID, entity.StatusCancelled, "changed my mind").
		Return(errors.New("messenger api timeout")).Once()

	rec := performPush(t, h, buildPushBody(t, event))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedEventNotRetried(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event *service.OrderStatusEvent
	}{
		{
			name:  "invalid order id",
			event: &service.OrderStatusEvent{OrderID: "not-a-uuid", Status: "SHIPPED"},
		},
		{
			name:  "unknown status",
			event: &service.OrderStatusEvent{OrderID: uuid.New().String(), Status: "TELEPORTED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := createTestPushHandler(t)
			rec := performPush(t, h, buildPushBody(t, tt.event))

			// Poison messages are acked, not retried forever.
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandlePush_UndecodableDataRejected(t *testing.T) {
	t.Parallel()

	h, _ := createTestPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"x"},"subscription":"s"}`
	rec := performPush(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_RequestIDFromAttributes(t *testing.T) {
	t.Parallel()

	h, f := createTestPushHandler(t)
	orderID := uuid.New()

	event := &service.OrderStatusEvent{
		OrderID: orderID.String(),
		Status:  "PROCESSING",
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.Attributes = map[string]string{"request_id": "req-from-attr"}
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	f.boardSvc.EXPECT().
		SyncOrderStatus(mock.Anything, orderID, entity.StatusProcessing).
		Return(nil).Once()

	rec := performPush(t, h, string(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}
