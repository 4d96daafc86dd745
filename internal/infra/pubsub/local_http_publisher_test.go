package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"matcha/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPubSubTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishUserRegistered(t *testing.T) {
	var received PubSubPushMessage
	var receivedHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newPubSubTestLogger())

	event := &service.UserRegisteredEvent{
		RequestID:    "req-123",
		UserID:       42,
		Username:     "alice",
		Email:        "alice@example.com",
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishUserRegistered(context.Background(), event))

	assert.Equal(t, "req-123", receivedHeader)
	assert.Equal(t, "42", received.Message.Attributes["user_id"])
	assert.Equal(t, "alice", received.Message.Attributes["username"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.UserRegisteredEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.UserID, decoded.UserID)
	assert.Equal(t, event.Email, decoded.Email)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newPubSubTestLogger())

	err := publisher.PublishUserRegistered(context.Background(), &service.UserRegisteredEvent{UserID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestLocalHTTPPublisher_UnreachableEndpoint(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1/push", newPubSubTestLogger())

	err := publisher.PublishUserRegistered(context.Background(), &service.UserRegisteredEvent{UserID: 1})

	assert.Error(t, err)
}
