package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSend_Success(t *testing.T) {
	var got sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":123}}`))
	}))
	defer server.Close()

	svc := NewTelegramService(server.URL+"/", "test-token", server.Client())

	require.NoError(t, svc.Send(context.Background(), "12345", "*hello*"))
	assert.Equal(t, sendMessageRequest{ChatID: "12345", Text: "*hello*", ParseMode: "Markdown"}, got)
}

func TestTelegramSend_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()

	svc := NewTelegramService(server.URL, "test-token", server.Client())
	err := svc.Send(context.Background(), "12345", "hello")

	var dispatchErr *DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, http.StatusBadRequest, dispatchErr.StatusCode)
	assert.Contains(t, dispatchErr.Body, "chat not found")
}

func TestTelegramSend_NotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"Forbidden"}`))
	}))
	defer server.Close()

	err := NewTelegramService(server.URL, "t", server.Client()).Send(context.Background(), "1", "x")

	var dispatchErr *DispatchError
	assert.ErrorAs(t, err, &dispatchErr)
}

func TestTelegramSend_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway</html>`))
	}))
	defer server.Close()

	err := NewTelegramService(server.URL, "t", server.Client()).Send(context.Background(), "1", "x")

	require.Error(t, err)
	var dispatchErr *DispatchError
	assert.False(t, errors.As(err, &dispatchErr))
}

func TestTelegramSend_TransportErrorHidesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewTelegramService(url, "secret-token", nil).Send(context.Background(), "1", "x")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestNewTelegramService_Defaults(t *testing.T) {
	svc := NewTelegramService("", "t", nil)

	assert.Equal(t, DefaultTelegramAPIURL, svc.apiURL)
	assert.NotNil(t, svc.client)
	assert.Zero(t, svc.client.Timeout)
}
