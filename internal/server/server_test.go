package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorolab/site/internal/config"
	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/service"
)

const validBody = `{"name":"Jane Doe","businessName":"Doe Bakery","phoneNumber":"+1 (555) 123-4567","message":"We need a website"}`

type telegramStub struct {
	mu       sync.Mutex
	status   int
	response string
	paths    []string
	bodies   []map[string]interface{}
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	s.paths = append(s.paths, r.URL.Path)
	s.bodies = append(s.bodies, body)
	s.mu.Unlock()

	w.WriteHeader(s.status)
	io.WriteString(w, s.response)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:  "test",
		Port:         "0",
		MaxBodyBytes: 1 << 16,
		ServiceName:  "vorolab-site-test",
	}
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := logging.DefaultConfig()
	cfg.Level = "error"
	logger, err := logging.NewLogger(cfg)
	require.NoError(t, err)
	return logger
}

func newTestServer(t *testing.T, relay service.RelayConfig, stub *telegramStub) (*Server, *httptest.Server) {
	t.Helper()
	telegram := httptest.NewServer(stub)
	t.Cleanup(telegram.Close)

	logger := testLogger(t)
	sink := service.NewTelegramService(telegram.URL, relay.BotToken, telegram.Client())
	srv, err := NewServer(testConfig(), service.NewInquiryService(relay, sink, logger), logger)
	require.NoError(t, err)
	return srv, telegram
}

func do(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	var out map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestInquiryRelayed(t *testing.T) {
	stub := &telegramStub{status: http.StatusOK, response: `{"ok":true,"result":{}}`}
	srv, _ := newTestServer(t, service.RelayConfig{BotToken: "123:abc", ChatID: "-100"}, stub)

	rec, body := do(t, srv, http.MethodPost, "/api/inquiry", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{"success": true}, body)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	require.Len(t, stub.paths, 1)
	assert.Equal(t, "/bot123:abc/sendMessage", stub.paths[0])
	assert.Equal(t, "-100", stub.bodies[0]["chat_id"])
	assert.Equal(t, "Markdown", stub.bodies[0]["parse_mode"])
	assert.Contains(t, stub.bodies[0]["text"], "👤 *Name:* Jane Doe")
	assert.NotContains(t, stub.bodies[0]["text"], "Address")
}

func TestInquiryMissingFields(t *testing.T) {
	stub := &telegramStub{status: http.StatusOK, response: `{"ok":true}`}
	srv, _ := newTestServer(t, service.RelayConfig{BotToken: "123:abc", ChatID: "-100"}, stub)

	rec, body := do(t, srv, http.MethodPost, "/api/inquiry", `{"name":"Jane","businessName":"","phoneNumber":"555","message":"Hi"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Missing required fields"}, body)
	assert.Empty(t, stub.paths)
}

func TestInquiryNotConfigured(t *testing.T) {
	tests := []struct {
		name  string
		relay service.RelayConfig
		want  string
	}{
		{"no token", service.RelayConfig{ChatID: "-100"}, "Telegram bot not configured"},
		{"no chat", service.RelayConfig{BotToken: "123:abc"}, "Telegram chat ID not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &telegramStub{status: http.StatusOK, response: `{"ok":true}`}
			srv, _ := newTestServer(t, tt.relay, stub)

			rec, body := do(t, srv, http.MethodPost, "/api/inquiry", validBody)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, map[string]interface{}{"error": tt.want}, body)
			assert.Empty(t, stub.paths)
		})
	}
}

func TestInquiryDispatchRejected(t *testing.T) {
	stub := &telegramStub{status: http.StatusBadRequest, response: `{"ok":false,"description":"Bad Request: chat not found"}`}
	srv, _ := newTestServer(t, service.RelayConfig{BotToken: "123:abc", ChatID: "-100"}, stub)

	rec, body := do(t, srv, http.MethodPost, "/api/inquiry", validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Failed to send notification"}, body)
	assert.NotContains(t, rec.Body.String(), "chat not found")
	assert.Len(t, stub.paths, 1)
}

func TestInquiryMalformedJSON(t *testing.T) {
	stub := &telegramStub{status: http.StatusOK, response: `{"ok":true}`}
	srv, _ := newTestServer(t, service.RelayConfig{BotToken: "123:abc", ChatID: "-100"}, stub)

	rec, body := do(t, srv, http.MethodPost, "/api/inquiry", `{"name":`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Internal server error"}, body)
	assert.Empty(t, stub.paths)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv, _ := newTestServer(t, service.RelayConfig{}, &telegramStub{status: http.StatusOK})

	rec, body := do(t, srv, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", body["error"])

	rec, _ = do(t, srv, http.MethodGet, "/api/inquiry", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, service.RelayConfig{}, &telegramStub{status: http.StatusOK})

	rec, body := do(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}
