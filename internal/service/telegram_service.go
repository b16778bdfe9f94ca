package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultTelegramAPIURL is the public Bot API host.
const DefaultTelegramAPIURL = "https://api.telegram.org"

// maxResponseBytes bounds how much of a Bot API response is read.
const maxResponseBytes = 64 << 10

// TelegramService sends notifications through the Telegram Bot API.
type TelegramService struct {
	apiURL   string
	botToken string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service. A nil client gets an
// instrumented client with no explicit timeout.
func NewTelegramService(apiURL, botToken string, client *http.Client) *TelegramService {
	if apiURL == "" {
		apiURL = DefaultTelegramAPIURL
	}
	if client == nil {
		client = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &TelegramService{
		apiURL:   strings.TrimRight(apiURL, "/"),
		botToken: botToken,
		client:   client,
	}
}

// sendMessageRequest represents a Telegram sendMessage call
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts text to chatID. A non-success answer from the API is returned
// as *DispatchError; anything else is a transport or decoding failure.
func (s *TelegramService) Send(ctx context.Context, chatID, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", redactURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DispatchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result sendMessageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse telegram response: %w", err)
	}
	if !result.OK {
		return &DispatchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}

// redactURL drops the request URL, which embeds the bot token, from err.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
