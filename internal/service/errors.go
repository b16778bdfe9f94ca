package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inquiry relay. Each maps to one public response.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrConfiguration = errors.New("configuration error")
	ErrDispatch      = errors.New("notification rejected by sink")
	ErrInternal      = errors.New("internal error")

	ErrBotNotConfigured  = fmt.Errorf("%w: telegram bot token not set", ErrConfiguration)
	ErrChatNotConfigured = fmt.Errorf("%w: telegram chat ID not set", ErrConfiguration)
)

// DispatchError is returned by a NotificationSink that answered with a
// non-success status. Body is kept for server-side logs only.
type DispatchError struct {
	StatusCode int
	Body       string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("telegram API returned status %d", e.StatusCode)
}
