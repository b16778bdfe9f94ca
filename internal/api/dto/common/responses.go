package common

// SuccessResponse is returned when an inquiry was relayed
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries a generic, user-safe error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Public error messages. Internal details never leave the server.
const (
	MsgMissingFields     = "Missing required fields"
	MsgBotNotConfigured  = "Telegram bot not configured"
	MsgChatNotConfigured = "Telegram chat ID not configured"
	MsgDispatchFailed    = "Failed to send notification"
	MsgInternalServer    = "Internal server error"
	MsgRequestTooLarge   = "Request body too large"
	MsgRouteNotFound     = "Not found"
	MsgMethodNotAllowed  = "Method not allowed"
	MsgForbiddenOrigin   = "Origin not allowed"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
