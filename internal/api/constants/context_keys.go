package constants

// Context keys for validated requests
const (
	ContextKeyInquiry   = "inquiry"
	ContextKeyRequestID = "RequestID"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
)
