package utils

import "github.com/google/uuid"

// RequestIDHeader carries the per-request trace identifier.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a random identifier used to correlate client and
// server logs of one request.
func NewRequestID() string {
	return uuid.NewString()
}
