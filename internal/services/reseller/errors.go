package reseller

import "errors"

var (
	ErrNotConfigured = errors.New("reseller API key or URL not configured")
	ErrOrderRejected = errors.New("reseller rejected the order")
)
