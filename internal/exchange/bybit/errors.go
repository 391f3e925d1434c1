package bybit

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a Bybit API error with its upstream return code.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Bybit API error %d: %s", e.Code, e.Message)
}

// Bybit error codes relevant to market-data requests
const (
	ErrCodeInvalidTimestamp  = 10005
	ErrCodeRateLimitExceeded = 10006
	ErrCodeSymbolNotFound    = 110009
)

// NewAPIError creates a typed API error
func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// WrapAPIError annotates an error with the operation it came from
func WrapAPIError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// IsRetryableError determines if an error should be retried. The API error
// may sit anywhere in the wrap chain.
func IsRetryableError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case ErrCodeRateLimitExceeded,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
