package bybit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		InitialDelay:  time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(NewAPIError(ErrCodeRateLimitExceeded, "rate limited")))
	assert.True(t, IsRetryableError(NewAPIError(503, "unavailable")))
	assert.False(t, IsRetryableError(NewAPIError(ErrCodeSymbolNotFound, "unknown symbol")))
	assert.False(t, IsRetryableError(errors.New("plain error")))
	assert.False(t, IsRetryableError(nil))
}

func TestIsRetryableError_UnwrapsChain(t *testing.T) {
	// Market calls annotate API errors before the retry loop classifies them
	wrapped := WrapAPIError("failed to get klines", NewAPIError(ErrCodeRateLimitExceeded, "rate limited"))
	assert.True(t, IsRetryableError(wrapped))

	wrapped = WrapAPIError("failed to get klines", NewAPIError(ErrCodeSymbolNotFound, "unknown symbol"))
	assert.False(t, IsRetryableError(wrapped))
}

func TestRetry_RetriesWrappedTransientError(t *testing.T) {
	c := NewClient(Config{})
	attempts := 0

	err := c.RetryWithConfig(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return WrapAPIError("failed to get klines", NewAPIError(ErrCodeRateLimitExceeded, "rate limited"))
		}
		return nil
	}, fastRetryConfig(3))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	c := NewClient(Config{})
	attempts := 0

	err := c.RetryWithConfig(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return NewAPIError(ErrCodeRateLimitExceeded, "rate limited")
		}
		return nil
	}, fastRetryConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	c := NewClient(Config{})
	attempts := 0

	err := c.RetryWithConfig(context.Background(), func() error {
		attempts++
		return NewAPIError(ErrCodeSymbolNotFound, "unknown symbol")
	}, fastRetryConfig(5))

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	c := NewClient(Config{})
	attempts := 0

	err := c.RetryWithConfig(context.Background(), func() error {
		attempts++
		return NewAPIError(503, "unavailable")
	}, fastRetryConfig(2))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry exhausted")
	assert.Equal(t, 3, attempts)
}

func TestRetry_CancelledContext(t *testing.T) {
	c := NewClient(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.RetryWithConfig(ctx, func() error {
		t.Fatal("function must not run with a cancelled context")
		return nil
	}, fastRetryConfig(2))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrapAPIError(t *testing.T) {
	assert.Nil(t, WrapAPIError("op", nil))

	wrapped := WrapAPIError("get klines", NewAPIError(10005, "bad timestamp"))
	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "get klines")

	var apiErr *APIError
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, 10005, apiErr.Code)
}
