package bybit

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig holds configuration for retrying failed API calls
type RetryConfig struct {
	MaxRetries    int           `json:"maxRetries"`
	InitialDelay  time.Duration `json:"initialDelay"`
	MaxDelay      time.Duration `json:"maxDelay"`
	BackoffFactor float64       `json:"backoffFactor"`
	JitterEnabled bool          `json:"jitterEnabled"`
}

// DefaultRetryConfig returns a default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Second,
		MaxDelay:      time.Minute,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// Retry executes fn with the default retry configuration
func (c *Client) Retry(ctx context.Context, fn func() error) error {
	return c.RetryWithConfig(ctx, fn, DefaultRetryConfig())
}

// RetryWithConfig executes fn with exponential backoff. Only errors classified
// as retryable are re-attempted; the last error is returned when the budget
// runs out.
func (c *Client) RetryWithConfig(ctx context.Context, fn func() error, config RetryConfig) error {
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == config.MaxRetries || !IsRetryableError(err) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(calculateDelay(attempt, config)):
		}
	}

	return WrapAPIError("retry exhausted", lastErr)
}

func calculateDelay(attempt int, config RetryConfig) time.Duration {
	delay := config.InitialDelay
	if attempt > 0 {
		delay = time.Duration(float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt)))
	}
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	if config.JitterEnabled {
		jitter := time.Duration(float64(delay) * 0.1 * (2*rand.Float64() - 1))
		delay += jitter
	}
	return delay
}
