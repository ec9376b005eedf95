package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetry is used for idempotent reads and callback processing.
var DefaultRetry = RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.Multiplier <= 1 {
		c.Multiplier = 2
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = 100 * time.Millisecond
	}
	return c
}

// Retry calls fn with exponential backoff until it succeeds, MaxAttempts is
// reached or ctx is done. Errors matching one of nonRetryable, and context
// errors, are returned immediately.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error, nonRetryable ...error) error {
	cfg = cfg.withDefaults()
	delay := cfg.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= cfg.MaxAttempts || isPermanent(err, nonRetryable) {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

func isPermanent(err error, nonRetryable []error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	for _, target := range nonRetryable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
