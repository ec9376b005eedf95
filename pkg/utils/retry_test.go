package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errPermanent := errors.New("permanent")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name         string
		failures     []error
		nonRetryable []error
		wantErr      error
		wantCalls    int
	}{
		{
			name:      "succeeds first time",
			wantCalls: 1,
		},
		{
			name:      "succeeds after temporary failures",
			failures:  []error{errTemporary, errTemporary},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			failures:  []error{errTemporary, errTemporary, errTemporary, errTemporary},
			wantErr:   errTemporary,
			wantCalls: 3,
		},
		{
			name:         "stops on non retryable error",
			failures:     []error{fmt.Errorf("wrapped: %w", errPermanent)},
			nonRetryable: []error{errPermanent},
			wantErr:      errPermanent,
			wantCalls:    1,
		},
		{
			name:      "stops on context cancellation",
			failures:  []error{context.Canceled},
			wantErr:   context.Canceled,
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}, tc.nonRetryable...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetry_StopsWhenContextDone(t *testing.T) {
	errTemporary := errors.New("temporary")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 10, InitialDelay: time.Hour}, func() error {
		calls++
		cancel()
		return errTemporary
	})

	assert.ErrorIs(t, err, errTemporary)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
