package cache

import (
	"context"
	"errors"
	"testing"
)

var errFlaky = errors.New("connection reset")

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(errFlaky)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != errFlaky.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// The cause stays reachable through the wrapper
	if !errors.Is(err, errFlaky) {
		t.Error("wrapped error should match its cause via errors.Is")
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(errFlaky) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return errFlaky
	})
	if err != errFlaky {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(errFlaky)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Cancelled context should stop after one attempt: %d", calls)
	}
}

func TestClassifyRedisErr(t *testing.T) {
	if classifyRedisErr(nil) != nil {
		t.Error("nil error should stay nil")
	}

	// Network failures become retryable
	if !IsRetryable(classifyRedisErr(errFlaky)) {
		t.Error("transient failure should be retryable")
	}

	// Context errors pass through so the retry loop stops
	if IsRetryable(classifyRedisErr(context.Canceled)) {
		t.Error("context.Canceled should not be retryable")
	}
	if IsRetryable(classifyRedisErr(context.DeadlineExceeded)) {
		t.Error("context.DeadlineExceeded should not be retryable")
	}
}
