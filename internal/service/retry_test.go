package service

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestRetryPolicySucceedsWithinBudget(t *testing.T) {
	policy := NewRetryPolicy(3, time.Millisecond)

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryPolicyReturnsLastError(t *testing.T) {
	policy := NewRetryPolicy(2, time.Millisecond)

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return fmt.Errorf("attempt %d failed", attempts)
	})
	if err == nil {
		t.Fatalf("expected the last error")
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
	if err.Error() != "attempt 2 failed" {
		t.Errorf("expected the final attempt's error, got %v", err)
	}
}

func TestRetryPolicyHonorsContextCancellation(t *testing.T) {
	policy := NewRetryPolicy(5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := policy.Do(ctx, func() error {
		attempts++
		return fmt.Errorf("still failing")
	})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected exactly one attempt before the cancelled wait, got %d", attempts)
	}
}

func TestRetryPolicyMinimumOneAttempt(t *testing.T) {
	policy := NewRetryPolicy(0, time.Millisecond)
	if policy.MaxAttempts != 1 {
		t.Errorf("expected MaxAttempts normalized to 1, got %d", policy.MaxAttempts)
	}
}
