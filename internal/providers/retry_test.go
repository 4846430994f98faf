package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&rateLimitError{}, "rate limited"},
		{&serverError{statusCode: 500, body: "oops"}, "server error: oops"},
		{&authError{message: "bad key"}, "authentication error: bad key"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&rateLimitError{}, true},
		{&serverError{statusCode: 503, body: "unavailable"}, true},
		{&authError{message: "nope"}, false},
		{errors.New("generic"), false},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsAuthError(t *testing.T) {
	if !IsAuthError(&authError{message: "expired"}) {
		t.Error("direct auth error not detected")
	}
	if !IsAuthError(fmt.Errorf("calling provider: %w", &authError{message: "expired"})) {
		t.Error("wrapped auth error not detected")
	}
	if IsAuthError(&rateLimitError{}) {
		t.Error("rate limit misclassified as auth error")
	}
	if IsAuthError(nil) {
		t.Error("nil misclassified as auth error")
	}
}

func TestRetryWithBackoffSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := retryWithBackoff(context.Background(), 3, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryWithBackoffStopsOnNonRetryable(t *testing.T) {
	calls := 0
	wantErr := &authError{message: "bad key"}
	err := retryWithBackoff(context.Background(), 3, func() error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want auth error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on auth)", calls)
	}
}

func TestRetryWithBackoffRetriesThenSucceeds(t *testing.T) {
	calls := 0
	err := retryWithBackoff(context.Background(), 3, func() error {
		calls++
		if calls < 2 {
			return &serverError{statusCode: 500, body: "flaky"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetryWithBackoffHonorsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := retryWithBackoff(ctx, 5, func() error {
		return &rateLimitError{}
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}
