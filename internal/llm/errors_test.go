package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestFromStatus(t *testing.T) {
	cause := errors.New("boom")
	withRetry := http.Header{"Retry-After": []string{"7"}}

	var rl *ErrRateLimit
	if err := fromStatus(http.StatusTooManyRequests, withRetry, cause); !errors.As(err, &rl) || rl.RetryAfter != 7*time.Second {
		t.Errorf("429 = %v", err)
	}
	if err := fromStatus(http.StatusTooManyRequests, nil, cause); !errors.As(err, &rl) || rl.RetryAfter != 0 {
		t.Errorf("429 without header = %v", err)
	}

	var rej *ErrRejected
	for _, status := range []int{400, 401, 403, 404} {
		if err := fromStatus(status, nil, cause); !errors.As(err, &rej) || rej.Status != status {
			t.Errorf("%d = %v, want rejected", status, err)
		}
	}

	var un *ErrProviderUnavailable
	for _, status := range []int{0, 500, 503} {
		err := fromStatus(status, nil, cause)
		if !errors.As(err, &un) {
			t.Errorf("%d = %v, want unavailable", status, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("%d should wrap the cause", status)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want errClass
	}{
		{context.Canceled, classFatal},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), classFatal},
		{&ErrMaxTokensExceeded{}, classFatal},
		{&ErrRejected{Status: 401}, classFatal},
		{&ErrInvalidResponse{Content: json.RawMessage(`{}`)}, classInvalid},
		{&ErrRateLimit{}, classTransient},
		{&ErrProviderUnavailable{}, classTransient},
		{errors.New("connection reset"), classTransient},
	}
	for _, tt := range tests {
		if got := classify(tt.err); got != tt.want {
			t.Errorf("classify(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
