package store

import (
	"context"
	"errors"
	"time"
)

// Logical keys of the persisted state documents.
const (
	KeyUserStats        = "user_stats"
	KeyActivityProgress = "activity_progress"
	KeyDailyResults     = "daily_results"
	KeyCompletedDates   = "completed_dates"
	KeyDailyContent     = "daily_content"
)

// StateKeys lists every state document key.
var StateKeys = []string{
	KeyUserStats,
	KeyActivityProgress,
	KeyDailyResults,
	KeyCompletedDates,
	KeyDailyContent,
}

// ErrCorrupt is returned when a stored document cannot be decoded.
var ErrCorrupt = errors.New("corrupt state document")

// StateRepo stores JSON documents under fixed keys.
type StateRepo interface {
	// Get decodes the document at key into dst. It reports false when the
	// key has never been written. Decoding failures wrap ErrCorrupt and
	// leave dst untouched.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Put encodes v and stores it under key, replacing any prior value.
	Put(ctx context.Context, key string, v any) error

	// PutMany stores several documents in one transaction.
	PutMany(ctx context.Context, docs map[string]any) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	From    time.Time // timestamp >= From
	Purpose string    // LLM events only
	Mode    string    // practice events only
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// PracticeEventData records one finished practice run.
type PracticeEventData struct {
	RunID       string
	Day         string
	Mode        string
	XP          int
	Points      int
	MissedCount int
	DurationMs  int64
	// Accepted is false when the completion was rejected (mode already
	// completed today).
	Accepted bool
}

// PracticeEvent is a stored practice run.
type PracticeEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PracticeEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendPractice records a finished practice run.
	AppendPractice(ctx context.Context, data PracticeEventData) error

	// QueryPracticeEvents returns practice runs, newest first.
	QueryPracticeEvents(ctx context.Context, opts QueryOpts) ([]PracticeEvent, error)
}
