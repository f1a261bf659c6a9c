package store

import (
	"context"
	"database/sql"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // LLM events only; empty matches all
	Outcome string // turn events only; empty matches all
}

// LLMRequestEventData captures the data for a single model request event.
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

// LLMRequestEvent is a stored model request event.
type LLMRequestEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// Turn outcomes recorded by the crop doctor.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport"
	OutcomeParse     = "parse"
	OutcomeSchema    = "schema"
	OutcomeRejected  = "rejected"
)

// TurnEventData captures how a single conversation turn resolved.
type TurnEventData struct {
	Language     string
	InputKind    string // e.g. "text", "image", "image+text"
	Outcome      string
	ResponseType string
	DiseaseLabel string
	Grounded     bool
	LatencyMs    int64
	ErrorMessage string
}

// TurnEvent is a stored turn event.
type TurnEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendTurn records how a conversation turn resolved.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// QueryTurns returns turn events, newest first.
	QueryTurns(ctx context.Context, opts QueryOpts) ([]TurnEvent, error)
}

// eventRepo implements EventRepo over database/sql and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}
