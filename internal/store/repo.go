package store

import (
	"context"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptRepo manages the append-only attempt log.
type AttemptRepo interface {
	// Append stores a batch of attempts. batchID tags rows created by a
	// single CSV import; pass "" for manual entries.
	Append(ctx context.Context, entries attemptlog.Log, batchID string) error

	// Log returns every attempt in sequence order.
	Log(ctx context.Context) (attemptlog.Log, error)

	// Count returns the number of stored attempts.
	Count(ctx context.Context) (int, error)
}

// CatalogRepo manages the problem master.
type CatalogRepo interface {
	// Replace swaps the entire problem master for the given problems.
	Replace(ctx context.Context, problems []catalog.Problem) error

	// Load returns the stored problem master as a Catalog.
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// SnapshotData is the cached dashboard state stored between sessions,
// so the dashboard can render before the attempt log is replayed.
type SnapshotData struct {
	Version    int       `json:"version"`
	Attempts   int       `json:"attempts"`
	Accuracy   float64   `json:"accuracy"`
	StreakDays int       `json:"streak_days"`
	AsOf       time.Time `json:"as_of"`
}

// Snapshot represents a point-in-time capture of the dashboard state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages dashboard snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
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

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
