// Package store persists search history. The catalog itself is never stored.
package store

import (
	"context"

	"github.com/sells-group/impact-search/internal/model"
)

// DefaultTopLimit caps TopQueries when the caller passes a non-positive limit.
const DefaultTopLimit = 10

// Store defines the persistence interface for search history.
type Store interface {
	// RecordSearch appends one search event. A missing ID or timestamp is
	// filled in.
	RecordSearch(ctx context.Context, ev model.SearchEvent) error

	// TopQueries returns the most frequent non-empty normalized queries,
	// most frequent first and most recent first on ties.
	TopQueries(ctx context.Context, limit int) ([]model.QueryCount, error)

	// TopicCounts returns how many searches resolved to each topic.
	TopicCounts(ctx context.Context) ([]model.TopicCount, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

func topLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	return limit
}
