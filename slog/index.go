package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/helpsite/docview"
)

// Ensure LoggingIndex implements docview.Index at compile time.
var _ docview.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with query logging.
type LoggingIndex struct {
	next   docview.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next docview.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Search delegates to the wrapped index and logs the outcome.
func (i *LoggingIndex) Search(ctx context.Context, query string, terms []string, limit int) ([]docview.Hit, error) {
	begin := time.Now()
	hits, err := i.next.Search(ctx, query, terms, limit)
	if err != nil {
		i.logger.Error("search",
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	i.logger.Info("search",
		"query", query,
		"hits", len(hits),
		"duration", time.Since(begin),
	)
	return hits, nil
}

// DocCount delegates to the wrapped index.
func (i *LoggingIndex) DocCount() (uint64, error) {
	return i.next.DocCount()
}

// Close delegates to the wrapped index.
func (i *LoggingIndex) Close() error {
	return i.next.Close()
}
