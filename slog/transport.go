// Package slog provides logging decorators for the engine's interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/helpsite/docview"
)

// Ensure LoggingTransport implements docview.Transport at compile time.
var _ docview.Transport = (*LoggingTransport)(nil)

// LoggingTransport wraps a Transport with retrieval logging.
type LoggingTransport struct {
	next   docview.Transport
	logger *slog.Logger
}

// NewLoggingTransport creates a new LoggingTransport.
func NewLoggingTransport(next docview.Transport, logger *slog.Logger) *LoggingTransport {
	return &LoggingTransport{next: next, logger: logger}
}

// Retrieve delegates to the wrapped transport and logs the outcome.
func (t *LoggingTransport) Retrieve(ctx context.Context, id string) (*docview.Page, error) {
	begin := time.Now()
	page, err := t.next.Retrieve(ctx, id)
	if err != nil {
		t.logger.Error("retrieve",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	t.logger.Info("retrieve",
		"id", id,
		"title", page.Title,
		"duration", time.Since(begin),
	)
	return page, nil
}

// Asset delegates to the wrapped transport and logs the outcome.
func (t *LoggingTransport) Asset(ctx context.Context, path string) ([]byte, error) {
	begin := time.Now()
	data, err := t.next.Asset(ctx, path)
	if err != nil {
		t.logger.Error("asset",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	t.logger.Info("asset",
		"path", path,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}

// Close delegates to the wrapped transport.
func (t *LoggingTransport) Close() error {
	return t.next.Close()
}
