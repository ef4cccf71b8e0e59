package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/mock"
	docslog "github.com/helpsite/docview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs the query and hit count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Index{
			SearchFn: func(ctx context.Context, query string, terms []string, limit int) ([]docview.Hit, error) {
				return []docview.Hit{{ID: "pages/14-interrupts.html", Score: 1.2}}, nil
			},
		}

		index := docslog.NewLoggingIndex(inner, logger)
		hits, err := index.Search(context.Background(), "interrupt*", []string{"interrupt"}, 10)

		require.NoError(t, err)
		assert.Len(t, hits, 1)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=interrupt*")
		assert.Contains(t, output, "hits=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on a rejected query", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Index{
			SearchFn: func(ctx context.Context, query string, terms []string, limit int) ([]docview.Hit, error) {
				return nil, docview.Errorf(docview.EQUERYSYNTAX, "unparseable query")
			},
		}

		index := docslog.NewLoggingIndex(inner, logger)
		_, err := index.Search(context.Background(), `title:"unbalanced`, nil, 10)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "unparseable query")
	})
}
