package mock

import (
	"context"

	"github.com/helpsite/docview"
)

var _ docview.Index = (*Index)(nil)

// Index is a mock implementation of docview.Index.
type Index struct {
	SearchFn   func(ctx context.Context, query string, terms []string, limit int) ([]docview.Hit, error)
	DocCountFn func() (uint64, error)
	CloseFn    func() error
}

func (i *Index) Search(ctx context.Context, query string, terms []string, limit int) ([]docview.Hit, error) {
	return i.SearchFn(ctx, query, terms, limit)
}

func (i *Index) DocCount() (uint64, error) {
	if i.DocCountFn == nil {
		return 0, nil
	}
	return i.DocCountFn()
}

func (i *Index) Close() error {
	if i.CloseFn == nil {
		return nil
	}
	return i.CloseFn()
}
