package mock

import (
	"context"

	"github.com/helpsite/docview"
)

var _ docview.Transport = (*Transport)(nil)

// Transport is a mock implementation of docview.Transport.
type Transport struct {
	RetrieveFn func(ctx context.Context, id string) (*docview.Page, error)
	AssetFn    func(ctx context.Context, path string) ([]byte, error)
	CloseFn    func() error
}

func (t *Transport) Retrieve(ctx context.Context, id string) (*docview.Page, error) {
	return t.RetrieveFn(ctx, id)
}

func (t *Transport) Asset(ctx context.Context, path string) ([]byte, error) {
	return t.AssetFn(ctx, path)
}

func (t *Transport) Close() error {
	if t.CloseFn == nil {
		return nil
	}
	return t.CloseFn()
}
