// Package fs provides the local variant of docview.Transport for corpora
// opened straight from a directory, with no server present. It stands in
// for the original's sandboxed embedded frame: one shared resource whose
// access is serialized by the transport itself rather than by caller
// discipline.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/helpsite/docview"
)

// Ensure Transport implements docview.Transport at compile time.
var _ docview.Transport = (*Transport)(nil)

// Transport retrieves pages and assets from a corpus base directory.
// Overlapping calls are admitted one at a time.
type Transport struct {
	base      string
	extractor docview.Extractor
	gate      chan struct{} // single-admission gate
}

// NewTransport creates a Transport rooted at the base directory.
func NewTransport(base string, extractor docview.Extractor) *Transport {
	return &Transport{
		base:      base,
		extractor: extractor,
		gate:      make(chan struct{}, 1),
	}
}

// Retrieve reads the page at id and extracts its fields.
func (t *Transport) Retrieve(ctx context.Context, id string) (*docview.Page, error) {
	body, err := t.Asset(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := t.extractor.Extract(string(body), id)
	if err != nil {
		return nil, err
	}

	return &docview.Page{
		ID:      id,
		Title:   result.Title,
		Heading: result.Heading,
		Body:    result.Body,
	}, nil
}

// Asset reads a raw asset by path. Paths resolving outside the base
// directory and read failures return ETRANSPORT.
func (t *Transport) Asset(ctx context.Context, path string) ([]byte, error) {
	if err := t.acquire(ctx); err != nil {
		return nil, err
	}
	defer t.release()

	full, err := t.resolve(path)
	if err != nil {
		return nil, err
	}

	body, err := os.ReadFile(full)
	if err != nil {
		return nil, docview.Errorf(docview.ETRANSPORT, "failed to load %q: %v", path, err)
	}
	return body, nil
}

// Close releases the transport. Pending acquisitions are unaffected.
func (t *Transport) Close() error {
	return nil
}

// resolve maps a corpus-relative path onto the base directory, refusing
// anything that escapes it.
func (t *Transport) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", docview.Errorf(docview.ETRANSPORT, "path %q escapes the corpus directory", path)
	}
	return filepath.Join(t.base, clean), nil
}

func (t *Transport) acquire(ctx context.Context) error {
	select {
	case t.gate <- struct{}{}:
		return nil
	case <-ctx.Done():
		return docview.Errorf(docview.ETRANSPORT, "retrieval canceled: %v", ctx.Err())
	}
}

func (t *Transport) release() {
	<-t.gate
}
