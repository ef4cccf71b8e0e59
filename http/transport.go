// Package http provides the network variant of docview.Transport for
// corpora served over HTTP.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/helpsite/docview"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// Ensure Transport implements docview.Transport at compile time.
var _ docview.Transport = (*Transport)(nil)

// Transport retrieves pages and assets from a corpus base URL.
type Transport struct {
	base      string
	extractor docview.Extractor
	client    *http.Client
	timeout   time.Duration
}

// Option configures a Transport.
type Option func(*Transport)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(t *Transport) {
		t.timeout = d
	}
}

// WithClient sets a custom HTTP client. Its timeout is left untouched.
func WithClient(c *http.Client) Option {
	return func(t *Transport) {
		t.client = c
	}
}

// NewTransport creates a Transport rooted at base. Identifiers and asset
// paths are resolved relative to base.
func NewTransport(base string, extractor docview.Extractor, opts ...Option) *Transport {
	t := &Transport{
		base:      base,
		extractor: extractor,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.client == nil {
		t.client = &http.Client{Timeout: t.timeout}
	}
	return t
}

// Retrieve fetches the page at id and extracts its fields.
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

// Asset fetches a raw asset by path. A non-success status or a failed
// request returns ETRANSPORT.
func (t *Transport) Asset(ctx context.Context, path string) ([]byte, error) {
	target, err := url.JoinPath(t.base, path)
	if err != nil {
		return nil, docview.Errorf(docview.EINVALID, "invalid asset path %q: %v", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, docview.Errorf(docview.EINVALID, "invalid request for %q: %v", path, err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, docview.Errorf(docview.ETRANSPORT, "failed to retrieve %q: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docview.Errorf(docview.ETRANSPORT, "HTTP %d for %q", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, docview.Errorf(docview.ETRANSPORT, "failed to read %q: %v", path, err)
	}
	return body, nil
}

// Close releases resources. For the HTTP transport this is a no-op since
// http.Client doesn't require explicit cleanup.
func (t *Transport) Close() error {
	return nil
}
