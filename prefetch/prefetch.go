// Package prefetch warms an in-memory page cache with the pages linked
// from rendered content, ahead of the user following those links. Warming
// is strictly best-effort: failures are dropped, never surfaced.
package prefetch

import (
	"context"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/bloom"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency bounds concurrent warm fetches.
const DefaultConcurrency = 4

// expectedPages sizes the dedup filter; corpora here are a few hundred
// pages at most.
const expectedPages = 1024

// Prefetcher fetches linked pages into a Cache. Each identifier is warmed
// at most once per session, deduplicated through a Bloom filter.
type Prefetcher struct {
	transport   docview.Transport
	links       docview.LinkExtractor
	cache       *Cache
	limiter     *rate.Limiter
	seen        *bloom.Filter
	concurrency int
}

// Option configures a Prefetcher.
type Option func(*Prefetcher)

// WithLimiter sets a politeness limiter applied before each warm fetch.
func WithLimiter(l *rate.Limiter) Option {
	return func(p *Prefetcher) {
		p.limiter = l
	}
}

// WithConcurrency sets the warm-fetch concurrency bound.
// Defaults to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(p *Prefetcher) {
		p.concurrency = n
	}
}

// New creates a Prefetcher warming pages from transport into cache.
func New(transport docview.Transport, links docview.LinkExtractor, cache *Cache, opts ...Option) *Prefetcher {
	p := &Prefetcher{
		transport:   transport,
		links:       links,
		cache:       cache,
		seen:        bloom.NewFilter(expectedPages, 0.01),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WarmLinked warms every page linked from the body of page.
func (p *Prefetcher) WarmLinked(ctx context.Context, page *docview.Page) {
	ids, err := p.links.PageLinks(page.Body)
	if err != nil {
		return
	}
	// The page itself is as warm as it gets.
	p.seen.Add(page.ID)
	p.Warm(ctx, ids)
}

// Warm fetches the given identifiers into the cache, skipping any already
// warmed this session. Blocks until all fetches settle.
func (p *Prefetcher) Warm(ctx context.Context, ids []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, id := range ids {
		id := docview.NormalizePageID(id)
		if p.seen.TestAndAdd(id) {
			continue
		}
		g.Go(func() error {
			if p.limiter != nil {
				if err := p.limiter.Wait(ctx); err != nil {
					return nil
				}
			}
			page, err := p.transport.Retrieve(ctx, id)
			if err != nil {
				return nil
			}
			p.cache.Put(page)
			return nil
		})
	}

	_ = g.Wait()
}
