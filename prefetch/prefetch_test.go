package prefetch_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/mock"
	"github.com/helpsite/docview/prefetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("get returns what was put", func(t *testing.T) {
		t.Parallel()

		cache := prefetch.NewCache()
		page := &docview.Page{ID: "pages/1-home.html", Title: "Home"}

		assert.True(t, cache.Put(page), "first put reports a change")

		got, ok := cache.Get("pages/1-home.html")
		require.True(t, ok)
		assert.Equal(t, page, got)
	})

	t.Run("unchanged content re-put reports no change", func(t *testing.T) {
		t.Parallel()

		cache := prefetch.NewCache()
		cache.Put(&docview.Page{ID: "pages/1-home.html", Title: "Home", Body: "a"})

		assert.False(t, cache.Put(&docview.Page{ID: "pages/1-home.html", Title: "Home", Body: "a"}))
		assert.True(t, cache.Put(&docview.Page{ID: "pages/1-home.html", Title: "Home", Body: "b"}))
		assert.Equal(t, 1, cache.Len())
	})
}

func TestWarmLinked(t *testing.T) {
	t.Parallel()

	t.Run("warms linked pages at most once per session", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64
		transport := &mock.Transport{
			RetrieveFn: func(_ context.Context, id string) (*docview.Page, error) {
				fetches.Add(1)
				return &docview.Page{ID: id, Title: id}, nil
			},
		}
		links := &mock.LinkExtractor{
			PageLinksFn: func(string) ([]string, error) {
				return []string{"3-io.html", "14-interrupts.html"}, nil
			},
		}
		cache := prefetch.NewCache()
		p := prefetch.New(transport, links, cache)

		page := &docview.Page{ID: "pages/1-home.html", Body: `<a href="3-io.html">io</a>`}
		p.WarmLinked(context.Background(), page)
		p.WarmLinked(context.Background(), page)

		assert.Equal(t, int64(2), fetches.Load(), "each linked page fetched once")
		assert.Equal(t, 2, cache.Len())

		_, ok := cache.Get("pages/3-io.html")
		assert.True(t, ok, "identifiers are normalized before warming")
	})

	t.Run("fetch failures are dropped silently", func(t *testing.T) {
		t.Parallel()

		transport := &mock.Transport{
			RetrieveFn: func(_ context.Context, id string) (*docview.Page, error) {
				return nil, docview.Errorf(docview.ETRANSPORT, "no such page")
			},
		}
		links := &mock.LinkExtractor{
			PageLinksFn: func(string) ([]string, error) {
				return []string{"99-missing.html"}, nil
			},
		}
		cache := prefetch.NewCache()
		p := prefetch.New(transport, links, cache)

		p.WarmLinked(context.Background(), &docview.Page{ID: "pages/1-home.html"})

		assert.Zero(t, cache.Len())
	})
}
