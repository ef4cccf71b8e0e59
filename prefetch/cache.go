package prefetch

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/helpsite/docview"
)

// Cache is an in-memory, session-scoped page cache. Entries carry an
// xxHash of their extracted content so re-puts of unchanged pages are
// cheap and refreshes are detectable. The cache never persists.
type Cache struct {
	mu    sync.RWMutex
	pages map[string]*docview.Page
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{pages: make(map[string]*docview.Page)}
}

// Get returns the cached page for id, if present.
func (c *Cache) Get(id string) (*docview.Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.pages[id]
	return page, ok
}

// Put stores a page, reporting whether its content differs from what was
// cached before (always true for a first sighting).
func (c *Cache) Put(page *docview.Page) bool {
	h := hashPage(page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.pages[page.ID]; ok && hashPage(old) == h {
		return false
	}
	c.pages[page.ID] = page
	return true
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// hashPage computes a content hash over the extracted fields.
func hashPage(p *docview.Page) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(p.Title)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(p.Heading)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(p.Body)
	return d.Sum64()
}
