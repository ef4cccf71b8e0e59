// Package nav owns the visited-page stack and its bridge to the host
// history, retrieves and renders pages, and routes intercepted links.
package nav

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/helpsite/docview"
	"github.com/helpsite/docview/prefetch"
)

// errorHeading heads the inline error page rendered on a failed retrieval.
const errorHeading = "Error loading page"

// Controller navigates the corpus. It owns the stack and position
// exclusively; the host history is only ever driven through Push and
// Back/Forward, so the two cannot diverge.
//
// Wire the exported fields, then call Init once. Transport, Renderer, and
// History are required; Indicator, Cache, and Prefetcher are optional.
type Controller struct {
	Transport  docview.Transport
	Renderer   docview.Renderer
	History    docview.History
	Indicator  docview.Indicator
	Cache      *prefetch.Cache
	Prefetcher *prefetch.Prefetcher

	ctx     context.Context
	session string

	mu    sync.Mutex
	stack []string
	pos   int

	// seq stamps each retrieval; completions older than the newest issue
	// are discarded, so a slow stale response cannot overwrite a newer
	// render or corrupt the stack.
	seq atomic.Uint64
}

// Init registers the pop handler and navigates to the identifier in the
// current location fragment (or the default landing page). The context is
// retained for navigations triggered by history pop events.
func (c *Controller) Init(ctx context.Context) error {
	c.ctx = ctx
	c.session = uuid.New().String()
	c.mu.Lock()
	c.pos = -1
	c.stack = nil
	c.mu.Unlock()

	c.History.SetPopHandler(c.handlePop)
	return c.NavigateTo(ctx, c.History.Fragment())
}

// Session returns the identity stamped on this instance's history entries.
func (c *Controller) Session() string {
	return c.session
}

// NavigateTo retrieves and renders the page at id as a forward
// navigation: forward stack entries are discarded, the identifier is
// appended, and a history entry is pushed with the identifier as the
// fragment. A failed retrieval renders an inline error page and leaves
// the stack untouched.
func (c *Controller) NavigateTo(ctx context.Context, id string) error {
	id = docview.NormalizePageID(id)
	seq := c.seq.Add(1)

	c.indicator().ShowLoading()
	defer c.indicator().DoneLoading()

	page, err := c.retrieve(ctx, id)

	// The staleness decision is made under the same lock as the stack
	// mutation, so a completion cannot pass the check and then interleave
	// its update with a navigation issued in between.
	c.mu.Lock()
	if c.seq.Load() != seq {
		c.mu.Unlock()
		return nil // superseded by a newer navigation
	}
	if err != nil {
		c.mu.Unlock()
		c.Renderer.RenderError(errorHeading, docview.ErrorMessage(err))
		return err
	}

	c.stack = append(c.stack[:c.pos+1], id)
	c.pos = len(c.stack) - 1
	entry := docview.HistoryEntry{Session: c.session, Position: c.pos, PageID: id}
	back, forward := c.pos > 0, false
	c.mu.Unlock()

	c.History.Push(entry, id)
	c.Renderer.RenderPage(page)
	c.Renderer.UpdateButtons(back, forward)
	c.warm(ctx, page)
	return nil
}

// LoadAt replays the stack entry at position: the same retrieval and
// render path as NavigateTo, but without mutating the stack or pushing
// history. Out-of-bounds positions are a no-op.
func (c *Controller) LoadAt(ctx context.Context, position int) error {
	c.mu.Lock()
	if position < 0 || position >= len(c.stack) {
		c.mu.Unlock()
		return nil
	}
	id := c.stack[position]
	c.mu.Unlock()

	seq := c.seq.Add(1)

	c.indicator().ShowLoading()
	defer c.indicator().DoneLoading()

	page, err := c.retrieve(ctx, id)

	c.mu.Lock()
	if c.seq.Load() != seq {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.Renderer.RenderError(errorHeading, docview.ErrorMessage(err))
		return err
	}

	c.pos = position
	back, forward := c.pos > 0, c.pos < len(c.stack)-1
	c.mu.Unlock()

	c.Renderer.RenderPage(page)
	c.Renderer.UpdateButtons(back, forward)
	c.warm(ctx, page)
	return nil
}

// Back steps the host history back when possible.
func (c *Controller) Back() {
	if c.BackEnabled() {
		c.History.Back()
	}
}

// Forward steps the host history forward when possible.
func (c *Controller) Forward() {
	if c.ForwardEnabled() {
		c.History.Forward()
	}
}

// BackEnabled reports whether a back step is possible. A pure function of
// stack state.
func (c *Controller) BackEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos > 0
}

// ForwardEnabled reports whether a forward step is possible.
func (c *Controller) ForwardEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos < len(c.stack)-1
}

// Stack returns a copy of the visited stack and the current position.
func (c *Controller) Stack() ([]string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.stack...), c.pos
}

// OpenLink routes an href found inside rendered content. It reports
// whether the engine handled the link: placeholders are swallowed, bare
// page filenames navigate, everything else is the host's to open (external
// links in a new, unreferenced context).
func (c *Controller) OpenLink(ctx context.Context, href string) (bool, error) {
	switch docview.ClassifyLink(href) {
	case docview.LinkPlaceholder:
		return true, nil
	case docview.LinkPage:
		return true, c.NavigateTo(ctx, href)
	default:
		return false, nil
	}
}

// handlePop replays history movement. An entry recorded by this instance
// with an in-bounds position replays that stack entry; anything else is
// treated as a fresh identifier from the fragment.
func (c *Controller) handlePop(ev docview.PopEvent) {
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	if ev.Entry != nil && ev.Entry.Session == c.session {
		c.mu.Lock()
		inBounds := ev.Entry.Position >= 0 && ev.Entry.Position < len(c.stack)
		c.mu.Unlock()
		if inBounds {
			_ = c.LoadAt(ctx, ev.Entry.Position)
			return
		}
	}
	_ = c.NavigateTo(ctx, ev.Fragment)
}

// retrieve reads through the cache when one is wired.
func (c *Controller) retrieve(ctx context.Context, id string) (*docview.Page, error) {
	if c.Cache != nil {
		if page, ok := c.Cache.Get(id); ok {
			return page, nil
		}
	}
	page, err := c.Transport.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Cache != nil {
		c.Cache.Put(page)
	}
	return page, nil
}

// warm hands the rendered page to the prefetcher, best-effort.
func (c *Controller) warm(ctx context.Context, page *docview.Page) {
	if c.Prefetcher == nil {
		return
	}
	go c.Prefetcher.WarmLinked(ctx, page)
}

func (c *Controller) indicator() docview.Indicator {
	if c.Indicator == nil {
		return noopIndicator{}
	}
	return c.Indicator
}

type noopIndicator struct{}

func (noopIndicator) ShowLoading() {}
func (noopIndicator) DoneLoading() {}
