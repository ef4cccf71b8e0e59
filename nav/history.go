package nav

import (
	"sync"

	"github.com/helpsite/docview"
)

// Ensure MemHistory implements docview.History at compile time.
var _ docview.History = (*MemHistory)(nil)

// MemHistory is an in-memory docview.History for hosts without a native
// back/forward mechanism. It models the platform contract the controller
// relies on: pushing discards forward entries, and stepping delivers a
// PopEvent rather than returning state directly.
type MemHistory struct {
	mu      sync.Mutex
	entries []memEntry
	cur     int
	handler func(docview.PopEvent)
}

type memEntry struct {
	rec      *docview.HistoryEntry // nil for states not recorded by an engine
	fragment string
}

// NewMemHistory creates a history holding one unrecorded root state.
func NewMemHistory() *MemHistory {
	return &MemHistory{entries: []memEntry{{}}}
}

// SetFragment sets the current state's fragment without creating a new
// entry, the way a host seeds a deep link before the engine initializes.
func (h *MemHistory) SetFragment(fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.cur].fragment = fragment
}

// Push records an entry, discarding any forward entries.
func (h *MemHistory) Push(entry docview.HistoryEntry, fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec := entry
	h.entries = append(h.entries[:h.cur+1], memEntry{rec: &rec, fragment: fragment})
	h.cur = len(h.entries) - 1
}

// Back steps to the previous entry and delivers a PopEvent.
func (h *MemHistory) Back() {
	h.step(-1)
}

// Forward steps to the next entry and delivers a PopEvent.
func (h *MemHistory) Forward() {
	h.step(+1)
}

func (h *MemHistory) step(delta int) {
	h.mu.Lock()
	next := h.cur + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return
	}
	h.cur = next
	ev := docview.PopEvent{Entry: h.entries[next].rec, Fragment: h.entries[next].fragment}
	fn := h.handler
	h.mu.Unlock()

	// Deliver outside the lock; the handler navigates, which pushes.
	if fn != nil {
		fn(ev)
	}
}

// Fragment returns the current state's fragment.
func (h *MemHistory) Fragment() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cur].fragment
}

// SetPopHandler registers the single PopEvent handler.
func (h *MemHistory) SetPopHandler(fn func(docview.PopEvent)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = fn
}

// Len returns the number of history entries.
func (h *MemHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
