package search

import (
	"sync"
	"time"

	"github.com/helpsite/docview"
)

// BlurCloseDelay is how long the results panel stays open after the query
// input loses focus, long enough for a pointer-down on a result to land.
const BlurCloseDelay = 200 * time.Millisecond

// Key is a keyboard event the result list handles.
type Key int

// Keys the result list responds to.
const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeyEscape
)

// ResultList drives the results panel: open/close state, keyboard focus
// with wraparound, activation, and the blur-close grace period. Activating
// an item closes the panel and hands the page identifier to navigate.
type ResultList struct {
	view      docview.SearchView
	navigate  func(id string)
	blurDelay time.Duration

	mu    sync.Mutex
	items []docview.ResultItem
	focus int
	open  bool
	blur  *time.Timer
}

// ResultListOption configures a ResultList.
type ResultListOption func(*ResultList)

// WithBlurDelay overrides the blur-close grace period.
func WithBlurDelay(d time.Duration) ResultListOption {
	return func(l *ResultList) { l.blurDelay = d }
}

// NewResultList creates a result list over view. navigate receives the
// identifier of an activated result.
func NewResultList(view docview.SearchView, navigate func(id string), opts ...ResultListOption) *ResultList {
	l := &ResultList{view: view, navigate: navigate, blurDelay: BlurCloseDelay, focus: -1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open shows items in the panel (or the distinct empty state) with no item
// focused.
func (l *ResultList) Open(items []docview.ResultItem) {
	l.mu.Lock()
	l.stopBlur()
	l.items = items
	l.focus = -1
	l.open = true
	l.mu.Unlock()

	if len(items) == 0 {
		l.view.ShowEmpty()
	} else {
		l.view.ShowResults(items)
	}
	l.view.SetExpanded(true)
	l.view.FocusItem(-1)
}

// Close hides the panel and clears focus.
func (l *ResultList) Close() {
	l.mu.Lock()
	l.stopBlur()
	wasOpen := l.open
	l.open = false
	l.focus = -1
	l.mu.Unlock()

	if wasOpen {
		l.view.ClosePanel()
		l.view.SetExpanded(false)
	}
}

// IsOpen reports whether the panel is showing.
func (l *ResultList) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

// HandleKey routes a key press and reports whether it was consumed.
func (l *ResultList) HandleKey(key Key) bool {
	l.mu.Lock()
	if !l.open {
		l.mu.Unlock()
		return false
	}

	switch key {
	case KeyDown, KeyUp:
		if len(l.items) == 0 {
			l.mu.Unlock()
			return true
		}
		if key == KeyDown {
			l.focus = (l.focus + 1) % len(l.items)
		} else if l.focus <= 0 {
			l.focus = len(l.items) - 1
		} else {
			l.focus--
		}
		focus := l.focus
		l.mu.Unlock()
		l.view.FocusItem(focus)
		return true

	case KeyEnter:
		if l.focus < 0 || l.focus >= len(l.items) {
			l.mu.Unlock()
			return false
		}
		id := l.items[l.focus].ID
		l.mu.Unlock()
		l.Close()
		l.navigate(id)
		return true

	case KeyEscape:
		l.mu.Unlock()
		l.Close()
		l.view.BlurInput()
		return true
	}

	l.mu.Unlock()
	return false
}

// HandlePointerDown activates the item at index i. It cancels the pending
// blur-close so activation wins the race against the input losing focus.
func (l *ResultList) HandlePointerDown(i int) {
	l.mu.Lock()
	l.stopBlur()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return
	}
	id := l.items[i].ID
	l.mu.Unlock()

	l.Close()
	l.navigate(id)
}

// HandleBlur schedules the panel to close after the grace period.
func (l *ResultList) HandleBlur() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.open {
		return
	}
	l.stopBlur()
	l.blur = time.AfterFunc(l.blurDelay, l.Close)
}

// stopBlur cancels the pending blur-close. Callers hold l.mu.
func (l *ResultList) stopBlur() {
	if l.blur != nil {
		l.blur.Stop()
		l.blur = nil
	}
}
