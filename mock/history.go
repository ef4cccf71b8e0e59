package mock

import "github.com/helpsite/docview"

var _ docview.History = (*History)(nil)

// History is a mock implementation of docview.History.
type History struct {
	PushFn          func(entry docview.HistoryEntry, fragment string)
	BackFn          func()
	ForwardFn       func()
	FragmentFn      func() string
	SetPopHandlerFn func(fn func(docview.PopEvent))
}

func (h *History) Push(entry docview.HistoryEntry, fragment string) {
	if h.PushFn != nil {
		h.PushFn(entry, fragment)
	}
}

func (h *History) Back() {
	if h.BackFn != nil {
		h.BackFn()
	}
}

func (h *History) Forward() {
	if h.ForwardFn != nil {
		h.ForwardFn()
	}
}

func (h *History) Fragment() string {
	if h.FragmentFn == nil {
		return ""
	}
	return h.FragmentFn()
}

func (h *History) SetPopHandler(fn func(docview.PopEvent)) {
	if h.SetPopHandlerFn != nil {
		h.SetPopHandlerFn(fn)
	}
}
