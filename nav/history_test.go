package nav_test

import (
	"testing"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemHistory(t *testing.T) {
	t.Parallel()

	t.Run("push discards forward entries", func(t *testing.T) {
		t.Parallel()

		h := nav.NewMemHistory()
		h.Push(docview.HistoryEntry{Session: "s", Position: 0, PageID: "a"}, "a")
		h.Push(docview.HistoryEntry{Session: "s", Position: 1, PageID: "b"}, "b")
		h.Back()
		require.Equal(t, 3, h.Len())

		h.Push(docview.HistoryEntry{Session: "s", Position: 1, PageID: "c"}, "c")

		assert.Equal(t, 3, h.Len(), "the forward entry for b is gone")
		assert.Equal(t, "c", h.Fragment())
	})

	t.Run("stepping delivers pop events with the recorded entry", func(t *testing.T) {
		t.Parallel()

		h := nav.NewMemHistory()
		var events []docview.PopEvent
		h.SetPopHandler(func(ev docview.PopEvent) { events = append(events, ev) })

		h.Push(docview.HistoryEntry{Session: "s", Position: 0, PageID: "a"}, "a")
		h.Back()
		h.Forward()

		require.Len(t, events, 2)
		assert.Nil(t, events[0].Entry, "the root state was never recorded by an engine")
		assert.Empty(t, events[0].Fragment)
		require.NotNil(t, events[1].Entry)
		assert.Equal(t, "a", events[1].Entry.PageID)
		assert.Equal(t, "a", events[1].Fragment)
	})

	t.Run("stepping past either end is a no-op", func(t *testing.T) {
		t.Parallel()

		h := nav.NewMemHistory()
		var fired int
		h.SetPopHandler(func(docview.PopEvent) { fired++ })

		h.Back()
		h.Forward()

		assert.Zero(t, fired)
	})

	t.Run("set fragment seeds the current state in place", func(t *testing.T) {
		t.Parallel()

		h := nav.NewMemHistory()
		h.SetFragment("2-main_menu.html")

		assert.Equal(t, "2-main_menu.html", h.Fragment())
		assert.Equal(t, 1, h.Len())
	})
}
