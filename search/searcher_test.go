package search_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/mock"
	"github.com/helpsite/docview/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestJSON = `[
	{"id": "pages/1-home.html", "title": "Home", "body": "welcome to the guide"},
	{"id": "pages/14-interrupts.html", "title": "Interrupts", "body": "call INT 21h to invoke DOS services"}
]`

// newSearcher wires a Searcher over a manifest payload and a canned index.
func newSearcher(t *testing.T, manifest []byte, searchFn func(ctx context.Context, query string, terms []string, limit int) ([]docview.Hit, error)) (*search.Searcher, *viewRecorder) {
	t.Helper()

	rec := &viewRecorder{}
	view := rec.view()
	s := &search.Searcher{
		Transport: &mock.Transport{
			AssetFn: func(_ context.Context, path string) ([]byte, error) {
				if manifest == nil {
					return nil, docview.Errorf(docview.ETRANSPORT, "manifest unreachable")
				}
				return manifest, nil
			},
		},
		View: view,
		Build: func(records []docview.Record) (docview.Index, error) {
			return &mock.Index{SearchFn: searchFn}, nil
		},
		Debounce: search.NewDebouncer(20 * time.Millisecond),
	}
	s.Results = search.NewResultList(view, func(string) {})
	return s, rec
}

func TestSearcher_LoadIndex(t *testing.T) {
	t.Parallel()

	t.Run("builds the index from the manifest", func(t *testing.T) {
		t.Parallel()

		s, _ := newSearcher(t, []byte(manifestJSON), nil)

		require.NoError(t, s.LoadIndex(context.Background()))
		assert.True(t, s.Ready())
	})

	t.Run("unreachable manifest disables the input", func(t *testing.T) {
		t.Parallel()

		s, _ := newSearcher(t, nil, nil)
		disabled := make(chan string, 1)
		s.View = &mock.SearchView{DisableInputFn: func(placeholder string) { disabled <- placeholder }}

		require.Error(t, s.LoadIndex(context.Background()))

		assert.False(t, s.Ready())
		assert.Equal(t, "Search unavailable", <-disabled)
	})

	t.Run("malformed manifest disables the input", func(t *testing.T) {
		t.Parallel()

		s, _ := newSearcher(t, []byte(`{not json`), nil)
		var placeholder string
		s.View = &mock.SearchView{DisableInputFn: func(p string) { placeholder = p }}

		err := s.LoadIndex(context.Background())

		require.Error(t, err)
		assert.Equal(t, docview.EPARSE, docview.ErrorCode(err))
		assert.NotEmpty(t, placeholder)
	})
}

func TestSearcher_HandleInput(t *testing.T) {
	t.Parallel()

	t.Run("a typing burst executes a single query", func(t *testing.T) {
		t.Parallel()

		var executed atomic.Int64
		s, _ := newSearcher(t, []byte(manifestJSON), func(context.Context, string, []string, int) ([]docview.Hit, error) {
			executed.Add(1)
			return nil, nil
		})
		require.NoError(t, s.LoadIndex(context.Background()))

		for _, value := range []string{"i", "in", "int", "int ", "int 2"} {
			s.HandleInput(value)
			time.Sleep(2 * time.Millisecond)
		}

		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int64(1), executed.Load())
	})

	t.Run("clearing the input closes the panel immediately", func(t *testing.T) {
		t.Parallel()

		var executed atomic.Int64
		s, _ := newSearcher(t, []byte(manifestJSON), func(context.Context, string, []string, int) ([]docview.Hit, error) {
			executed.Add(1)
			return []docview.Hit{{ID: "pages/1-home.html"}}, nil
		})
		require.NoError(t, s.LoadIndex(context.Background()))
		s.Run(context.Background(), "welcome")
		require.True(t, s.Results.IsOpen())

		s.HandleInput("wel")
		s.HandleInput("")

		assert.False(t, s.Results.IsOpen())
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int64(1), executed.Load(), "the pending debounced query was cancelled")
	})

	t.Run("refocus with a value runs immediately", func(t *testing.T) {
		t.Parallel()

		var executed atomic.Int64
		s, _ := newSearcher(t, []byte(manifestJSON), func(context.Context, string, []string, int) ([]docview.Hit, error) {
			executed.Add(1)
			return nil, nil
		})
		require.NoError(t, s.LoadIndex(context.Background()))

		s.HandleFocus("int 21h")

		assert.Equal(t, int64(1), executed.Load(), "no debounce on refocus")
	})

	t.Run("input before the index is ready is a no-op", func(t *testing.T) {
		t.Parallel()

		s, rec := newSearcher(t, []byte(manifestJSON), nil)
		s.Debounce = search.NewDebouncer(time.Millisecond)

		s.HandleInput("int")
		time.Sleep(50 * time.Millisecond)

		rec.mu.Lock()
		defer rec.mu.Unlock()
		assert.Empty(t, rec.shown)
		assert.Zero(t, rec.empties)
	})
}

func TestSearcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders hits with highlighted excerpts", func(t *testing.T) {
		t.Parallel()

		s, rec := newSearcher(t, []byte(manifestJSON), func(context.Context, string, []string, int) ([]docview.Hit, error) {
			return []docview.Hit{{ID: "pages/14-interrupts.html", Score: 2}}, nil
		})
		require.NoError(t, s.LoadIndex(context.Background()))

		s.Run(context.Background(), "INT 21h")

		rec.mu.Lock()
		defer rec.mu.Unlock()
		require.Len(t, rec.shown, 1)
		require.Len(t, rec.shown[0], 1)
		item := rec.shown[0][0]
		assert.Equal(t, "Interrupts", item.Title)
		assert.Contains(t, item.Excerpt, "<mark>INT</mark> <mark>21h</mark>")
	})

	t.Run("hits missing from the manifest are skipped", func(t *testing.T) {
		t.Parallel()

		s, rec := newSearcher(t, []byte(manifestJSON), func(context.Context, string, []string, int) ([]docview.Hit, error) {
			return []docview.Hit{
				{ID: "pages/99-ghost.html", Score: 3},
				{ID: "pages/1-home.html", Score: 1},
			}, nil
		})
		require.NoError(t, s.LoadIndex(context.Background()))

		s.Run(context.Background(), "welcome")

		rec.mu.Lock()
		defer rec.mu.Unlock()
		require.Len(t, rec.shown, 1)
		require.Len(t, rec.shown[0], 1)
		assert.Equal(t, "pages/1-home.html", rec.shown[0][0].ID)
	})

	t.Run("zero hits open the distinct empty state", func(t *testing.T) {
		t.Parallel()

		s, rec := newSearcher(t, []byte(manifestJSON), func(context.Context, string, []string, int) ([]docview.Hit, error) {
			return nil, nil
		})
		require.NoError(t, s.LoadIndex(context.Background()))

		s.Run(context.Background(), "zzzz")

		rec.mu.Lock()
		defer rec.mu.Unlock()
		assert.Equal(t, 1, rec.empties)
		assert.Empty(t, rec.shown)
	})
}

func TestSearcher_Start(t *testing.T) {
	t.Parallel()

	s, _ := newSearcher(t, []byte(manifestJSON), nil)
	s.Delay = 5 * time.Millisecond

	s.Start(context.Background())

	assert.Eventually(t, s.Ready, time.Second, 5*time.Millisecond)
}
