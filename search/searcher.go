package search

import (
	"context"
	"sync"
	"time"

	"github.com/helpsite/docview"
)

// StartupDelay defers index construction past first render so the landing
// page is never blocked on the manifest.
const StartupDelay = 200 * time.Millisecond

// unavailablePlaceholder is shown in the disabled query input when the
// index could not be built.
const unavailablePlaceholder = "Search unavailable"

// Searcher owns the search lifecycle: deferred index construction from the
// corpus manifest, debounced query execution on input, and result
// rendering through a ResultList. Index failure disables search for the
// session and leaves navigation untouched.
//
// Wire the exported fields, then call Start once. Transport, View, Build,
// and Results are required; Debounce and Delay have working defaults.
type Searcher struct {
	Transport docview.Transport
	View      docview.SearchView
	Build     docview.IndexBuilder
	Results   *ResultList
	Debounce  *Debouncer
	Delay     time.Duration

	ctx context.Context

	mu     sync.Mutex
	engine *Engine
	lookup map[string]docview.Record
	ready  bool
}

// Start schedules index construction after the startup delay. The context
// is retained for queries triggered by later input events.
func (s *Searcher) Start(ctx context.Context) {
	s.ctx = ctx
	if s.Debounce == nil {
		s.Debounce = NewDebouncer(DebounceInterval)
	}
	delay := s.Delay
	if delay <= 0 {
		delay = StartupDelay
	}
	time.AfterFunc(delay, func() { _ = s.LoadIndex(ctx) })
}

// LoadIndex retrieves and parses the manifest and builds the index. Any
// failure disables the query input with a diagnostic placeholder and is
// returned for logging; search stays disabled for the session.
func (s *Searcher) LoadIndex(ctx context.Context) error {
	data, err := s.Transport.Asset(ctx, docview.ManifestPath)
	if err != nil {
		s.disable()
		return err
	}
	records, err := docview.ParseManifest(data)
	if err != nil {
		s.disable()
		return err
	}
	index, err := s.Build(records)
	if err != nil {
		s.disable()
		return err
	}

	s.mu.Lock()
	s.engine = NewEngine(index)
	s.lookup = docview.NewLookup(records)
	s.ready = true
	s.mu.Unlock()
	return nil
}

// Ready reports whether the index is built and queries will execute.
func (s *Searcher) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// HandleInput reacts to the query input's current value: empty input
// closes the panel immediately, anything else restarts the debounce.
func (s *Searcher) HandleInput(value string) {
	if value == "" {
		s.Debounce.Cancel()
		s.Results.Close()
		return
	}
	s.Debounce.Trigger(func() { s.Run(s.context(), value) })
}

// HandleFocus re-runs the current value immediately when the input regains
// focus non-empty, bypassing the debounce.
func (s *Searcher) HandleFocus(value string) {
	if value == "" {
		return
	}
	s.Run(s.context(), value)
}

// Run executes raw against the index and opens the results panel. Hits
// whose identifier is missing from the manifest lookup are skipped.
func (s *Searcher) Run(ctx context.Context, raw string) {
	s.mu.Lock()
	engine, lookup, ready := s.engine, s.lookup, s.ready
	s.mu.Unlock()
	if !ready {
		return
	}

	hits := engine.Query(ctx, raw)
	terms := Terms(raw)

	items := make([]docview.ResultItem, 0, len(hits))
	for _, hit := range hits {
		rec, ok := lookup[hit.ID]
		if !ok {
			continue
		}
		items = append(items, docview.ResultItem{
			ID:      rec.ID,
			Title:   rec.Title,
			Excerpt: BuildExcerpt(rec.Body, terms),
		})
	}
	s.Results.Open(items)
}

func (s *Searcher) disable() {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.View.DisableInput(unavailablePlaceholder)
}

func (s *Searcher) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}
