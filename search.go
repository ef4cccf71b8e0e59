package docview

import "context"

// Hit is one ranked match from the search index.
type Hit struct {
	ID    string
	Score float64
}

// Index executes ranked queries over the corpus manifest. It is built once
// per session and never rebuilt.
type Index interface {
	// Search executes a query-string query. terms carries the raw query
	// tokens alongside the escaped query string; implementations use them
	// for query-time title weighting and prefix matching of a trailing
	// wildcard. A query the engine cannot parse returns EQUERYSYNTAX.
	Search(ctx context.Context, query string, terms []string, limit int) ([]Hit, error)

	// DocCount returns the number of indexed records.
	DocCount() (uint64, error)

	// Close releases index resources.
	Close() error
}

// IndexBuilder constructs an Index from manifest records.
type IndexBuilder func(records []Record) (Index, error)
