// Package search turns keystrokes into ranked, highlighted results: a
// debounced query engine over a docview.Index, excerpt building, and the
// keyboard/pointer controller for the results panel.
package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/helpsite/docview"
)

// MaxResults caps how many hits a query surfaces.
const MaxResults = 10

// queryMetachars are the query-string characters that must be escaped so
// user input is matched literally instead of parsed as syntax.
const queryMetachars = `+-=&|><!(){}[]^"~*?:\/`

// Engine builds and executes queries against an index. User input is
// escaped and augmented with a trailing prefix wildcard so matches appear
// while a word is still being typed; an index that rejects the augmented
// form falls back to the verbatim form, and a second rejection yields the
// empty result set. Query failures never propagate past the engine.
type Engine struct {
	index docview.Index
}

// NewEngine creates an engine over index.
func NewEngine(index docview.Index) *Engine {
	return &Engine{index: index}
}

// Query executes raw and returns at most MaxResults hits in engine order.
func (e *Engine) Query(ctx context.Context, raw string) []docview.Hit {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil
	}

	escaped := make([]string, len(tokens))
	for i, tok := range tokens {
		escaped[i] = escapeToken(tok)
	}
	verbatim := strings.Join(escaped, " ")
	terms := Terms(raw)

	// Single escaped characters make degenerate prefixes; only augment
	// when the last token carries enough signal.
	query := verbatim
	if utf8.RuneCountInString(escaped[len(escaped)-1]) >= 2 {
		query = verbatim + "*"
	}

	hits, err := e.index.Search(ctx, query, terms, MaxResults)
	if err != nil && query != verbatim {
		hits, err = e.index.Search(ctx, verbatim, terms, MaxResults)
	}
	if err != nil {
		return nil
	}
	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}
	return hits
}

// Terms extracts the highlightable query terms from raw input: lowercased
// whitespace tokens at least two runes long.
func Terms(raw string) []string {
	var terms []string
	for _, tok := range strings.Fields(raw) {
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		terms = append(terms, strings.ToLower(tok))
	}
	return terms
}

func escapeToken(tok string) string {
	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range tok {
		if strings.ContainsRune(queryMetachars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
