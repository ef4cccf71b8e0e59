// Package bleve implements the docview search index on an in-memory Bleve
// index built once per session from the corpus manifest.
package bleve

import (
	"context"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/helpsite/docview"
)

// technicalAnalyzer tokenizes and lowercases without stemming or stop
// words. The corpus is technical and symbolic; register names and
// instruction mnemonics must be matchable verbatim.
const technicalAnalyzer = "technical"

// titleBoost weighs title matches above body matches at query time.
// Bleve has no index-time field boost.
const titleBoost = 5.0

// Ensure Index implements docview.Index at compile time.
var _ docview.Index = (*Index)(nil)

// Index wraps an in-memory Bleve index over the manifest records.
type Index struct {
	idx bleve.Index
}

// indexDoc is the shape each manifest record is indexed under.
type indexDoc struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewIndex builds the index from manifest records. The records are indexed
// in a single batch and the index is immutable afterwards.
func NewIndex(records []docview.Record) (docview.Index, error) {
	im := bleve.NewIndexMapping()
	if err := im.AddCustomAnalyzer(technicalAnalyzer, map[string]any{
		"type":          custom.Name,
		"tokenizer":     unicode.Name,
		"token_filters": []any{lowercase.Name},
	}); err != nil {
		return nil, docview.Errorf(docview.EINTERNAL, "failed to register analyzer: %v", err)
	}
	im.DefaultAnalyzer = technicalAnalyzer

	doc := bleve.NewDocumentMapping()
	title := bleve.NewTextFieldMapping()
	title.Analyzer = technicalAnalyzer
	body := bleve.NewTextFieldMapping()
	body.Analyzer = technicalAnalyzer
	doc.AddFieldMappingsAt("title", title)
	doc.AddFieldMappingsAt("body", body)
	im.DefaultMapping = doc

	idx, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, docview.Errorf(docview.EINTERNAL, "failed to create index: %v", err)
	}

	batch := idx.NewBatch()
	for _, r := range records {
		if err := batch.Index(r.ID, indexDoc{Title: r.Title, Body: r.Body}); err != nil {
			_ = idx.Close()
			return nil, docview.Errorf(docview.EINTERNAL, "failed to index %q: %v", r.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, docview.Errorf(docview.EINTERNAL, "failed to commit index batch: %v", err)
	}

	return &Index{idx: idx}, nil
}

// Search executes a query-string query, weighing title matches above body
// matches and prefix-expanding the trailing wildcard term. A query the
// engine cannot parse returns EQUERYSYNTAX.
func (i *Index) Search(ctx context.Context, q string, terms []string, limit int) ([]docview.Hit, error) {
	if limit <= 0 {
		limit = 10
	}

	clauses := []query.Query{bleve.NewQueryStringQuery(q)}

	for _, term := range terms {
		mq := bleve.NewMatchQuery(term)
		mq.SetField("title")
		mq.SetBoost(titleBoost)
		clauses = append(clauses, mq)
	}

	// The engine marks incremental prefix search with a trailing "*".
	// Expand it explicitly so prefix matching does not depend on the
	// query-string parser's wildcard handling.
	if n := len(terms); n > 0 && strings.HasSuffix(q, "*") {
		last := strings.ToLower(terms[n-1])
		tp := bleve.NewPrefixQuery(last)
		tp.SetField("title")
		tp.SetBoost(titleBoost)
		bp := bleve.NewPrefixQuery(last)
		bp.SetField("body")
		clauses = append(clauses, tp, bp)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(clauses...), limit, 0, false)
	result, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, docview.Errorf(docview.EQUERYSYNTAX, "index rejected query %q: %v", q, err)
	}

	hits := make([]docview.Hit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, docview.Hit{ID: hit.ID, Score: hit.Score})
	}
	return hits, nil
}

// DocCount returns the number of indexed records.
func (i *Index) DocCount() (uint64, error) {
	return i.idx.DocCount()
}

// Close releases index resources.
func (i *Index) Close() error {
	return i.idx.Close()
}
