package main

import (
	"fmt"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/search"
)

// Run executes the search command: one query against a freshly built
// index, results printed with bracketed term highlights.
func (c *SearchCmd) Run(deps *Dependencies) error {
	data, err := deps.Transport.Asset(deps.Ctx, docview.ManifestPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}
	records, err := docview.ParseManifest(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}
	index, err := deps.Build(records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}
	defer index.Close()

	engine := search.NewEngine(index)
	hits := engine.Query(deps.Ctx, c.Query)
	if len(hits) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	lookup := docview.NewLookup(records)
	terms := search.Terms(c.Query)
	for i, hit := range hits {
		rec, ok := lookup[hit.ID]
		if !ok {
			continue
		}
		excerpt := formatExcerpt(search.BuildExcerpt(rec.Body, terms))
		fmt.Fprintf(deps.Stdout, "%2d. %s  (%s)\n    %s\n", i+1, rec.Title, rec.ID, excerpt)
	}
	return nil
}
