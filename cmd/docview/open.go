package main

import (
	"fmt"

	"github.com/helpsite/docview/goquery"
	"github.com/helpsite/docview/nav"
	"github.com/helpsite/docview/prefetch"
	"github.com/helpsite/docview/search"
)

// Run executes the open command: the full engine behind a line-oriented
// session.
func (c *OpenCmd) Run(deps *Dependencies) error {
	renderer := newTerminalRenderer(deps.Stdout, deps.Converter)
	view := newTerminalSearchView(deps.Stdout)

	history := nav.NewMemHistory()
	if c.Start != "" {
		history.SetFragment(c.Start)
	}

	cache := prefetch.NewCache()
	controller := &nav.Controller{
		Transport:  deps.Transport,
		Renderer:   renderer,
		History:    history,
		Cache:      cache,
		Prefetcher: prefetch.New(deps.Transport, goquery.NewExtractor(), cache),
	}

	searcher := &search.Searcher{
		Transport: deps.Transport,
		View:      view,
		Build:     deps.Build,
	}
	searcher.Results = search.NewResultList(view, func(id string) {
		if err := controller.NavigateTo(deps.Ctx, id); err != nil {
			deps.Logger.Error("navigate", "id", id, "err", err)
		}
	})

	if err := controller.Init(deps.Ctx); err != nil {
		return err
	}
	searcher.Start(deps.Ctx)

	usage(deps)
	s := &session{deps: deps, controller: controller, searcher: searcher, view: view}
	return s.run()
}

func usage(deps *Dependencies) {
	fmt.Fprintln(deps.Stdout, `Type to search; :o <n|id> opens, :b back, :f forward, :q quits.`)
}
