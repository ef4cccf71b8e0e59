package main

import (
	"fmt"

	"github.com/helpsite/docview"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, err := deps.Transport.Retrieve(deps.Ctx, docview.NormalizePageID(c.ID))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	renderer := newTerminalRenderer(deps.Stdout, deps.Converter)
	renderer.RenderPage(page)
	return nil
}
