package main

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/helpsite/docview"
)

// terminalRenderer draws pages as Markdown on a writer.
type terminalRenderer struct {
	out  io.Writer
	conv docview.Converter
}

var _ docview.Renderer = (*terminalRenderer)(nil)

func newTerminalRenderer(out io.Writer, conv docview.Converter) *terminalRenderer {
	return &terminalRenderer{out: out, conv: conv}
}

func (r *terminalRenderer) RenderPage(page *docview.Page) {
	heading := page.Heading
	if heading == "" {
		heading = page.Title
	}
	fmt.Fprintf(r.out, "\n# %s\n\n", heading)

	body, err := r.conv.Convert(page.Body)
	if err != nil {
		// Raw HTML beats nothing.
		body = page.Body
	}
	fmt.Fprintln(r.out, strings.TrimSpace(body))
}

func (r *terminalRenderer) RenderError(heading, message string) {
	fmt.Fprintf(r.out, "\n# %s\n\n%s\n", heading, message)
}

func (r *terminalRenderer) UpdateButtons(back, forward bool) {}

// terminalSearchView prints results as a numbered list and remembers them
// so the session can open one by number.
type terminalSearchView struct {
	out io.Writer

	mu    sync.Mutex
	items []docview.ResultItem
}

var _ docview.SearchView = (*terminalSearchView)(nil)

func newTerminalSearchView(out io.Writer) *terminalSearchView {
	return &terminalSearchView{out: out}
}

func (v *terminalSearchView) ShowResults(items []docview.ResultItem) {
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()

	for i, item := range items {
		fmt.Fprintf(v.out, "%2d. %s  (%s)\n    %s\n", i+1, item.Title, item.ID, formatExcerpt(item.Excerpt))
	}
}

func (v *terminalSearchView) ShowEmpty() {
	v.mu.Lock()
	v.items = nil
	v.mu.Unlock()

	fmt.Fprintln(v.out, "No results.")
}

func (v *terminalSearchView) ClosePanel() {
	v.mu.Lock()
	v.items = nil
	v.mu.Unlock()
}

func (v *terminalSearchView) SetExpanded(bool) {}
func (v *terminalSearchView) FocusItem(int)    {}
func (v *terminalSearchView) BlurInput()       {}

func (v *terminalSearchView) DisableInput(placeholder string) {
	fmt.Fprintf(v.out, "%s\n", placeholder)
}

// item returns the n-th shown result (1-based).
func (v *terminalSearchView) item(n int) (docview.ResultItem, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n < 1 || n > len(v.items) {
		return docview.ResultItem{}, false
	}
	return v.items[n-1], true
}

// formatExcerpt rewrites an HTML excerpt for a terminal: highlight markers
// become brackets and entities are decoded.
func formatExcerpt(excerpt string) string {
	excerpt = strings.ReplaceAll(excerpt, "<mark>", "[")
	excerpt = strings.ReplaceAll(excerpt, "</mark>", "]")
	return html.UnescapeString(excerpt)
}
