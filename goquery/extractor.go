// Package goquery implements page field extraction and link scanning using
// CSS selectors over parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/helpsite/docview"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ docview.Extractor     = (*Extractor)(nil)
	_ docview.LinkExtractor = (*Extractor)(nil)
)

// Extractor pulls the title, first heading, and preformatted body out of
// page markup. Pages in the corpus carry at most one title element, one
// top-level heading, and one preformatted content block; anything missing
// extracts as empty rather than failing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and returns its fields. The title falls back
// to fallbackTitle when the document has no title element.
func (e *Extractor) Extract(rawHTML string, fallbackTitle string) (*docview.ExtractResult, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, docview.Errorf(docview.EPARSE, "failed to parse page: %v", err)
	}

	result := &docview.ExtractResult{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Heading: strings.TrimSpace(doc.Find("h1").First().Text()),
	}
	if result.Title == "" {
		result.Title = fallbackTitle
	}

	if pre := doc.Find("pre").First(); pre.Length() > 0 {
		body, err := pre.Html()
		if err != nil {
			return nil, docview.Errorf(docview.EPARSE, "failed to serialize page body: %v", err)
		}
		result.Body = body
	}

	return result, nil
}

// PageLinks scans a body fragment and returns the hrefs the engine routes
// internally (bare page filenames), deduplicated in document order.
// Placeholder and external links are skipped.
func (e *Extractor) PageLinks(rawHTML string) ([]string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, docview.Errorf(docview.EPARSE, "failed to parse body fragment: %v", err)
	}

	seen := make(map[string]struct{})
	var ids []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if docview.ClassifyLink(href) != docview.LinkPage {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}
		ids = append(ids, href)
	})
	return ids, nil
}

// parse parses markup once; the resulting document is shared by field
// extraction and link scanning.
func parse(rawHTML string) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(node), nil
}
