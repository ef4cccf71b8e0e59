package mock

import "github.com/helpsite/docview"

var _ docview.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docview.Extractor.
type Extractor struct {
	ExtractFn func(html string, fallbackTitle string) (*docview.ExtractResult, error)
}

func (e *Extractor) Extract(html string, fallbackTitle string) (*docview.ExtractResult, error) {
	return e.ExtractFn(html, fallbackTitle)
}

var _ docview.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docview.LinkExtractor.
type LinkExtractor struct {
	PageLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) PageLinks(html string) ([]string, error) {
	return e.PageLinksFn(html)
}

var _ docview.Converter = (*Converter)(nil)

// Converter is a mock implementation of docview.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
