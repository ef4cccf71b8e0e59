package docview

import (
	"context"
	"regexp"
	"strings"
)

// Well-known corpus paths.
const (
	// PagesDir is the directory all bare page filenames resolve into.
	PagesDir = "pages/"

	// DefaultPage is the landing page used when no identifier is present.
	DefaultPage = "pages/1-home.html"

	// ManifestPath is the corpus-root path of the search manifest.
	ManifestPath = "search-index.json"
)

// barePageRE matches a bare page filename such as "2-main_menu.html".
// Bare filenames are the only link form the engine routes internally.
var barePageRE = regexp.MustCompile(`^\d+-[^/]+\.html$`)

// Page holds the extracted fields of one documentation page. Any field may
// be empty; extraction never fails on missing elements.
type Page struct {
	ID      string // canonical identifier the page was retrieved under
	Title   string // document title, or the identifier when absent
	Heading string // first top-level heading text
	Body    string // inner HTML of the first preformatted content block
}

// NormalizePageID canonicalizes a page identifier: empty becomes
// DefaultPage, a bare page filename is resolved into PagesDir, and an
// already-qualified path passes through unchanged.
func NormalizePageID(id string) string {
	if id == "" {
		return DefaultPage
	}
	if barePageRE.MatchString(id) {
		return PagesDir + id
	}
	return id
}

// LinkKind classifies an href found inside rendered page content.
type LinkKind int

// Link classifications.
const (
	// LinkPlaceholder is an empty or "#" href; activating it is a no-op.
	LinkPlaceholder LinkKind = iota

	// LinkPage is a bare page filename routed through the navigation
	// controller instead of the host.
	LinkPage

	// LinkExternal is an absolute link to another origin. The engine leaves
	// it to the host, which must open it in a new, unreferenced context.
	LinkExternal

	// LinkOther is anything else; the engine does not interfere.
	LinkOther
)

// ClassifyLink reports how the engine treats an href.
func ClassifyLink(href string) LinkKind {
	switch {
	case href == "" || href == "#":
		return LinkPlaceholder
	case barePageRE.MatchString(href):
		return LinkPage
	case strings.Contains(href, "://"):
		return LinkExternal
	default:
		return LinkOther
	}
}

// Transport retrieves pages and raw assets by identifier. Implementations
// hide the hosting context: one variant speaks HTTP, another reads a local
// directory when no server is present. Callers depend only on this
// interface; the variant is chosen once at startup.
type Transport interface {
	// Retrieve fetches the page at id, parses it, and extracts its fields.
	// A failed retrieval returns ETRANSPORT.
	Retrieve(ctx context.Context, id string) (*Page, error)

	// Asset fetches a raw asset (such as the search manifest) by path.
	Asset(ctx context.Context, path string) ([]byte, error)

	// Close releases any resources held by the transport.
	Close() error
}

// ExtractResult holds the fields pulled out of a parsed page document.
type ExtractResult struct {
	Title   string
	Heading string
	Body    string
}

// Extractor extracts the title, first heading, and preformatted body from
// page markup. Missing elements are not errors; the title falls back to
// the supplied identifier.
type Extractor interface {
	Extract(html string, fallbackTitle string) (*ExtractResult, error)
}

// LinkExtractor reports the internally-routable page identifiers linked
// from a body fragment.
type LinkExtractor interface {
	PageLinks(html string) ([]string, error)
}

// Converter converts HTML to Markdown for plain-text hosts.
type Converter interface {
	Convert(html string) (string, error)
}
