package docview

// Renderer is the host surface the navigation controller draws pages on.
type Renderer interface {
	// RenderPage replaces the visible title, heading, and body region.
	RenderPage(page *Page)

	// RenderError replaces the content region with an inline error page.
	RenderError(heading, message string)

	// UpdateButtons reflects whether stepping back/forward is possible.
	UpdateButtons(back, forward bool)
}

// IndicatorState is the visible state of the loading indicator.
type IndicatorState int

// Indicator states. Done is a short completion pulse; Idle clears it.
const (
	IndicatorIdle IndicatorState = iota
	IndicatorLoading
	IndicatorDone
)

// Indicator signals retrieval activity. DoneLoading must run on every exit
// path of a retrieval so the indicator can never be stuck active.
type Indicator interface {
	ShowLoading()
	DoneLoading()
}

// ResultItem is one rendered search result.
type ResultItem struct {
	ID      string
	Title   string
	Excerpt string // HTML: escaped text with <mark> around query terms
}

// SearchView is the host surface for the search panel and its input field.
// FocusItem and SetExpanded carry the accessibility state (aria-selected,
// aria-expanded) on hosts that have one.
type SearchView interface {
	// ShowResults opens the panel with the given items.
	ShowResults(items []ResultItem)

	// ShowEmpty opens the panel with a distinct "no results" message.
	ShowEmpty()

	// ClosePanel hides the panel. Distinct from ShowEmpty.
	ClosePanel()

	// SetExpanded reflects whether the panel is open on the query input.
	SetExpanded(expanded bool)

	// FocusItem moves item focus to index i (-1 clears focus).
	FocusItem(i int)

	// DisableInput permanently disables the query input for the session,
	// showing a diagnostic placeholder.
	DisableInput(placeholder string)

	// BlurInput removes focus from the query input.
	BlurInput()
}
