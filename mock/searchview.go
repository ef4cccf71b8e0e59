package mock

import "github.com/helpsite/docview"

var _ docview.SearchView = (*SearchView)(nil)

// SearchView is a mock implementation of docview.SearchView. Unset
// functions are no-ops so tests only wire the surfaces they observe.
type SearchView struct {
	ShowResultsFn  func(items []docview.ResultItem)
	ShowEmptyFn    func()
	ClosePanelFn   func()
	SetExpandedFn  func(expanded bool)
	FocusItemFn    func(i int)
	DisableInputFn func(placeholder string)
	BlurInputFn    func()
}

func (v *SearchView) ShowResults(items []docview.ResultItem) {
	if v.ShowResultsFn != nil {
		v.ShowResultsFn(items)
	}
}

func (v *SearchView) ShowEmpty() {
	if v.ShowEmptyFn != nil {
		v.ShowEmptyFn()
	}
}

func (v *SearchView) ClosePanel() {
	if v.ClosePanelFn != nil {
		v.ClosePanelFn()
	}
}

func (v *SearchView) SetExpanded(expanded bool) {
	if v.SetExpandedFn != nil {
		v.SetExpandedFn(expanded)
	}
}

func (v *SearchView) FocusItem(i int) {
	if v.FocusItemFn != nil {
		v.FocusItemFn(i)
	}
}

func (v *SearchView) DisableInput(placeholder string) {
	if v.DisableInputFn != nil {
		v.DisableInputFn(placeholder)
	}
}

func (v *SearchView) BlurInput() {
	if v.BlurInputFn != nil {
		v.BlurInputFn()
	}
}
