package mock

import "github.com/helpsite/docview"

var _ docview.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docview.Renderer.
type Renderer struct {
	RenderPageFn    func(page *docview.Page)
	RenderErrorFn   func(heading, message string)
	UpdateButtonsFn func(back, forward bool)
}

func (r *Renderer) RenderPage(page *docview.Page) {
	r.RenderPageFn(page)
}

func (r *Renderer) RenderError(heading, message string) {
	r.RenderErrorFn(heading, message)
}

func (r *Renderer) UpdateButtons(back, forward bool) {
	if r.UpdateButtonsFn != nil {
		r.UpdateButtonsFn(back, forward)
	}
}

var _ docview.Indicator = (*Indicator)(nil)

// Indicator is a mock implementation of docview.Indicator.
type Indicator struct {
	ShowLoadingFn func()
	DoneLoadingFn func()
}

func (i *Indicator) ShowLoading() {
	if i.ShowLoadingFn != nil {
		i.ShowLoadingFn()
	}
}

func (i *Indicator) DoneLoading() {
	if i.DoneLoadingFn != nil {
		i.DoneLoadingFn()
	}
}
