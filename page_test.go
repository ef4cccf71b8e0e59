package docview_test

import (
	"testing"

	"github.com/helpsite/docview"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePageID(t *testing.T) {
	t.Parallel()

	t.Run("bare filename resolves into the pages directory", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "pages/2-main_menu.html", docview.NormalizePageID("2-main_menu.html"))
	})

	t.Run("empty identifier resolves to the default landing page", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, docview.DefaultPage, docview.NormalizePageID(""))
	})

	t.Run("qualified paths pass through unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://x/y.html", docview.NormalizePageID("https://x/y.html"))
		assert.Equal(t, "pages/3-io.html", docview.NormalizePageID("pages/3-io.html"))
	})

	t.Run("non-page filenames pass through unchanged", func(t *testing.T) {
		t.Parallel()

		// No numeric prefix, so not a bare page filename.
		assert.Equal(t, "notes.html", docview.NormalizePageID("notes.html"))
	})
}

func TestClassifyLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want docview.LinkKind
	}{
		{"empty href is a placeholder", "", docview.LinkPlaceholder},
		{"hash href is a placeholder", "#", docview.LinkPlaceholder},
		{"bare page filename is routed internally", "14-interrupts.html", docview.LinkPage},
		{"cross-origin absolute link is external", "https://example.com/ref.html", docview.LinkExternal},
		{"relative non-page link is left alone", "img/diagram.png", docview.LinkOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docview.ClassifyLink(tt.href))
		})
	}
}
