package components

import (
	"fmt"

	"ymdb/internal/ui/theme"

	"github.com/rivo/tview"
)

type Header struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewHeader(theme *theme.Theme) *Header {
	header := &Header{
		view:  tview.NewTextView(),
		theme: theme,
	}

	header.view.SetDynamicColors(true)
	header.view.SetTextAlign(tview.AlignLeft)
	return header
}

func (h *Header) Update(name, version, language string) {
	h.view.SetText(fmt.Sprintf(" %s %s - TMDB (%s)", name, version, language))
}

func (h *Header) View() *tview.TextView {
	return h.view
}
