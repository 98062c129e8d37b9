package components

import (
	"ymdb/internal/ui/theme"

	"github.com/rivo/tview"
)

// Selected shows the movie currently held by the selection store.
type Selected struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewSelected(theme *theme.Theme) *Selected {
	selected := &Selected{
		view:  tview.NewTextView(),
		theme: theme,
	}

	selected.view.SetDynamicColors(true)
	selected.view.SetWrap(true)
	selected.view.SetTextAlign(tview.AlignLeft)
	selected.view.SetBorder(true)
	selected.view.SetTitle("Selected")
	selected.view.SetTitleColor(theme.TitleColor)
	selected.view.SetTitleAlign(tview.AlignLeft)
	selected.view.SetText("[gray]Press enter on a movie to select it[-]")
	return selected
}

func (s *Selected) View() *tview.TextView {
	return s.view
}

func (s *Selected) Write(text string) {
	s.view.SetText(text)
}
