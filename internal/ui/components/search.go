package components

import (
	"fmt"

	"ymdb/internal/ui/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Search struct {
	field   *tview.InputField
	counter *tview.TextView
	theme   *theme.Theme
}

func NewSearch(theme *theme.Theme) *Search {
	search := &Search{
		field:   tview.NewInputField(),
		counter: tview.NewTextView(),
		theme:   theme,
	}

	search.field.SetLabel("Search: ")
	search.field.SetPlaceholder("Search for a movie...")
	search.field.SetPlaceholderTextColor(theme.MutedColor)
	search.field.SetFieldBackgroundColor(theme.DefaultBgColor)
	search.field.SetFieldTextColor(theme.DefaultTextColor)
	search.field.SetLabelColor(theme.LabelColor)
	search.field.SetFieldWidth(40)
	search.counter.SetDynamicColors(true)
	search.counter.SetTextAlign(tview.AlignRight)
	return search
}

func (s *Search) SetHandlers(done func(key tcell.Key), changed func(text string)) {
	s.field.SetDoneFunc(done)
	s.field.SetChangedFunc(changed)
}

// UpdateCounter shows how many results are listed out of the API total.
func (s *Search) UpdateCounter(shown, total int) {
	s.counter.SetText(fmt.Sprintf("Shown: %d | Total: %d", shown, total))
}

func (s *Search) ClearCounter() {
	s.counter.Clear()
}

func (s *Search) Field() *tview.InputField {
	return s.field
}

func (s *Search) Counter() *tview.TextView {
	return s.counter
}
