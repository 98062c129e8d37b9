package components

import (
	"fmt"
	"strings"

	"ymdb/internal/ui/theme"

	"github.com/rivo/tview"
)

// LegendEntry is one key binding shown in the footer.
type LegendEntry struct {
	KeySlug string
	Name    string
}

type Legend struct {
	view  *tview.TextView
	theme *theme.Theme
}

func NewLegend(theme *theme.Theme) *Legend {
	legendView := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetTextColor(theme.LegendColor)

	return &Legend{
		view:  legendView,
		theme: theme,
	}
}

func (l *Legend) View() *tview.TextView {
	return l.view
}

func (l *Legend) GetFormattedLabel(keySlug, label string, active bool) string {
	if active {
		return fmt.Sprintf("[yellow::b]%s[-:-:-]", tview.Escape(fmt.Sprintf("[%s] %s", keySlug, label)))
	}

	return tview.Escape(fmt.Sprintf("[%s] %s", keySlug, label))
}

// SetLegend renders the entries, highlighting the one matching activeKey.
func (l *Legend) SetLegend(legend []LegendEntry, activeKey string) {
	labels := make([]string, 0, len(legend))
	for _, item := range legend {
		labels = append(labels, l.GetFormattedLabel(item.KeySlug, item.Name, item.KeySlug == activeKey))
	}
	l.view.SetText(strings.Join(labels, " | "))
}

func (l *Legend) Text() string {
	return l.view.GetText(true)
}
