package components

import (
	"math"

	"ymdb/internal/ui/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	headerRows = 1

	markerAbove = "▲ more "
	markerBelow = "▼ more "

	posterMarker   = "▣"
	noPosterMarker = "□"
)

// ScrollEdges tells whether content is clipped above or below the viewport.
type ScrollEdges struct {
	Above bool
	Below bool
}

// DetectScrollEdges derives the clipping flags from the scroll offset,
// the viewport height and the total content height.
func DetectScrollEdges(offset, viewport, content float64) ScrollEdges {
	return ScrollEdges{
		Above: offset != 0,
		Below: math.Ceil(offset+viewport) < content,
	}
}

// ResultRow is one rendered movie line.
type ResultRow struct {
	HasPoster   bool // the details pane carries the URL, the row only a marker
	Title       string
	Year        string
	Rating      string // empty when the badge is hidden
	RatingColor tcell.Color
	Adult       string
	Overview    string
}

// Results is the scrollable movie list. Scroll edges are recomputed on every
// draw, which covers scrolling, selection moves and result replacement.
type Results struct {
	*tview.Table
	theme     *theme.Theme
	edges     ScrollEdges
	activated func(row, column int)
}

func NewResults(theme *theme.Theme) *Results {
	results := &Results{
		Table: tview.NewTable(),
		theme: theme,
	}
	results.SetBorders(false)
	results.SetSelectable(true, false)
	results.SetFixed(headerRows, 0)
	results.SetBorder(true)
	results.SetTitle("Results")
	results.SetTitleColor(theme.TitleColor)
	results.SetTitleAlign(tview.AlignLeft)
	return results
}

func (r *Results) View() *tview.Table {
	return r.Table
}

// Edges returns the flags computed during the last draw.
func (r *Results) Edges() ScrollEdges {
	return r.edges
}

func (r *Results) SetSelectionHandler(handler func(row, column int)) {
	r.SetSelectionChangedFunc(handler)
}

// SetActivateHandler sets the handler for Enter and for a left click on a movie row.
func (r *Results) SetActivateHandler(handler func(row, column int)) {
	r.activated = handler
	r.SetSelectedFunc(handler)
}

// MouseHandler selects the clicked row like tview.Table does, then activates it.
func (r *Results) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	handler := r.Table.MouseHandler()
	return func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		consumed, capture = handler(action, event, setFocus)
		if action != tview.MouseLeftClick || !consumed || r.activated == nil {
			return
		}

		// CellAt also maps coordinates on the border.
		x, y := event.Position()
		innerX, innerY, innerWidth, innerHeight := r.GetInnerRect()
		if x < innerX || x >= innerX+innerWidth || y < innerY || y >= innerY+innerHeight {
			return
		}
		row, column := r.CellAt(x, y)
		if row >= headerRows {
			r.activated(row, column)
		}
		return
	}
}

// SetRows replaces the whole list and scrolls back to the first movie.
func (r *Results) SetRows(rows []ResultRow) {
	r.Clear()
	r.setHeaders("", "Title", "Year", "Rating", "", "Overview")

	for i, row := range rows {
		line := i + headerRows

		poster := tview.NewTableCell(noPosterMarker).SetTextColor(r.theme.MutedColor)
		if row.HasPoster {
			poster = tview.NewTableCell(posterMarker).SetTextColor(r.theme.DefaultTextColor)
		}
		r.SetCell(line, 0, poster)
		r.SetCell(line, 1, tview.NewTableCell(tview.Escape(row.Title)).SetMaxWidth(40))
		r.SetCell(line, 2, tview.NewTableCell(row.Year).SetTextColor(r.theme.MutedColor))

		rating := tview.NewTableCell("")
		if row.Rating != "" {
			rating.SetText("● " + row.Rating).SetTextColor(row.RatingColor)
		}
		r.SetCell(line, 3, rating)
		r.SetCell(line, 4, tview.NewTableCell(row.Adult).SetTextColor(r.theme.AdultColor))
		r.SetCell(line, 5, tview.NewTableCell(tview.Escape(row.Overview)).SetExpansion(1))
	}

	if len(rows) > 0 {
		r.Select(headerRows, 0)
	}
	r.ScrollToBeginning()
}

// Draw draws the table and the scroll edge markers on its border.
func (r *Results) Draw(screen tcell.Screen) {
	r.Table.Draw(screen)

	rowOffset, _ := r.GetOffset()
	_, _, _, innerHeight := r.GetInnerRect()
	viewport := innerHeight - headerRows
	content := r.GetRowCount() - headerRows
	if viewport < 0 {
		viewport = 0
	}
	if content < 0 {
		content = 0
	}
	r.edges = DetectScrollEdges(float64(rowOffset), float64(viewport), float64(content))

	x, y, width, height := r.GetRect()
	if r.edges.Above {
		tview.Print(screen, markerAbove, x+1, y, width-2, tview.AlignRight, r.theme.EdgeMarkerColor)
	}
	if r.edges.Below {
		tview.Print(screen, markerBelow, x+1, y+height-1, width-2, tview.AlignRight, r.theme.EdgeMarkerColor)
	}
}

func (r *Results) setHeaders(headers ...string) {
	for i, header := range headers {
		r.SetCell(0, i, &tview.TableCell{
			Text:            header,
			NotSelectable:   true,
			Align:           tview.AlignLeft,
			Color:           r.theme.TableHeaderColor,
			BackgroundColor: r.theme.DefaultBgColor,
		})
	}
}
