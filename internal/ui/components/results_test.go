package components

import (
	"fmt"
	"testing"

	"ymdb/internal/ui/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScrollEdges(t *testing.T) {
	tests := []struct {
		name                      string
		offset, viewport, content float64
		want                      ScrollEdges
	}{
		{"content fits", 0, 20, 10, ScrollEdges{}},
		{"content exactly fits", 0, 20, 20, ScrollEdges{}},
		{"empty list", 0, 20, 0, ScrollEdges{}},
		{"at top of long list", 0, 10, 30, ScrollEdges{Below: true}},
		{"middle", 5, 10, 30, ScrollEdges{Above: true, Below: true}},
		{"at bottom", 20, 10, 30, ScrollEdges{Above: true}},
		{"fractional bottom rounds up", 19.6, 10, 30, ScrollEdges{Above: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectScrollEdges(tt.offset, tt.viewport, tt.content))
		})
	}
}

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func makeRows(n int) []ResultRow {
	rows := make([]ResultRow, n)
	for i := range rows {
		rows[i] = ResultRow{Title: fmt.Sprintf("Movie %d", i), Year: "1999 ", Overview: "No overview available"}
	}
	return rows
}

func TestResultsEdgesWhenContentFits(t *testing.T) {
	screen := newScreen(t, 80, 12)
	results := NewResults(theme.NewTheme())
	results.SetRect(0, 0, 80, 12)
	results.SetRows(makeRows(3))

	for row := 1; row <= 3; row++ {
		results.Select(row, 0)
		results.Draw(screen)
		assert.Equal(t, ScrollEdges{}, results.Edges(), "selected row %d", row)
	}
}

func TestResultsEdgesFollowScrolling(t *testing.T) {
	screen := newScreen(t, 80, 12)
	results := NewResults(theme.NewTheme())
	results.SetRect(0, 0, 80, 12)
	results.SetRows(makeRows(40))

	results.Draw(screen)
	assert.Equal(t, ScrollEdges{Below: true}, results.Edges())

	results.Select(20, 0)
	results.Draw(screen)
	assert.Equal(t, ScrollEdges{Above: true, Below: true}, results.Edges())

	results.Select(40, 0)
	results.Draw(screen)
	assert.Equal(t, ScrollEdges{Above: true}, results.Edges())
}

func TestResultsEdgesRecomputedOnReplacement(t *testing.T) {
	screen := newScreen(t, 80, 12)
	results := NewResults(theme.NewTheme())
	results.SetRect(0, 0, 80, 12)

	results.SetRows(makeRows(40))
	results.Select(40, 0)
	results.Draw(screen)
	require.True(t, results.Edges().Above)

	results.SetRows(makeRows(2))
	results.Draw(screen)
	assert.Equal(t, ScrollEdges{}, results.Edges())
}

func TestResultsSetRows(t *testing.T) {
	results := NewResults(theme.NewTheme())
	results.SetRows([]ResultRow{
		{
			HasPoster:   true,
			Title:       "The Matrix",
			Year:        "1999 ",
			Rating:      "8.7",
			RatingColor: tcell.ColorRed,
			Overview:    "A hacker...",
		},
		{Title: "Untitled", Year: "Unknown ", Adult: "🔞", Overview: "No overview available"},
	})

	assert.Equal(t, 3, results.GetRowCount())
	assert.Equal(t, "Title", results.GetCell(0, 1).Text)
	assert.Equal(t, posterMarker, results.GetCell(1, 0).Text)
	assert.Equal(t, "The Matrix", results.GetCell(1, 1).Text)
	assert.Equal(t, "1999 ", results.GetCell(1, 2).Text)
	assert.Equal(t, "● 8.7", results.GetCell(1, 3).Text)
	fg, _, _ := results.GetCell(1, 3).Style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
	assert.Equal(t, "", results.GetCell(1, 4).Text)
	assert.Equal(t, "A hacker...", results.GetCell(1, 5).Text)

	assert.Equal(t, noPosterMarker, results.GetCell(2, 0).Text)
	assert.Equal(t, "", results.GetCell(2, 3).Text)
	assert.Equal(t, "🔞", results.GetCell(2, 4).Text)

	row, _ := results.GetSelection()
	assert.Equal(t, 1, row)
}

func leftClick(results *Results, x, y int) bool {
	event := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
	consumed, _ := results.MouseHandler()(tview.MouseLeftClick, event, func(tview.Primitive) {})
	return consumed
}

func TestResultsClickActivatesRow(t *testing.T) {
	screen := newScreen(t, 80, 12)
	results := NewResults(theme.NewTheme())
	results.SetRect(0, 0, 80, 12)
	results.SetRows(makeRows(3))
	results.Draw(screen)

	var activated []int
	results.SetActivateHandler(func(row, _ int) {
		activated = append(activated, row)
	})

	// Border at y=0, header at y=1, first movie at y=2.
	assert.True(t, leftClick(results, 5, 3))
	row, _ := results.GetSelection()
	assert.Equal(t, 2, row)
	assert.Equal(t, []int{2}, activated)

	assert.True(t, leftClick(results, 5, 2))
	assert.Equal(t, []int{2, 1}, activated)
}

func TestResultsClickOutsideMoviesDoesNotActivate(t *testing.T) {
	screen := newScreen(t, 80, 12)
	results := NewResults(theme.NewTheme())
	results.SetRect(0, 0, 80, 12)
	results.SetRows(makeRows(3))
	results.Draw(screen)

	activated := 0
	results.SetActivateHandler(func(int, int) { activated++ })

	leftClick(results, 5, 1)  // header
	leftClick(results, 5, 8)  // below the last row
	leftClick(results, 5, 11) // bottom border
	assert.Zero(t, activated)

	// Moving the mouse button down only focuses.
	event := tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone)
	results.MouseHandler()(tview.MouseLeftDown, event, func(tview.Primitive) {})
	assert.Zero(t, activated)
}
