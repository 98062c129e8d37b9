package ui

import (
	"ymdb/internal/ui/components"
	"ymdb/internal/ui/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type LayoutInterface interface {
	Setup()
	Root() tview.Primitive

	GetHeader() *components.Header
	GetSearch() *components.Search
	GetResults() *components.Results
	GetDetails() *components.Details
	GetSelected() *components.Selected
	GetLegend() *components.Legend
	GetNotifier() *components.Notifier

	UpdateDetails(text string)
	UpdateSearchCounter(shown, total int)

	ShowSuccessNotification(message string)
	ShowWarningNotification(message string)
	ShowErrorNotification(message string)
	ClearNotification()

	SetSearchHandlers(doneFunc func(key tcell.Key), changedFunc func(text string))
	SetResultsHandlers(selectionChanged, activated func(row, column int))
}

type Layout struct {
	mainContent *tview.Grid
	header      *components.Header
	search      *components.Search
	results     *components.Results
	details     *components.Details
	selected    *components.Selected
	legend      *components.Legend
	notifier    *components.Notifier
	theme       *theme.Theme
}

func NewLayout(theme *theme.Theme) *Layout {
	return &Layout{
		mainContent: tview.NewGrid(),
		header:      components.NewHeader(theme),
		search:      components.NewSearch(theme),
		results:     components.NewResults(theme),
		details:     components.NewDetails(theme),
		selected:    components.NewSelected(theme),
		legend:      components.NewLegend(theme),
		notifier:    components.NewNotifier(theme),
		theme:       theme,
	}
}

func (l *Layout) setupLayout() {
	// Header
	headerContent := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(l.header.View(), 0, 1, false).
		AddItem(l.notifier.View(), 0, 1, false)

	// Search input and result counter
	searchRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(l.search.Field(), 0, 1, false).
		AddItem(l.search.Counter(), 0, 1, false)

	searchArea := tview.NewFrame(searchRow).
		SetBorders(0, 0, 0, 0, 1, 1)

	// Left column with search and results
	leftColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(searchArea, 2, 0, false).
		AddItem(l.results, 0, 4, false)

	// Right column with details of the highlighted row and the selection
	rightColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(l.details.View(), 0, 2, false).
		AddItem(l.selected.View(), 0, 1, false)

	mainContent := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(leftColumn, 0, 2, false).
		AddItem(rightColumn, 0, 1, false)

	footerContent := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(l.legend.View(), 0, 1, false)

	l.mainContent.
		Clear().
		SetRows(1, 0, 1).
		SetColumns(0).
		SetBorders(true).
		AddItem(headerContent, 0, 0, 1, 1, 0, 0, false).
		AddItem(mainContent, 1, 0, 1, 1, 0, 0, true).
		AddItem(footerContent, 2, 0, 1, 1, 0, 0, false)
}

func (l *Layout) Setup() {
	l.setupLayout()
}

func (l *Layout) Root() tview.Primitive {
	return l.mainContent
}

func (l *Layout) GetHeader() *components.Header     { return l.header }
func (l *Layout) GetSearch() *components.Search     { return l.search }
func (l *Layout) GetResults() *components.Results   { return l.results }
func (l *Layout) GetDetails() *components.Details   { return l.details }
func (l *Layout) GetSelected() *components.Selected { return l.selected }
func (l *Layout) GetLegend() *components.Legend     { return l.legend }
func (l *Layout) GetNotifier() *components.Notifier { return l.notifier }

func (l *Layout) UpdateDetails(text string) {
	l.details.SetContent(text)
}

func (l *Layout) UpdateSearchCounter(shown, total int) {
	l.search.UpdateCounter(shown, total)
}

func (l *Layout) ShowSuccessNotification(message string) {
	l.notifier.ShowSuccess(message)
}

func (l *Layout) ShowWarningNotification(message string) {
	l.notifier.ShowWarning(message)
}

func (l *Layout) ShowErrorNotification(message string) {
	l.notifier.ShowError(message)
}

func (l *Layout) ClearNotification() {
	l.notifier.Clear()
}

func (l *Layout) SetSearchHandlers(doneFunc func(key tcell.Key), changedFunc func(text string)) {
	l.search.SetHandlers(doneFunc, changedFunc)
}

func (l *Layout) SetResultsHandlers(selectionChanged, activated func(row, column int)) {
	l.results.SetSelectionHandler(selectionChanged)
	l.results.SetActivateHandler(activated)
}
