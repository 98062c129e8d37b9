package services

import (
	"ymdb/internal/ui"
	"ymdb/internal/ui/components"

	"github.com/gdamore/tcell/v2"
)

// InputAction represents a user action that can be triggered by a key event.
type InputAction struct {
	Key            tcell.Key
	Rune           rune
	Name           string
	KeySlug        string
	Action         func()
	HideFromLegend bool // If true, this action won't appear in the legend bar
}

// InputServiceInterface defines the interface for handling user input actions.
type InputServiceInterface interface {
	HandleKeyEventInput(event *tcell.EventKey) *tcell.EventKey
}

// InputService implements the InputServiceInterface and handles key events for the application.
type InputService struct {
	appService    *AppService
	layout        ui.LayoutInterface
	keyActions    []*InputAction
	legendEntries []components.LegendEntry

	// Actions for each key input
	ActionSearch *InputAction
	ActionSelect *InputAction
	ActionClear  *InputAction
	ActionBack   *InputAction
	ActionQuit   *InputAction
}

var NewInputService = func(appService *AppService) InputServiceInterface {
	s := &InputService{
		appService: appService,
		layout:     appService.GetLayout(),
	}

	s.ActionSearch = &InputAction{
		Key: tcell.KeyRune, Rune: '/', KeySlug: "/", Name: "Search",
		Action: s.handleSearchFieldEvent,
	}
	// Enter is handled by the results table itself; the entry only documents it.
	s.ActionSelect = &InputAction{
		Key: tcell.KeyEnter, Rune: 0, KeySlug: "enter", Name: "Select",
	}
	s.ActionClear = &InputAction{
		Key: tcell.KeyRune, Rune: 'c', KeySlug: "c", Name: "Clear",
		Action: s.handleClearEvent,
	}
	s.ActionBack = &InputAction{
		Key: tcell.KeyEsc, Rune: 0, KeySlug: "esc", Name: "Back to Results",
		Action: s.handleBack, HideFromLegend: true,
	}
	s.ActionQuit = &InputAction{
		Key: tcell.KeyRune, Rune: 'q', KeySlug: "q", Name: "Quit",
		Action: s.handleQuitEvent,
	}

	s.keyActions = []*InputAction{
		s.ActionSearch, s.ActionSelect, s.ActionClear, s.ActionBack, s.ActionQuit,
	}

	s.updateLegendEntries()
	return s
}

// updateLegendEntries updates the legend entries based on current keyActions
func (s *InputService) updateLegendEntries() {
	s.legendEntries = make([]components.LegendEntry, 0, len(s.keyActions))
	for _, input := range s.keyActions {
		if !input.HideFromLegend {
			s.legendEntries = append(s.legendEntries, components.LegendEntry{KeySlug: input.KeySlug, Name: input.Name})
		}
	}
	s.layout.GetLegend().SetLegend(s.legendEntries, "")
}

// HandleKeyEventInput processes key events and triggers the corresponding actions.
// While the search field has focus every key goes to the field.
func (s *InputService) HandleKeyEventInput(event *tcell.EventKey) *tcell.EventKey {
	if s.layout.GetSearch().Field().HasFocus() {
		return event
	}

	for _, input := range s.keyActions {
		if input.Action == nil || input.Key != event.Key() {
			continue
		}
		if event.Key() == tcell.KeyRune && input.Rune != event.Rune() {
			continue
		}
		input.Action()
		return nil
	}

	return event
}

// handleSearchFieldEvent is called when the user presses the search key (/).
func (s *InputService) handleSearchFieldEvent() {
	s.appService.GetApp().SetFocus(s.layout.GetSearch().Field())
}

// handleClearEvent empties the query and moves focus back to the search field.
// Clearing settles immediately so no stale rows linger for a debounce window.
func (s *InputService) handleClearEvent() {
	s.layout.GetSearch().Field().SetText("")
	if s.appService.search != nil {
		s.appService.search.Flush()
	}
	s.appService.GetApp().SetFocus(s.layout.GetSearch().Field())
}

// handleBack is called when the user presses the back key (Esc).
func (s *InputService) handleBack() {
	s.appService.GetApp().SetFocus(s.layout.GetResults())
}

// handleQuitEvent is called when the user presses the quit key (q).
func (s *InputService) handleQuitEvent() {
	s.appService.GetApp().Stop()
}
