package services

import (
	"sync"

	"ymdb/internal/models"
)

// SelectionStore holds the movie the user picked. It is shared by reference
// between the result list (writer) and whoever displays the selection.
type SelectionStore struct {
	mu        sync.RWMutex
	movie     models.Movie
	set       bool
	listeners []func(models.Movie)
}

// NewSelectionStore creates an empty store.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{}
}

// SetSelectedMovie replaces the selection and notifies subscribers.
func (s *SelectionStore) SetSelectedMovie(m models.Movie) {
	s.mu.Lock()
	s.movie = m
	s.set = true
	listeners := append([]func(models.Movie){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(m)
	}
}

// Selected returns the current selection.
func (s *SelectionStore) Selected() (models.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movie, s.set
}

// Subscribe registers fn to be called after every selection.
func (s *SelectionStore) Subscribe(fn func(models.Movie)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
