package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ymdb/internal/logger"
	"ymdb/internal/models"
)

// searchPage is fixed: only the first page of results is ever requested.
const searchPage = 1

// SearchState is the lifecycle state of the search controller.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchLoading
	SearchReady
)

func (s SearchState) String() string {
	switch s {
	case SearchIdle:
		return "idle"
	case SearchLoading:
		return "loading"
	case SearchReady:
		return "ready"
	}
	return "unknown"
}

// SearchSnapshot is a copy of the controller state handed to listeners.
type SearchSnapshot struct {
	Query        string // raw text of the search field
	Settled      string // debounced text the results belong to
	State        SearchState
	Results      []models.Movie
	TotalResults int
	Err          error  // last fetch failure, cleared when the next fetch starts
	Seq          uint64 // tag of the most recently issued fetch
	ResultsSeq   uint64 // tag of the fetch (or clear) Results came from
}

// SearchController owns the query, the debounced query and the result list,
// and issues one fetch per settled query change.
type SearchController struct {
	mu sync.Mutex

	searcher  MovieSearcher
	debouncer *Debouncer[string]
	logger    *slog.Logger

	query        string
	settled      string
	state        SearchState
	results      []models.Movie
	totalResults int
	err          error

	seq        uint64             // tag of the most recently issued fetch
	resultsSeq uint64             // tag of the fetch Results came from
	cancel     context.CancelFunc // cancels the in-flight fetch, if any
	closed     bool
	wg         sync.WaitGroup

	listeners []func(SearchSnapshot)
}

// NewSearchController creates a controller settling input after delay.
func NewSearchController(searcher MovieSearcher, delay time.Duration, log *slog.Logger) *SearchController {
	if log == nil {
		log = logger.Discard()
	}
	c := &SearchController{
		searcher: searcher,
		logger:   log,
		results:  []models.Movie{},
	}
	c.debouncer = NewDebouncer(delay, c.settle)
	return c
}

// OnChange registers fn to be called after every state transition.
// fn runs on whichever goroutine caused the transition.
func (c *SearchController) OnChange(fn func(SearchSnapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// SetQuery records a keystroke. The fetch happens once the text settles.
func (c *SearchController) SetQuery(raw string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = raw
	c.mu.Unlock()

	c.debouncer.Set(raw)
}

// Flush settles the current query without waiting for the debounce window.
func (c *SearchController) Flush() {
	c.debouncer.Flush()
}

// Snapshot returns a copy of the current state.
func (c *SearchController) Snapshot() SearchSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops the debouncer and cancels any in-flight fetch.
// Responses arriving afterwards are ignored.
func (c *SearchController) Close() {
	c.debouncer.Stop()

	c.mu.Lock()
	c.closed = true
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

// settle is the debouncer callback.
func (c *SearchController) settle(raw string) {
	query := strings.TrimSpace(raw)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if query == c.settled && (c.state != SearchIdle || query == "") {
		// Same settled text as before: nothing to refetch.
		c.mu.Unlock()
		return
	}

	c.settled = query
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if query == "" {
		c.state = SearchIdle
		c.results = []models.Movie{}
		c.resultsSeq = c.seq
		c.totalResults = 0
		c.err = nil
		snap, listeners := c.snapshotLocked(), c.listeners
		c.mu.Unlock()

		c.logger.Debug("search cleared")
		notify(listeners, snap)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.state = SearchLoading
	c.err = nil
	seq := c.seq
	snap, listeners := c.snapshotLocked(), c.listeners
	c.wg.Add(1)
	c.mu.Unlock()

	c.logger.Debug("search settled", "query", query, "seq", seq)
	notify(listeners, snap)

	go c.fetch(ctx, cancel, seq, query)
}

func (c *SearchController) fetch(ctx context.Context, cancel context.CancelFunc, seq uint64, query string) {
	defer c.wg.Done()
	defer cancel()

	start := time.Now()
	result, err := c.searcher.SearchMovies(ctx, query, searchPage)

	c.mu.Lock()
	if seq != c.seq || query != c.settled {
		c.mu.Unlock()
		c.logger.Debug("discarding stale search response", "query", query, "seq", seq)
		return
	}
	c.cancel = nil

	if err != nil {
		c.err = err
		if len(c.results) > 0 {
			c.state = SearchReady
		} else {
			c.state = SearchIdle
		}
		snap, listeners := c.snapshotLocked(), c.listeners
		c.mu.Unlock()

		c.logger.Warn("search failed", "query", query, "error", err)
		notify(listeners, snap)
		return
	}

	c.results = *result.Results
	c.resultsSeq = seq
	c.totalResults = result.TotalResults
	c.err = nil
	c.state = SearchReady
	snap, listeners := c.snapshotLocked(), c.listeners
	c.mu.Unlock()

	c.logger.Info("search completed",
		"query", query,
		"results", len(snap.Results),
		"total", snap.TotalResults,
		"duration", time.Since(start))
	notify(listeners, snap)
}

func (c *SearchController) snapshotLocked() SearchSnapshot {
	return SearchSnapshot{
		Query:        c.query,
		Settled:      c.settled,
		State:        c.state,
		Results:      append([]models.Movie(nil), c.results...),
		TotalResults: c.totalResults,
		Err:          c.err,
		Seq:          c.seq,
		ResultsSeq:   c.resultsSeq,
	}
}

func notify(listeners []func(SearchSnapshot), snap SearchSnapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
