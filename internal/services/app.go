package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ymdb/internal/config"
	"ymdb/internal/logger"
	"ymdb/internal/models"
	"ymdb/internal/ui"
	"ymdb/internal/ui/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	AppName    = "YMDB"
	AppVersion = "0.1.0"
)

type AppServiceInterface interface {
	GetApp() *tview.Application
	GetLayout() ui.LayoutInterface
	GetSelection() *SelectionStore

	Boot() (err error)
	BuildApp()
	SetInitialQuery(query string)
	Cleanup()
}

// AppService manages the application state and wires the search widget together.
type AppService struct {
	app    *tview.Application
	theme  *theme.Theme
	layout ui.LayoutInterface
	config *config.Config
	logger *slog.Logger

	// Rows currently displayed. Only touched on the tview event loop.
	movies       []models.Movie
	renderedSeq  uint64
	initialQuery string

	// Services
	searcher     MovieSearcher
	search       *SearchController
	selection    *SelectionStore
	inputService InputServiceInterface
}

// NewAppService creates the application. searcher may be nil, in which case
// Boot builds a TMDB client from cfg.
var NewAppService = func(cfg *config.Config, searcher MovieSearcher, appLogger *slog.Logger) AppServiceInterface {
	if appLogger == nil {
		appLogger = logger.Discard()
	}

	app := tview.NewApplication()
	themeService := theme.NewTheme()
	layout := ui.NewLayout(themeService)

	s := &AppService{
		app:       app,
		theme:     themeService,
		layout:    layout,
		config:    cfg,
		logger:    appLogger,
		searcher:  searcher,
		selection: NewSelectionStore(),
	}
	s.inputService = NewInputService(s)
	return s
}

func (s *AppService) GetApp() *tview.Application    { return s.app }
func (s *AppService) GetLayout() ui.LayoutInterface { return s.layout }
func (s *AppService) GetSelection() *SelectionStore { return s.selection }
func (s *AppService) SetInitialQuery(query string)  { s.initialQuery = query }

// Boot validates the configuration and creates the search controller.
func (s *AppService) Boot() (err error) {
	if s.config == nil {
		return fmt.Errorf("missing configuration")
	}
	if err = s.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if s.searcher == nil {
		s.searcher = NewTMDBClient(TMDBClientConfig{
			SearchURL: s.config.TMDB.SearchURL,
			APIKey:    s.config.TMDB.APIKey,
			Language:  s.config.TMDB.Language,
			Timeout:   s.config.TMDB.Timeout,
			RateLimit: s.config.TMDB.RateLimit,
			RateBurst: s.config.TMDB.RateBurst,
		})
	}

	s.search = NewSearchController(s.searcher, s.config.UI.DebounceDelay, s.logger.With("component", "search"))
	s.logger.Info("application booted",
		"version", AppVersion,
		"language", s.config.TMDB.Language,
		"debounce", s.config.UI.DebounceDelay)
	return nil
}

// Cleanup cancels the pending debounce timer and any in-flight fetch.
func (s *AppService) Cleanup() {
	if s.search != nil {
		s.search.Close()
	}
}

// BuildApp builds the layout, registers the handlers and sets the root view.
func (s *AppService) BuildApp() {
	s.layout.Setup()
	s.layout.GetHeader().Update(AppName, AppVersion, s.config.TMDB.Language)

	// Results section
	selectionChanged := func(row, _ int) {
		if m, ok := s.movieAt(row); ok {
			s.setDetails(&m)
		}
	}
	activated := func(row, _ int) {
		if m, ok := s.movieAt(row); ok {
			s.selection.SetSelectedMovie(m)
		}
	}
	s.layout.SetResultsHandlers(selectionChanged, activated)

	// Search field section
	inputDoneFunc := func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			s.search.Flush()
			s.app.SetFocus(s.layout.GetResults())
		case tcell.KeyEscape, tcell.KeyTab:
			s.app.SetFocus(s.layout.GetResults())
		}
	}
	changedFunc := func(text string) {
		s.search.SetQuery(text)
	}
	s.layout.SetSearchHandlers(inputDoneFunc, changedFunc)

	// Snapshots are re-read on the event loop so listeners firing out of order
	// from different goroutines always render the latest state.
	s.search.OnChange(func(_ SearchSnapshot) {
		go s.app.QueueUpdateDraw(func() {
			s.applySnapshot(s.search.Snapshot())
		})
	})

	s.selection.Subscribe(func(m models.Movie) {
		s.layout.GetSelected().Write(formatSelection(m, s.config.TMDB.ImageBaseURL, s.config.UI.PosterWidth))
		s.layout.ShowSuccessNotification(fmt.Sprintf("Selected %s", m.Title))
		s.logger.Info("movie selected", "id", m.ID, "title", m.Title)
	})

	s.app.EnableMouse(true)
	s.app.SetInputCapture(s.inputService.HandleKeyEventInput)
	s.app.SetRoot(s.layout.Root(), true)
	s.app.SetFocus(s.layout.GetSearch().Field())

	s.setResults(nil)

	if s.initialQuery != "" {
		s.layout.GetSearch().Field().SetText(s.initialQuery)
		s.search.Flush()
	}
}

// applySnapshot renders a controller snapshot. Must run on the event loop.
func (s *AppService) applySnapshot(snap SearchSnapshot) {
	if snap.ResultsSeq != s.renderedSeq {
		s.renderedSeq = snap.ResultsSeq
		s.setResults(snap.Results)
	}

	if snap.Err != nil {
		s.layout.ShowErrorNotification(fmt.Sprintf("Search failed: %s", describeSearchError(snap.Err)))
		return
	}

	switch snap.State {
	case SearchLoading:
		s.layout.ShowWarningNotification(fmt.Sprintf("Searching %q...", snap.Settled))
	case SearchReady:
		s.layout.ShowSuccessNotification(fmt.Sprintf("%d results for %q", len(snap.Results), snap.Settled))
		s.layout.UpdateSearchCounter(len(snap.Results), snap.TotalResults)
	case SearchIdle:
		s.layout.ClearNotification()
		s.layout.GetSearch().ClearCounter()
	}
}

// describeSearchError turns a fetch failure into a short user-facing message.
func describeSearchError(err error) string {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		if statusErr.StatusCode == http.StatusUnauthorized {
			return "invalid TMDB API key"
		}
		return fmt.Sprintf("TMDB answered with status %d", statusErr.StatusCode)
	case errors.Is(err, ErrMalformed):
		return "unexpected response from TMDB"
	case errors.Is(err, ErrTransport):
		return "TMDB is unreachable"
	}
	return err.Error()
}

func (s *AppService) setResults(movies []models.Movie) {
	s.movies = movies
	s.layout.GetResults().SetRows(buildResultRows(movies))

	if len(movies) > 0 {
		s.setDetails(&movies[0])
		return
	}
	s.setDetails(nil)
}

func (s *AppService) setDetails(m *models.Movie) {
	if m == nil {
		s.layout.GetDetails().Clear()
		return
	}
	s.layout.UpdateDetails(formatDetails(*m, s.config.TMDB.ImageBaseURL, s.config.UI.PosterWidth))
}

// movieAt maps a table row to the displayed movie, skipping the header row.
func (s *AppService) movieAt(row int) (models.Movie, bool) {
	if row < 1 || row-1 >= len(s.movies) {
		return models.Movie{}, false
	}
	return s.movies[row-1], true
}
