package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ymdb/internal/models"

	"golang.org/x/time/rate"
)

var (
	// ErrTransport wraps network level failures.
	ErrTransport = errors.New("tmdb: transport failure")
	// ErrMalformed is returned when the response body is not a search result.
	ErrMalformed = errors.New("tmdb: malformed response")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d", e.StatusCode)
}

// MovieSearcher is the fetch collaborator of the search controller.
type MovieSearcher interface {
	SearchMovies(ctx context.Context, query string, page int) (*models.SearchResult, error)
}

// TMDBClientConfig controls the TMDB connection.
type TMDBClientConfig struct {
	HTTPClient *http.Client
	SearchURL  string
	APIKey     string
	Language   string
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables throttling
	RateBurst  int
}

// TMDBClient queries the TMDB movie search endpoint.
type TMDBClient struct {
	httpClient *http.Client
	searchURL  string
	apiKey     string
	language   string
	limiter    *rate.Limiter
}

// NewTMDBClient creates a new search client.
func NewTMDBClient(cfg TMDBClientConfig) *TMDBClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &TMDBClient{
		httpClient: httpClient,
		searchURL:  strings.TrimSpace(cfg.SearchURL),
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		limiter:    limiter,
	}
}

// SearchMovies runs one search request. Adult content is always included.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string, page int) (*models.SearchResult, error) {
	reqURL, err := c.buildURL(query, page)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", AppName+"/"+AppVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var result models.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if result.Results == nil {
		return nil, fmt.Errorf("%w: missing results field", ErrMalformed)
	}

	return &result, nil
}

func (c *TMDBClient) buildURL(query string, page int) (string, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return "", fmt.Errorf("invalid search url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("include_adult", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
