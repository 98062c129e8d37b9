package models

// Movie represents a single entry of the TMDB movie search results.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	PosterPath       *string `json:"poster_path"` // Null when TMDB has no poster
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	Overview         *string `json:"overview"` // Null or empty when not translated
}

// SearchResult is the envelope returned by the search endpoint.
// Results is a pointer so a missing field can be told apart from an empty page.
type SearchResult struct {
	Page         int      `json:"page"`
	TotalResults int      `json:"total_results"`
	TotalPages   int      `json:"total_pages"`
	Results      *[]Movie `json:"results"`
}
