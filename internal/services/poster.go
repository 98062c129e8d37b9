package services

import "fmt"

// PosterPlaceholder is shown for movies TMDB has no poster for.
const PosterPlaceholder = "assets/poster-placeholder.png"

// HasPoster reports whether TMDB returned a poster path.
func HasPoster(path *string) bool {
	return path != nil && *path != ""
}

// PosterURL builds the image CDN URL for a poster at the given pixel width.
func PosterURL(base string, path *string, width int) string {
	if !HasPoster(path) {
		return PosterPlaceholder
	}
	return fmt.Sprintf("%s/%dpx%s", base, width, *path)
}
