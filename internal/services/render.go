package services

import (
	"fmt"
	"strings"

	"ymdb/internal/models"
	"ymdb/internal/ui/components"

	"github.com/rivo/tview"
)

// buildResultRows derives the displayed row of every movie.
func buildResultRows(movies []models.Movie) []components.ResultRow {
	rows := make([]components.ResultRow, 0, len(movies))
	for _, m := range movies {
		row := components.ResultRow{
			HasPoster: HasPoster(m.PosterPath),
			Title:     m.Title,
			Year:      YearLabel(m),
			Adult:     AdultBadge(m),
			Overview:  OverviewSnippet(m),
		}
		if badge, ok := Rating(m); ok {
			row.Rating = badge.Value
			row.RatingColor = badge.Color()
		}
		rows = append(rows, row)
	}
	return rows
}

// formatDetails renders the details pane for the highlighted movie.
func formatDetails(m models.Movie, imageBase string, posterWidth int) string {
	rating := "[gray]Not enough votes[-]"
	if badge, ok := Rating(m); ok {
		rating = fmt.Sprintf("[#%06x]●[-] %s", badge.Color().Hex(), badge.Value)
	}

	adult := "No"
	if m.Adult {
		adult = "Yes " + AdultMarker
	}

	overview := NoOverview
	if m.Overview != nil && *m.Overview != "" {
		overview = *m.Overview
	}

	original := m.OriginalTitle
	if m.OriginalLanguage != "" {
		original = fmt.Sprintf("%s (%s)", m.OriginalTitle, m.OriginalLanguage)
	}

	generalInfo := fmt.Sprintf(
		"[blue]Title:[-] %s\n[blue]Original Title:[-] %s\n[blue]Year:[-] %s\n[blue]Release Date:[-] %s",
		tview.Escape(m.Title), tview.Escape(original), strings.TrimSpace(YearLabel(m)), orDash(m.ReleaseDate),
	)

	ratingInfo := fmt.Sprintf(
		"[blue]Rating:[-] %s\n[blue]Votes:[-] %d\n[blue]Popularity:[-] %.1f\n[blue]Adult:[-] %s\n[blue]Poster:[-] %s\n[blue]TMDB ID:[-] %d",
		rating, m.VoteCount, m.Popularity, adult, PosterURL(imageBase, m.PosterPath, posterWidth), m.ID,
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s", generalInfo, ratingInfo, tview.Escape(overview))
}

// formatSelection renders the selected pane.
func formatSelection(m models.Movie, imageBase string, posterWidth int) string {
	return fmt.Sprintf("[green::b]%s[-:-:-] %s\n[gray]%s[-]",
		tview.Escape(m.Title), YearLabel(m), PosterURL(imageBase, m.PosterPath, posterWidth))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
