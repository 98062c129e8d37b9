package services

import (
	"strings"
	"testing"

	"ymdb/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestYearLabel(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"1999-03-31", "1999 "},
		{"2024-12-01", "2024 "},
		{"", UnknownYear},
		{"31/03/1999", UnknownYear},
		{"1999", UnknownYear},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, YearLabel(models.Movie{ReleaseDate: tt.date}))
		})
	}
}

func TestRatingBandBoundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		band int
	}{
		{10, 0},
		{9.0, 0},
		{8.99, 1},
		{8.0, 1},
		{7.0, 2},
		{6.0, 3},
		{5.0, 4},
		{4.0, 5},
		{3.0, 6},
		{2.0, 7},
		{1.0, 8},
		{0.99, 9},
		{0, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.band, RatingBand(tt.avg), "vote average %v", tt.avg)
	}
}

func TestRatingHiddenBelowVoteThreshold(t *testing.T) {
	for _, avg := range []float64{0, 4.5, 9.9} {
		_, ok := Rating(models.Movie{VoteAverage: avg, VoteCount: MinVotesForRating - 1})
		assert.False(t, ok, "vote average %v", avg)
	}

	badge, ok := Rating(models.Movie{VoteAverage: 6.24, VoteCount: MinVotesForRating})
	require.True(t, ok)
	assert.Equal(t, 3, badge.Band)
	assert.Equal(t, 45, badge.Hue)
	assert.Equal(t, "6.2", badge.Value)
}

func TestRatingValueRoundsTiesUp(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{7.25, "7.3"},
		{8.25, "8.3"},
		{6.75, "6.8"},
		{7.35, "7.3"}, // stored just below 7.35
		{8.7, "8.7"},
		{6.24, "6.2"},
		{7.249, "7.2"},
		{10, "10.0"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		badge, ok := Rating(models.Movie{VoteAverage: tt.avg, VoteCount: 100})
		require.True(t, ok)
		assert.Equal(t, tt.want, badge.Value, "vote average %v", tt.avg)
	}
}

func TestRatingBadgeColor(t *testing.T) {
	best := RatingBadge{Band: 0, Hue: 0}.Color()
	worst := RatingBadge{Band: 9, Hue: 135}.Color()

	assert.NotEqual(t, best, worst)

	r, g, _ := best.RGB()
	assert.Greater(t, r, g, "unrotated badge should be red")
	r, g, _ = worst.RGB()
	assert.Greater(t, g, r, "fully rotated badge should lean green")
	assert.NotEqual(t, tcell.ColorDefault, best)
}

func TestAdultBadge(t *testing.T) {
	assert.Equal(t, AdultMarker, AdultBadge(models.Movie{Adult: true}))
	assert.Empty(t, AdultBadge(models.Movie{Adult: false}))
}

func TestOverviewSnippet(t *testing.T) {
	exact := strings.Repeat("a", OverviewMaxLength)
	long := strings.Repeat("b", OverviewMaxLength+1)
	accents := strings.Repeat("é", OverviewMaxLength+5)

	assert.Equal(t, NoOverview, OverviewSnippet(models.Movie{}))
	assert.Equal(t, NoOverview, OverviewSnippet(models.Movie{Overview: strPtr("")}))
	assert.Equal(t, "A hacker...", OverviewSnippet(models.Movie{Overview: strPtr("A hacker...")}))
	assert.Equal(t, exact, OverviewSnippet(models.Movie{Overview: &exact}))
	assert.Equal(t, long[:OverviewMaxLength]+"...", OverviewSnippet(models.Movie{Overview: &long}))
	assert.Equal(t, strings.Repeat("é", OverviewMaxLength)+"...", OverviewSnippet(models.Movie{Overview: &accents}))
}

func TestMatrixRow(t *testing.T) {
	m := models.Movie{
		ID:          1,
		Title:       "The Matrix",
		ReleaseDate: "1999-03-31",
		VoteAverage: 8.7,
		VoteCount:   25,
		Adult:       false,
		Overview:    strPtr("A hacker..."),
	}

	assert.Equal(t, "1999 ", YearLabel(m))
	badge, ok := Rating(m)
	require.True(t, ok)
	assert.Equal(t, 1, badge.Band)
	assert.Equal(t, 15, badge.Hue)
	assert.Equal(t, "8.7", badge.Value)
	assert.Empty(t, AdultBadge(m))
}

func TestPosterURL(t *testing.T) {
	base := "https://image.tmdb.org/t/p"

	assert.Equal(t, "https://image.tmdb.org/t/p/92px/abc.jpg", PosterURL(base, strPtr("/abc.jpg"), 92))
	assert.Equal(t, PosterPlaceholder, PosterURL(base, nil, 92))
	assert.Equal(t, PosterPlaceholder, PosterURL(base, strPtr(""), 92))
}

func TestSelectionStore(t *testing.T) {
	store := NewSelectionStore()

	_, ok := store.Selected()
	assert.False(t, ok)

	var notified []int
	store.Subscribe(func(m models.Movie) { notified = append(notified, m.ID) })

	store.SetSelectedMovie(models.Movie{ID: 603, Title: "The Matrix"})
	store.SetSelectedMovie(models.Movie{ID: 604, Title: "The Matrix Reloaded"})

	got, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, 604, got.ID)
	assert.Equal(t, []int{603, 604}, notified)
}
