package services

import (
	"fmt"
	"math/big"
	"strconv"
	"time"
	"unicode/utf8"

	"ymdb/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MinVotesForRating hides the rating badge for movies with too few votes.
	MinVotesForRating = 20

	// OverviewMaxLength is the snippet length, in runes.
	OverviewMaxLength = 140

	NoOverview  = "No overview available"
	UnknownYear = "Unknown "
	AdultMarker = "🔞"

	hueStep = 15
)

// ratingBands holds the lower bound of each hue band, best first.
// An average below the last bound falls into band len(ratingBands).
var ratingBands = []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}

// tomatoBase is the badge color at hue rotation 0.
var tomatoBase = colorful.Color{R: 0.89, G: 0.18, B: 0.11}

// RatingBadge is the derived rating indicator of a movie row.
type RatingBadge struct {
	Band  int    // 0 (best) to 9
	Hue   int    // degrees of hue rotation applied to the base color
	Value string // average rounded to one decimal
}

// YearLabel returns the release year followed by a space.
func YearLabel(m models.Movie) string {
	t, err := time.Parse(time.DateOnly, m.ReleaseDate)
	if err != nil {
		return UnknownYear
	}
	return strconv.Itoa(t.Year()) + " "
}

// RatingBand maps a vote average to its hue band. Bounds are inclusive.
func RatingBand(voteAverage float64) int {
	for i, bound := range ratingBands {
		if voteAverage >= bound {
			return i
		}
	}
	return len(ratingBands)
}

// Rating returns the rating badge, or false when the movie has too few votes.
func Rating(m models.Movie) (RatingBadge, bool) {
	if m.VoteCount < MinVotesForRating {
		return RatingBadge{}, false
	}
	band := RatingBand(m.VoteAverage)
	return RatingBadge{
		Band:  band,
		Hue:   band * hueStep,
		Value: formatVoteAverage(m.VoteAverage),
	}, true
}

// formatVoteAverage rounds to one decimal, taking the larger value on an exact
// tie (7.25 gives "7.3"). The product is computed exactly so 7.35, which is
// stored just below the tie, still gives "7.3".
func formatVoteAverage(v float64) string {
	scaled := new(big.Float).SetPrec(128).SetFloat64(v)
	scaled.Mul(scaled, big.NewFloat(10)).Add(scaled, big.NewFloat(0.5))
	tenths, _ := scaled.Int64()
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}

// Color rotates the base badge color by the badge hue.
func (b RatingBadge) Color() tcell.Color {
	h, s, v := tomatoBase.Hsv()
	c := colorful.Hsv(h+float64(b.Hue), s, v).Clamped()
	r, g, bl := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// AdultBadge returns the adult content marker, or an empty string.
func AdultBadge(m models.Movie) string {
	if m.Adult {
		return AdultMarker
	}
	return ""
}

// OverviewSnippet truncates the overview to OverviewMaxLength runes.
func OverviewSnippet(m models.Movie) string {
	if m.Overview == nil || *m.Overview == "" {
		return NoOverview
	}
	overview := *m.Overview
	if utf8.RuneCountInString(overview) <= OverviewMaxLength {
		return overview
	}
	return string([]rune(overview)[:OverviewMaxLength]) + "..."
}
