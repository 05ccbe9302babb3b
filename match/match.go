// Package match decides whether a search candidate is the same song as a
// chart entry, using edit-distance similarity with adaptive thresholds.
package match

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/hot100db/hot100/normalize"
)

// Acceptance requires the title to clear this floor in at least one variant
// form, whatever the artist similarity.
const titleFloor = 0.70

var lev = func() *metrics.Levenshtein {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	m.ReplaceCost = 1
	return m
}()

// Similarity returns an edit-distance similarity in [0, 1], case-insensitive.
func Similarity(a, b string) float64 {
	return strutil.Similarity(a, b, lev)
}

// A Target is the chart entry we're trying to place, with its title variants
// precomputed.
type Target struct {
	Title  normalize.TitleVariants
	Artist string
}

// NewTarget builds a Target from a raw chart title and artist string.
func NewTarget(title, artist string) Target {
	return Target{
		Title:  normalize.Title(title),
		Artist: normalize.PrimaryArtist(artist),
	}
}

// A Candidate is one search result considered for matching.
type Candidate struct {
	ID     int64
	Title  string
	Artist string
}

// A Decision explains how a candidate scored against a target.
type Decision struct {
	Accepted bool

	TitleSimilarity  float64
	ArtistSimilarity float64

	// SubtitleStripped is set when the title only cleared the floor after
	// removing a parenthetical subtitle. Those matches are held to the
	// stricter artist bar.
	SubtitleStripped bool
}

// Score computes the similarity of one candidate against the target and
// applies the acceptance policy:
//
//   - title >= 0.95: accept when artist >= 0.45
//   - title >= 0.85: accept when artist >= 0.60
//   - otherwise:     accept when artist >= 0.70
//
// A match that depends on stripping a parenthetical subtitle needs artist
// >= 0.85 no matter how good the title looks, because subtitle-less titles
// are generic enough to collide across artists.
func Score(target Target, candidate Candidate) Decision {
	candTitle := normalize.Title(candidate.Title)

	plain := Similarity(candTitle.Clean, target.Title.Clean)
	noFeat := Similarity(candTitle.NoFeature, target.Title.NoFeature)
	noArticle := Similarity(candTitle.NoArticle, target.Title.NoArticle)
	noParens := Similarity(candTitle.NoParens, target.Title.NoParens)

	best := max3(plain, noFeat, noArticle)
	artistSim := Similarity(candidate.Artist, target.Artist)

	d := Decision{ArtistSimilarity: artistSim}

	if noParens > best {
		if artistSim >= 0.85 {
			d.TitleSimilarity = noParens
			d.SubtitleStripped = true
		} else {
			d.TitleSimilarity = best
		}
	} else {
		d.TitleSimilarity = best
	}

	if d.TitleSimilarity < titleFloor {
		return d
	}

	threshold := 0.70
	switch {
	case d.SubtitleStripped:
		threshold = 0.85
	case d.TitleSimilarity >= 0.95:
		threshold = 0.45
	case d.TitleSimilarity >= 0.85:
		threshold = 0.60
	}

	d.Accepted = artistSim >= threshold
	return d
}

// First returns the first candidate, in the order given, that the policy
// accepts. Order is the search API's relevance order, so when several
// candidates would pass, the higher-ranked one wins; no global optimum is
// sought.
func First(target Target, candidates []Candidate) (Candidate, Decision, bool) {
	for _, candidate := range candidates {
		if d := Score(target, candidate); d.Accepted {
			return candidate, d, true
		}
	}
	return Candidate{}, Decision{}, false
}

func max3(a, b, c float64) float64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
