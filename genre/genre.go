// Package genre turns per-source genre labels into one primary-genre
// assignment per artist, plus the subgenre tags that survive filtering.
package genre

import (
	"sort"
	"strings"
)

// Primaries is the closed set of top-level genres. Everything a provider
// returns maps onto one of these, or onto Other.
var Primaries = []string{
	"pop", "hip-hop", "rock", "alternative", "country",
	"electronic", "r&b", "latin", "folk", "jazz", Other,
}

const Other = "other"

// A Source is one external provider with its fixed reliability weight and
// its tie-break priority (lower is stronger). The weights are a business
// rule, audited against stored confidence values; they are deliberately not
// renormalized when a source is missing, so incomplete data reads as lower
// confidence rather than inflated confidence.
type Source struct {
	Name     string
	Weight   float64
	Priority int
}

var (
	// SourceSpotify is the algorithmic source.
	SourceSpotify = Source{Name: "spotify", Weight: 0.40, Priority: 0}

	// SourceLastFM is the community-tag source.
	SourceLastFM = Source{Name: "lastfm", Weight: 0.30, Priority: 1}

	// SourceChartmetric is the industry-data source.
	SourceChartmetric = Source{Name: "chartmetric", Weight: 0.20, Priority: 2}

	// SourceGenius is the fallback source: labels already on record in the
	// database from earlier enrichment.
	SourceGenius = Source{Name: "genius", Weight: 0.10, Priority: 3}
)

// A Vote is everything one source had to say about an artist.
type Vote struct {
	Source Source
	Labels []string
}

// An Assignment is the aggregated decision for one artist.
type Assignment struct {
	Primary    string
	Confidence float64

	// Sources lists the sources that voted for the winning genre, in
	// priority order.
	Sources []string
}

// Aggregate folds per-source votes into one assignment. Each source's full
// weight counts once toward every primary genre it mentioned, however many
// of its labels map there. The primary with the greatest accumulated weight
// wins; a tie goes to the genre backed by the higher-priority source.
// Confidence is the winning weight sum over 1.0, so with sources missing the
// ceiling drops and stays dropped.
func Aggregate(votes []Vote) Assignment {
	weights := map[string]float64{}
	backers := map[string][]Source{}

	for _, vote := range votes {
		seen := map[string]bool{}
		for _, label := range vote.Labels {
			primary := MapLabel(label)
			if seen[primary] {
				continue
			}
			seen[primary] = true
			weights[primary] += vote.Source.Weight
			backers[primary] = append(backers[primary], vote.Source)
		}
	}

	if len(weights) == 0 {
		return Assignment{Primary: Other}
	}

	// Candidates are considered in sorted name order, so a tie on both
	// weight and backer priority lands on the same primary every run.
	primaries := make([]string, 0, len(weights))
	for primary := range weights {
		primaries = append(primaries, primary)
	}
	sort.Strings(primaries)

	winner := primaries[0]
	for _, primary := range primaries[1:] {
		if weights[primary] > weights[winner] {
			winner = primary
		} else if weights[primary] == weights[winner] &&
			bestPriority(backers[primary]) < bestPriority(backers[winner]) {
			winner = primary
		}
	}

	contributing := backers[winner]
	sort.Slice(contributing, func(i, j int) bool {
		return contributing[i].Priority < contributing[j].Priority
	})
	names := make([]string, len(contributing))
	for i, source := range contributing {
		names[i] = source.Name
	}

	return Assignment{
		Primary:    winner,
		Confidence: weights[winner],
		Sources:    names,
	}
}

func bestPriority(sources []Source) int {
	best := int(^uint(0) >> 1)
	for _, source := range sources {
		if source.Priority < best {
			best = source.Priority
		}
	}
	return best
}

// MapLabel maps a raw provider label to its primary genre. Unknown labels
// fall through to a containment check against the mapping table before
// landing on Other.
func MapLabel(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		// An empty key would containment-match every table entry.
		return Other
	}
	if primary, ok := primaryMapping[key]; ok {
		return primary
	}
	// Longest known labels first, so "pop rock" resolves by "pop rock"
	// rather than by "pop".
	for _, detailed := range mappingKeys {
		if strings.Contains(key, detailed) || strings.Contains(detailed, key) {
			return primaryMapping[detailed]
		}
	}
	return Other
}
