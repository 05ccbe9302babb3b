package genius

import (
	"context"

	"github.com/hot100db/hot100/match"
	"github.com/hot100db/hot100/normalize"
)

// Queries builds the search formulations for a title/artist pair, in fixed
// priority order. The first formulation is the one that finds the song most
// often; the later ones recover titles the earlier ones miss.
func Queries(title, artist string) []string {
	clean := normalize.CleanTitle(title)
	mainArtist := normalize.PrimaryArtist(artist)
	mainNoPunct := normalize.StripArtistPunctuation(mainArtist)
	simplified := normalize.StripPunctuation(clean)

	queries := []string{
		clean + " " + mainArtist,
	}
	if artist != mainArtist {
		queries = append(queries, clean+" "+artist)
	}
	queries = append(queries,
		mainArtist+" "+clean,
		clean,
	)
	if title != clean {
		queries = append(queries, title+" "+mainArtist)
	}
	if simplified != clean {
		queries = append(queries, simplified+" "+mainArtist)
	}
	if mainNoPunct != mainArtist {
		queries = append(queries,
			clean+" "+mainNoPunct,
			mainNoPunct+" "+clean,
		)
	}

	seen := make(map[string]struct{}, len(queries))
	var unique []string
	for _, query := range queries {
		if _, dup := seen[query]; dup {
			continue
		}
		seen[query] = struct{}{}
		unique = append(unique, query)
	}
	return unique
}

// FindCandidates tries each query formulation in order and returns up to n
// candidates from the first formulation that produces any, unless exhaustive
// is set, in which case every formulation runs and results are pooled in
// order, deduplicated by id.
//
// A formulation that fails with ErrUnavailable is skipped; FindCandidates
// only returns ErrUnavailable when every formulation failed.
func (c *Client) FindCandidates(ctx context.Context, title, artist string, n int, exhaustive bool) ([]match.Candidate, error) {
	var pooled []match.Candidate
	seen := make(map[int64]struct{})
	allFailed := true

	for _, query := range Queries(title, artist) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates, err := c.Search(ctx, query, n)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}
		allFailed = false

		for _, candidate := range candidates {
			if _, dup := seen[candidate.ID]; dup {
				continue
			}
			seen[candidate.ID] = struct{}{}
			pooled = append(pooled, candidate)
		}

		if !exhaustive && len(pooled) > 0 {
			break
		}
		if len(pooled) >= n {
			break
		}
	}

	if allFailed {
		return nil, ErrUnavailable
	}
	if len(pooled) > n {
		pooled = pooled[:n]
	}
	return pooled, nil
}
