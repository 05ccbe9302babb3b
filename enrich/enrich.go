// Package enrich runs the credit-resolution batch: for each song still
// needing enrichment, find candidates, fuzzy-match one, pull its credits,
// and persist them in one transaction.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hot100db/hot100/credits"
	"github.com/hot100db/hot100/data"
	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/genius"
	"github.com/hot100db/hot100/match"
	"gorm.io/gorm"
)

// ErrNoMatch means search produced candidates but none cleared the fuzzy
// bar. The song stays un-enriched; a later run with better data may do
// better.
var ErrNoMatch = errors.New("no acceptable match")

func New(database *db.DB, client *genius.Client) *Enricher {
	return &Enricher{
		db:            database,
		genius:        client,
		MaxCandidates: 15,
	}
}

type Enricher struct {
	db     *db.DB
	genius *genius.Client

	// Year range filter; zero means unbounded on that side.
	From, To int64

	// Limit caps how many songs one run attempts; zero means all.
	Limit int

	// Force re-resolves already-enriched songs, overwriting their credits.
	Force bool

	// Exhaustive runs every query formulation instead of stopping at the
	// first productive one.
	Exhaustive bool

	MaxCandidates int
}

// Stats counts what one Run attempted and how each song came out.
type Stats struct {
	Attempted, Enriched, Unmatched, Failed int
}

// Run processes songs until the batch is exhausted. A failing song is
// logged and skipped; it never stops the batch. Run only returns an error
// on cancellation or when the database itself is gone.
func (e *Enricher) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	songs, err := e.db.SongsToEnrich(e.From, e.To, e.Limit, e.Force)
	if err != nil {
		return stats, err
	}
	log.Printf("enriching %d songs", len(songs))
	stats.Attempted = len(songs)

	idx := credits.NewIndex()
	for _, song := range songs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		err := e.enrichSong(ctx, song, idx)
		switch {
		case err == nil:
			stats.Enriched++
		case errors.Is(err, context.Canceled):
			return stats, err
		case errors.Is(err, ErrNoMatch):
			stats.Unmatched++
			log.Printf("no match for '%s' by %s", song.Title, song.Artist)
		default:
			stats.Failed++
			log.Printf("error enriching '%s' by %s: %v", song.Title, song.Artist, err)
		}
	}

	log.Printf("enriched %d songs (%d unmatched, %d failed)", stats.Enriched, stats.Unmatched, stats.Failed)
	return stats, nil
}

func (e *Enricher) enrichSong(ctx context.Context, song data.Song, idx *credits.Index) error {
	candidates, err := e.genius.FindCandidates(ctx, song.Title, song.Artist, e.MaxCandidates, e.Exhaustive)
	if err != nil {
		if errors.Is(err, genius.ErrUnavailable) {
			// Degraded search means zero candidates, not a crash.
			return fmt.Errorf("%w: %v", ErrNoMatch, err)
		}
		return err
	}

	target := match.NewTarget(song.Title, song.Artist)
	candidate, decision, ok := match.First(target, candidates)
	if !ok {
		return ErrNoMatch
	}
	log.Printf("matched '%s' by %s -> '%s' by %s (title %.2f, artist %.2f)",
		song.Title, song.Artist, candidate.Title, candidate.Artist,
		decision.TitleSimilarity, decision.ArtistSimilarity)

	full, err := e.genius.FetchSong(ctx, candidate.ID)
	if err != nil {
		return err
	}

	if !e.Force {
		known, err := e.db.KnownCredits(song.ID)
		if err != nil {
			return err
		}
		for _, credit := range known {
			idx.Add(song.ID, credit.NormalizedName, credit.Role)
		}
	}

	resolved := credits.Resolve(song.ID, full, idx)

	return e.db.Transaction(ctx, func(tx *gorm.DB) error {
		if e.Force {
			if err := e.db.ClearSongEnrichment(tx, song.ID); err != nil {
				return err
			}
		}
		for i := range resolved {
			if err := e.db.InsertCredit(tx, &resolved[i]); err != nil {
				return err
			}
		}
		for _, label := range full.Tags {
			tag := data.SongTag{SongID: song.ID, Label: label, Source: "genius"}
			if err := e.db.InsertSongTag(tx, &tag); err != nil {
				return err
			}
		}
		return e.db.MarkSongEnriched(tx, song.ID, candidate.ID)
	})
}
