// Package classify runs multi-source genre classification: per artist,
// gather labels from whichever sources are configured and reachable,
// aggregate them under fixed weights, and persist the assignment plus the
// surviving subgenre tags.
package classify

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/hot100db/hot100/chartmetric"
	"github.com/hot100db/hot100/data"
	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/genre"
	"github.com/hot100db/hot100/lastfm"
	"github.com/hot100db/hot100/normalize"
	"github.com/hot100db/hot100/spotify"
	"gorm.io/gorm"
)

// errAllSourcesFailed means not one source answered, so there is nothing to
// aggregate. The artist stays unclassified for a later run rather than
// being stamped with a zero-signal "other".
var errAllSourcesFailed = errors.New("all genre sources failed")

// Community tags below this confidence are noise, not consensus.
const minTagConfidence = 0.4

func New(database *db.DB) *Classifier {
	return &Classifier{db: database}
}

type Classifier struct {
	db *db.DB

	// Each source is optional; a nil client is simply an absent source and
	// lowers the achievable confidence rather than failing the run.
	Spotify     *spotify.Client
	LastFM      *lastfm.Client
	Chartmetric *chartmetric.Client

	// UseStored enables the fallback source: labels already stored during
	// enrichment.
	UseStored bool

	Limit int
	Force bool
}

// Stats counts what one Run attempted and how each artist came out.
type Stats struct {
	Attempted, Classified, Failed int
}

// Run classifies artists until the batch is exhausted. A failing artist is
// logged and skipped.
func (c *Classifier) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	artists, err := c.db.ArtistsToClassify(c.Limit, c.Force)
	if err != nil {
		return stats, err
	}
	log.Printf("classifying %d artists", len(artists))
	stats.Attempted = len(artists)

	assigned, err := c.db.AssignedGenreNames()
	if err != nil {
		return stats, err
	}
	filter := genre.NewFilter(assigned...)

	for _, artist := range artists {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		err := c.classifyArtist(ctx, artist, filter)
		switch {
		case err == nil:
			stats.Classified++
		case errors.Is(err, context.Canceled):
			return stats, err
		default:
			stats.Failed++
			log.Printf("error classifying %s: %v", artist.Name, err)
		}
	}

	log.Printf("classified %d artists (%d failed)", stats.Classified, stats.Failed)
	return stats, nil
}

// votes gathers one Vote per available source, in priority order. A source
// that errors is logged and dropped; its weight is simply missing from the
// aggregation, which is the conservative-confidence rule working as
// intended.
func (c *Classifier) votes(ctx context.Context, name string) ([]genre.Vote, error) {
	lookup := normalize.PrimaryArtist(name)
	var votes []genre.Vote
	sourcesTried, sourcesFailed := 0, 0

	if c.Spotify != nil {
		sourcesTried++
		if labels, err := c.Spotify.FetchArtistGenres(ctx, lookup); err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			sourcesFailed++
			log.Printf("spotify unavailable for %s: %v", lookup, err)
		} else if len(labels) > 0 {
			votes = append(votes, genre.Vote{Source: genre.SourceSpotify, Labels: labels})
		}
	}

	if c.LastFM != nil {
		sourcesTried++
		if tags, err := c.LastFM.FetchArtistTags(ctx, lookup); err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			sourcesFailed++
			log.Printf("lastfm unavailable for %s: %v", lookup, err)
		} else {
			var labels []string
			for _, tag := range tags {
				if tag.Confidence >= minTagConfidence {
					labels = append(labels, tag.Name)
				}
			}
			if len(labels) > 0 {
				votes = append(votes, genre.Vote{Source: genre.SourceLastFM, Labels: labels})
			}
		}
	}

	if c.Chartmetric != nil {
		sourcesTried++
		if labels, err := c.Chartmetric.FetchArtistGenres(ctx, lookup); err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			sourcesFailed++
			log.Printf("chartmetric unavailable for %s: %v", lookup, err)
		} else if len(labels) > 0 {
			votes = append(votes, genre.Vote{Source: genre.SourceChartmetric, Labels: labels})
		}
	}

	if c.UseStored {
		sourcesTried++
		if labels, err := c.db.ArtistTags(name); err != nil {
			sourcesFailed++
			log.Printf("stored tags unavailable for %s: %v", name, err)
		} else if len(labels) > 0 {
			votes = append(votes, genre.Vote{Source: genre.SourceGenius, Labels: labels})
		}
	}

	if sourcesTried > 0 && sourcesFailed == sourcesTried {
		return nil, errAllSourcesFailed
	}
	return votes, nil
}

func (c *Classifier) classifyArtist(ctx context.Context, artist data.Artist, filter *genre.Filter) error {
	votes, err := c.votes(ctx, artist.Name)
	if err != nil {
		return err
	}

	assignment := genre.Aggregate(votes)
	subgenres := filter.Extract(votes, assignment)

	songs, err := c.db.SongsByArtist(artist.Name)
	if err != nil {
		return err
	}
	songIDs := make([]int64, len(songs))
	for i, song := range songs {
		songIDs[i] = song.ID
	}

	log.Printf("%s: %s (%.2f via %v), %d subgenres across %d songs",
		artist.Name, assignment.Primary, assignment.Confidence,
		assignment.Sources, len(subgenres), len(songs))

	return c.db.Transaction(ctx, func(tx *gorm.DB) error {
		row := data.GenreAssignment{
			ArtistID:     artist.ID,
			PrimaryGenre: assignment.Primary,
			Confidence:   assignment.Confidence,
			Sources:      joinSources(assignment.Sources),
		}
		if err := c.db.ReplaceAssignment(tx, &row); err != nil {
			return err
		}

		if err := c.db.ClearSubgenreTags(tx, songIDs); err != nil {
			return err
		}
		for _, songID := range songIDs {
			for _, sub := range subgenres {
				tag := data.SubgenreTag{
					SongID:      songID,
					Label:       sub.Label,
					ParentGenre: sub.Parent,
					Confidence:  sub.Confidence,
					Source:      sub.Source,
				}
				if err := c.db.InsertSubgenreTag(tx, &tag); err != nil {
					return err
				}
			}
		}

		return c.db.MarkArtistClassified(tx, artist.ID)
	})
}

func joinSources(sources []string) string {
	return strings.Join(sources, ",")
}
