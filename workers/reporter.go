package workers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hot100db/hot100/db"
)

// runReporter appends a progress snapshot to log.tsv once a minute so a
// long run can be watched (or graphed) from outside the process. It runs
// outside the worker engine and stops when its context is canceled, which
// Run does as soon as the pipeline workers drain, after one last snapshot.
func runReporter(ctx context.Context, database *db.DB) error {
	logfile, err := os.OpenFile("log.tsv", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	defer logfile.Close()

	snapshot := func() error {
		progress, err := gatherProgress(database)
		if err != nil {
			return fmt.Errorf("reporting error: %w", err)
		}

		fmt.Fprintf(logfile,
			"%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			time.Now().Format(time.DateTime),
			progress.Songs, progress.SongsEnriched,
			progress.Artists, progress.ArtistsClassified,
			progress.Credits, progress.SubgenreTags,
		)
		return nil
	}

	tick := time.NewTicker(time.Minute)
	defer tick.Stop()

	for {
		if err := snapshot(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return snapshot()
		case <-tick.C:
		}
	}
}

type progress struct {
	Songs, SongsEnriched       int
	Artists, ArtistsClassified int
	Credits, SubgenreTags      int
}

func gatherProgress(database *db.DB) (progress, error) {
	var p progress
	var err error
	if p.Songs, err = database.CountSongs(); err != nil {
		return p, err
	}
	if p.SongsEnriched, err = database.CountSongsEnriched(); err != nil {
		return p, err
	}
	if p.Artists, err = database.CountArtists(); err != nil {
		return p, err
	}
	if p.ArtistsClassified, err = database.CountArtistsClassified(); err != nil {
		return p, err
	}
	if p.Credits, err = database.CountCredits(); err != nil {
		return p, err
	}
	if p.SubgenreTags, err = database.CountSubgenreTags(); err != nil {
		return p, err
	}
	return p, nil
}
