package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/enrich"
	"github.com/hot100db/hot100/genius"
	"github.com/hot100db/hot100/subcmd"
)

func enrichSongs(ctx context.Context, database *db.DB, args []string) error {
	subcmd := subcmd.New("enrich", "resolve contributor credits for imported songs\nrequires GENIUS_ACCESS_TOKEN")
	var (
		year       = subcmd.Int64("year", 0, "only songs from this chart year")
		from       = subcmd.Int64("from", 0, "only songs from this chart year onward")
		to         = subcmd.Int64("to", 0, "only songs up to this chart year")
		limit      = subcmd.Int("limit", 0, "stop after this many songs (0 = no limit)")
		force      = subcmd.Bool("force", false, "re-enrich songs that already have credits")
		exhaustive = subcmd.Bool("exhaustive", false, "run every search formulation instead of stopping at the first productive one")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	token := os.Getenv("GENIUS_ACCESS_TOKEN")
	if token == "" {
		return fmt.Errorf("must set GENIUS_ACCESS_TOKEN")
	}

	e := enrich.New(database, genius.New(token))
	e.Limit = *limit
	e.Force = *force
	e.Exhaustive = *exhaustive
	if *year != 0 {
		e.From, e.To = *year, *year
	} else {
		e.From, e.To = *from, *to
	}

	_, err := e.Run(ctx)
	return err
}
