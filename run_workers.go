package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hot100db/hot100/chartmetric"
	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/genius"
	"github.com/hot100db/hot100/lastfm"
	"github.com/hot100db/hot100/spotify"
	"github.com/hot100db/hot100/subcmd"
	"github.com/hot100db/hot100/workers"
)

func runWorkers(ctx context.Context, database *db.DB, args []string) error {
	subcmd := subcmd.New("run", "run enrichment and classification together until both queues drain\nrequires GENIUS_ACCESS_TOKEN; other source credentials are optional")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	token := os.Getenv("GENIUS_ACCESS_TOKEN")
	if token == "" {
		return fmt.Errorf("must set GENIUS_ACCESS_TOKEN")
	}

	clients := workers.Clients{Genius: genius.New(token)}
	if id, secret := os.Getenv("SPOTIFY_CLIENT_ID"), os.Getenv("SPOTIFY_CLIENT_SECRET"); id != "" && secret != "" {
		clients.Spotify = spotify.New(id, secret)
	}
	if key := os.Getenv("LASTFM_API_KEY"); key != "" {
		clients.LastFM = lastfm.New(key)
	}
	if refresh := os.Getenv("CHARTMETRIC_REFRESH_TOKEN"); refresh != "" {
		clients.Chartmetric = chartmetric.New(refresh)
	}

	return workers.Run(ctx, database, clients, []string{"enrich", "classify"})
}
