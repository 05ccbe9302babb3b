package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hot100db/hot100/chartmetric"
	"github.com/hot100db/hot100/classify"
	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/lastfm"
	"github.com/hot100db/hot100/setflag"
	"github.com/hot100db/hot100/spotify"
	"github.com/hot100db/hot100/subcmd"
)

func classifyArtists(ctx context.Context, database *db.DB, args []string) error {
	sources := setflag.New("spotify", "lastfm", "chartmetric", "genius")

	subcmd := subcmd.New("classify", "assign genres to imported artists\n"+
		"uses whichever sources have credentials set: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET,\n"+
		"LASTFM_API_KEY, CHARTMETRIC_REFRESH_TOKEN; the 'genius' source reads labels stored by enrich")
	subcmd.Var(sources, "sources", "comma-separated subset of spotify,lastfm,chartmetric,genius (default all)")
	var (
		limit = subcmd.Int("limit", 0, "stop after this many artists (0 = no limit)")
		force = subcmd.Bool("force", false, "re-classify artists that already have a genre")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	c := classify.New(database)
	c.Limit = *limit
	c.Force = *force

	if sources.Has("spotify") {
		id, secret := os.Getenv("SPOTIFY_CLIENT_ID"), os.Getenv("SPOTIFY_CLIENT_SECRET")
		if id != "" && secret != "" {
			c.Spotify = spotify.New(id, secret)
		}
	}
	if sources.Has("lastfm") {
		if key := os.Getenv("LASTFM_API_KEY"); key != "" {
			c.LastFM = lastfm.New(key)
		}
	}
	if sources.Has("chartmetric") {
		if token := os.Getenv("CHARTMETRIC_REFRESH_TOKEN"); token != "" {
			c.Chartmetric = chartmetric.New(token)
		}
	}
	c.UseStored = sources.Has("genius")

	if c.Spotify == nil && c.LastFM == nil && c.Chartmetric == nil && !c.UseStored {
		return fmt.Errorf("no usable genre sources; set credentials or pick different -sources")
	}

	_, err := c.Run(ctx)
	return err
}
