package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/hot100db/hot100/billboard"
	"github.com/hot100db/hot100/data"
	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/normalize"
	"github.com/hot100db/hot100/subcmd"
)

func importCharts(ctx context.Context, database *db.DB, args []string) error {
	subcmd := subcmd.New("import", "scrape year-end Hot 100 charts into the database").
		SetArg("years", "string", "a year like '2003' or a range like '2000-2005'")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if subcmd.NArg() != 1 {
		subcmd.Usage()
		return fmt.Errorf("import needs a year argument")
	}

	from, to, err := parseYears(subcmd.Arg(0))
	if err != nil {
		return err
	}

	for year := from; year <= to; year++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := importYear(database, year); err != nil {
			return err
		}
	}
	return nil
}

func importYear(database *db.DB, year int64) error {
	entries, err := billboard.FetchYear(year)
	if err != nil {
		return err
	}

	artists := map[string]struct{}{}
	for _, entry := range entries {
		song := data.Song{
			Title:   entry.Title,
			Artist:  entry.Artist,
			Year:    entry.Year,
			PeakPos: entry.Rank,
		}
		if err := database.InsertSong(&song); err != nil {
			return err
		}

		// The credited artist string may be a collaboration; the artists
		// table tracks primary artists only.
		name := normalize.PrimaryArtist(entry.Artist)
		if name == "" {
			continue
		}
		artists[name] = struct{}{}
		if err := database.InsertArtist(&data.Artist{Name: name}); err != nil {
			return err
		}
	}

	log.Printf("%d: imported %d songs, %d artists", year, len(entries), len(artists))
	return nil
}

func parseYears(arg string) (int64, int64, error) {
	parse := func(s string) (int64, error) {
		year, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || year < 1950 || year > 2100 {
			return 0, fmt.Errorf("bad year '%s'", s)
		}
		return year, nil
	}

	if from, to, isRange := strings.Cut(arg, "-"); isRange {
		start, err := parse(from)
		if err != nil {
			return 0, 0, err
		}
		end, err := parse(to)
		if err != nil {
			return 0, 0, err
		}
		if end < start {
			return 0, 0, fmt.Errorf("bad year range '%s'", arg)
		}
		return start, end, nil
	}

	year, err := parse(arg)
	if err != nil {
		return 0, 0, err
	}
	return year, year, nil
}
