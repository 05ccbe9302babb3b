package main

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hot100db/hot100/db"
	"github.com/hot100db/hot100/subcmd"
)

func report(ctx context.Context, database *db.DB, args []string) error {
	subcmd := subcmd.New("report", "report pipeline progress")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	songs, err := database.CountSongs()
	if err != nil {
		return err
	}
	songsEnriched, err := database.CountSongsEnriched()
	if err != nil {
		return err
	}
	credits, err := database.CountCredits()
	if err != nil {
		return err
	}

	artists, err := database.CountArtists()
	if err != nil {
		return err
	}
	artistsClassified, err := database.CountArtistsClassified()
	if err != nil {
		return err
	}
	subgenres, err := database.CountSubgenreTags()
	if err != nil {
		return err
	}

	printSection("songs", songs, map[string]int{
		"enriched": songsEnriched,
	})
	printSection("artists", artists, map[string]int{
		"classified": artistsClassified,
	})
	humanPrinter.Printf("%d\tcredits\n", credits)
	humanPrinter.Printf("%d\tsubgenre tags\n", subgenres)

	return nil
}

var humanPrinter = message.NewPrinter(language.English)

func printSection(name string, known int, done map[string]int) {
	humanPrinter.Printf("%s\n", strings.ToUpper(name))
	humanPrinter.Printf("  %d\tknown\n", known)
	for k, v := range done {
		if known == 0 {
			humanPrinter.Printf("  %d\t%s\n", v, k)
			continue
		}
		humanPrinter.Printf("  %d\t%s (%.2f%%)\n", v, k, 100.0*float64(v)/float64(known))
	}
	humanPrinter.Printf("\n")
}
