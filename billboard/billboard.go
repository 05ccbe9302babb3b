// Package billboard scrapes year-end Hot 100 chart pages into chart
// entries.
package billboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hot100db/hot100/data"
	"github.com/hot100db/hot100/normalize"
	"github.com/hot100db/hot100/request"
)

const chartURLFormat = "https://www.billboard.com/charts/year-end/%d/hot-100-songs/"

// FetchYear requests the year-end chart page for one year and parses its
// entries.
func FetchYear(year int64) ([]data.ChartEntry, error) {
	doc, err := request.FetchHTML(fmt.Sprintf(chartURLFormat, year))
	if err != nil {
		return nil, fmt.Errorf("error fetching year-end chart for %d: %w", year, err)
	}
	return ParseChart(doc, year)
}

// ParseChart extracts ranked (title, artist) rows from a year-end chart
// page. Ranks are positional: the page lists entries best-first.
func ParseChart(doc *goquery.Document, year int64) ([]data.ChartEntry, error) {
	var entries []data.ChartEntry

	doc.Find("div.o-chart-results-list-row-container").Each(func(i int, sel *goquery.Selection) {
		row := chartRow{sel}
		title := row.Title()
		artist := row.Artist()
		if title == "" || artist == "" {
			return
		}
		entries = append(entries, data.ChartEntry{
			Rank:   row.Rank(int64(i) + 1),
			Title:  title,
			Artist: artist,
			Year:   year,
		})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no chart entries found for %d; page layout may have changed", year)
	}
	return entries, nil
}

// A chartRow is the container div for a single chart entry. It has methods
// for looking into that div and extracting information.
type chartRow struct{ *goquery.Selection }

func (row chartRow) Title() string {
	return normalize.Collapse(row.Find("h3#title-of-a-story").First().Text())
}

func (row chartRow) Artist() string {
	return normalize.Collapse(row.Find("h3#title-of-a-story").First().Parent().Find("span.c-label").First().Text())
}

// Rank parses the printed rank label, falling back to the positional rank
// when the label isn't a number.
func (row chartRow) Rank(fallback int64) int64 {
	label := strings.TrimSpace(row.Find("span.c-label").First().Text())
	if rank, err := strconv.ParseInt(label, 10, 64); err == nil && rank > 0 {
		return rank
	}
	return fallback
}
