package billboard_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"github.com/hot100db/hot100/billboard"
)

const chartPage = `
<html><body>
<div class="o-chart-results-list-row-container">
  <span class="c-label">1</span>
  <div><h3 id="title-of-a-story"> Blinding Lights </h3><span class="c-label">The Weeknd</span></div>
</div>
<div class="o-chart-results-list-row-container">
  <span class="c-label">2</span>
  <div><h3 id="title-of-a-story">Circles</h3><span class="c-label">Post Malone</span></div>
</div>
<div class="o-chart-results-list-row-container">
  <span class="c-label">NEW</span>
  <div><h3 id="title-of-a-story">Adore You</h3><span class="c-label">Harry Styles</span></div>
</div>
</body></html>`

func TestParseChart(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(chartPage))
	assert.NoError(t, err)

	entries, err := billboard.ParseChart(doc, 2020)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, int64(1), entries[0].Rank)
	assert.Equal(t, "Blinding Lights", entries[0].Title)
	assert.Equal(t, "The Weeknd", entries[0].Artist)
	assert.Equal(t, int64(2020), entries[0].Year)

	// An unparseable rank label falls back to list position.
	assert.Equal(t, int64(3), entries[2].Rank)
	assert.Equal(t, "Adore You", entries[2].Title)
}

func TestParseChartEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	assert.NoError(t, err)

	_, err = billboard.ParseChart(doc, 2020)
	assert.Error(t, err)
}
