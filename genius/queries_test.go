package genius_test

import (
	"testing"

	"github.com/hot100db/hot100/genius"
	"github.com/stretchr/testify/assert"
)

func TestQueriesOrder(t *testing.T) {
	queries := genius.Queries("Umbrella (feat. Jay-Z)", "Rihanna Feat. Jay-Z")

	// The cleaned title with the primary artist always comes first.
	assert.Equal(t, "Umbrella Rihanna", queries[0])
	assert.Contains(t, queries, "Umbrella Rihanna Feat. Jay-Z")
	assert.Contains(t, queries, "Rihanna Umbrella")
	assert.Contains(t, queries, "Umbrella")

	// The original (uncleaned) title is retried with the primary artist.
	assert.Contains(t, queries, "Umbrella (feat. Jay-Z) Rihanna")
}

func TestQueriesAddArtistPunctuationVariant(t *testing.T) {
	queries := genius.Queries("Oh Boy", "Cam'ron Feat. Juelz Santana")
	assert.Contains(t, queries, "Oh Boy Camron")
	assert.Contains(t, queries, "Camron Oh Boy")
}

func TestQueriesDedupe(t *testing.T) {
	queries := genius.Queries("Hey Ya!", "Outkast")

	seen := map[string]int{}
	for _, q := range queries {
		seen[q]++
	}
	for q, n := range seen {
		assert.Equal(t, 1, n, q)
	}

	// A solo artist with a clean title produces no redundant variants
	// beyond the punctuation-simplified one.
	assert.Equal(t, "Hey Ya! Outkast", queries[0])
	assert.Contains(t, queries, "Hey Ya Outkast")
}
