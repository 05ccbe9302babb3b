package genre_test

import (
	"testing"

	"github.com/hot100db/hot100/genre"
	"github.com/stretchr/testify/assert"
)

func TestMapLabel(t *testing.T) {
	assert.Equal(t, "hip-hop", genre.MapLabel("trap"))
	assert.Equal(t, "hip-hop", genre.MapLabel("Conscious Hip Hop"))
	assert.Equal(t, "pop", genre.MapLabel("dance pop"))
	assert.Equal(t, "rock", genre.MapLabel("heavy metal"))
	assert.Equal(t, genre.Other, genre.MapLabel("whale song field recordings"))
}

func TestMapLabelBlank(t *testing.T) {
	// Blank labels must not containment-match their way into a real genre.
	assert.Equal(t, genre.Other, genre.MapLabel(""))
	assert.Equal(t, genre.Other, genre.MapLabel("   "))
}

func TestMapLabelPrefersLongestContainment(t *testing.T) {
	// "pop rock" must resolve through the "pop rock" entry, not through
	// a shorter "pop" containment hit.
	assert.Equal(t, "rock", genre.MapLabel("norwegian pop rock"))
}

func TestAggregateWeightsCountOncePerSource(t *testing.T) {
	// Three hip-hop labels from one source still contribute that source's
	// weight once.
	assignment := genre.Aggregate([]genre.Vote{
		{Source: genre.SourceSpotify, Labels: []string{"trap", "hip hop", "conscious hip hop"}},
		{Source: genre.SourceLastFM, Labels: []string{"rap"}},
	})

	assert.Equal(t, "hip-hop", assignment.Primary)
	assert.InDelta(t, 0.70, assignment.Confidence, 1e-9)
	assert.Equal(t, []string{"spotify", "lastfm"}, assignment.Sources)
}

func TestAggregateNeverRenormalizes(t *testing.T) {
	// One agreeing source caps confidence at its own weight no matter how
	// many sources were configured.
	assignment := genre.Aggregate([]genre.Vote{
		{Source: genre.SourceLastFM, Labels: []string{"country pop"}},
	})

	assert.Equal(t, "country", assignment.Primary)
	assert.InDelta(t, 0.30, assignment.Confidence, 1e-9)
}

func TestAggregateTieBreaksBySourcePriority(t *testing.T) {
	// pop and rock both end at 0.30; lastfm backs pop, chartmetric and
	// genius back rock. The higher-priority backer wins the tie.
	assignment := genre.Aggregate([]genre.Vote{
		{Source: genre.SourceLastFM, Labels: []string{"dance pop"}},
		{Source: genre.SourceChartmetric, Labels: []string{"hard rock"}},
		{Source: genre.SourceGenius, Labels: []string{"classic rock"}},
	})

	assert.Equal(t, "pop", assignment.Primary)
	assert.InDelta(t, 0.30, assignment.Confidence, 1e-9)
}

func TestAggregateFullTieIsStable(t *testing.T) {
	// One source whose labels span two primaries ties on weight and on
	// backer priority. The outcome must not depend on map iteration order:
	// every run picks the lexically first primary.
	votes := []genre.Vote{
		{Source: genre.SourceSpotify, Labels: []string{"dance pop", "hard rock"}},
	}

	for i := 0; i < 200; i++ {
		assignment := genre.Aggregate(votes)
		assert.Equal(t, "pop", assignment.Primary, "iteration %d", i)
	}
}

func TestAggregateEmptyVotes(t *testing.T) {
	assignment := genre.Aggregate(nil)
	assert.Equal(t, genre.Other, assignment.Primary)
	assert.Equal(t, 0.0, assignment.Confidence)
	assert.Empty(t, assignment.Sources)
}

func TestExtractFiltersGenreLevelLabels(t *testing.T) {
	filter := genre.NewFilter()
	votes := []genre.Vote{
		{Source: genre.SourceSpotify, Labels: []string{"neo soul", "soul", "r&b"}},
	}
	assignment := genre.Assignment{Primary: "r&b"}

	subs := filter.Extract(votes, assignment)
	assert.Len(t, subs, 1)
	assert.Equal(t, "neo soul", subs[0].Label)
	assert.Equal(t, "r&b", subs[0].Parent)
	assert.InDelta(t, 0.40, subs[0].Confidence, 1e-9)
	assert.Equal(t, "spotify", subs[0].Source)
}

func TestExtractDedupesAcrossSources(t *testing.T) {
	filter := genre.NewFilter()
	votes := []genre.Vote{
		{Source: genre.SourceSpotify, Labels: []string{"Trap"}},
		{Source: genre.SourceLastFM, Labels: []string{"trap", "dirty south"}},
	}
	assignment := genre.Assignment{Primary: "hip-hop"}

	subs := filter.Extract(votes, assignment)
	assert.Len(t, subs, 2)

	// The earlier (stronger) source's tag is the one kept.
	assert.Equal(t, "trap", subs[0].Label)
	assert.Equal(t, "spotify", subs[0].Source)
	assert.Equal(t, "dirty south", subs[1].Label)
}

func TestFilterExtraNames(t *testing.T) {
	filter := genre.NewFilter("Neo Soul")
	assert.True(t, filter.Denied("neo soul"))
	assert.True(t, filter.Denied("Hip Hop"))
	assert.False(t, filter.Denied("chopped and screwed"))
}
