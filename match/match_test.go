package match_test

import (
	"testing"

	"github.com/hot100db/hot100/match"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, match.Similarity("Hey Ya!", "hey ya!"))
	assert.Greater(t, match.Similarity("Crazy in Love", "Crazy in Love (feat. Jay-Z)"), 0.0)
	assert.Less(t, match.Similarity("Toxic", "Yeah!"), 0.3)
}

func TestScoreExactMatch(t *testing.T) {
	target := match.NewTarget("In Da Club", "50 Cent")
	d := match.Score(target, match.Candidate{Title: "In Da Club", Artist: "50 Cent"})
	assert.True(t, d.Accepted)
	assert.Equal(t, 1.0, d.TitleSimilarity)
	assert.Equal(t, 1.0, d.ArtistSimilarity)
}

func TestScorePerfectTitleTakesWeakArtist(t *testing.T) {
	// A chart credits every collaborator; provider credits the lead. With a
	// near-perfect title, modest artist overlap is enough.
	target := match.NewTarget("Umbrella", "Rihanna Feat. Jay-Z")
	d := match.Score(target, match.Candidate{Title: "Umbrella", Artist: "Rihanna"})
	assert.True(t, d.Accepted)

	weak := match.Score(target, match.Candidate{Title: "Umbrella", Artist: "The Baseballs"})
	assert.False(t, weak.Accepted)
}

func TestScoreMediocreTitleNeedsStrongArtist(t *testing.T) {
	target := match.NewTarget("Hot in Herre", "Nelly")
	d := match.Score(target, match.Candidate{Title: "Hot in Here", Artist: "Nelly"})
	assert.True(t, d.Accepted)
}

func TestScoreRejectsBelowTitleFloor(t *testing.T) {
	target := match.NewTarget("Yeah!", "Usher")
	d := match.Score(target, match.Candidate{Title: "Confessions Part II", Artist: "Usher"})
	assert.False(t, d.Accepted)
	assert.Equal(t, 1.0, d.ArtistSimilarity)
}

func TestScoreSubtitleStrippedNeedsStrongArtist(t *testing.T) {
	target := match.NewTarget("Young'n (Holla Back)", "Fabolous")

	d := match.Score(target, match.Candidate{Title: "Young'n", Artist: "Fabolous"})
	assert.True(t, d.Accepted)
	assert.True(t, d.SubtitleStripped)

	// Same title shape, wrong artist: the stripped-subtitle match may not
	// fall back to the lenient thresholds.
	wrong := match.Score(target, match.Candidate{Title: "Young'n", Artist: "Fabrizio"})
	assert.False(t, wrong.Accepted)
}

func TestFirstTakesSearchOrder(t *testing.T) {
	target := match.NewTarget("Irreplaceable", "Beyonce")
	candidates := []match.Candidate{
		{ID: 1, Title: "Irreplaceable (Live)", Artist: "Someone Else"},
		{ID: 2, Title: "Irreplaceable", Artist: "Beyonce"},
		{ID: 3, Title: "Irreplaceable", Artist: "Beyonce"},
	}

	got, d, ok := match.First(target, candidates)
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
	assert.True(t, d.Accepted)
}

func TestFirstNoAcceptableCandidate(t *testing.T) {
	target := match.NewTarget("Lose Yourself", "Eminem")
	_, _, ok := match.First(target, []match.Candidate{
		{ID: 1, Title: "Without Me", Artist: "Eminem"},
	})
	assert.False(t, ok)
}
