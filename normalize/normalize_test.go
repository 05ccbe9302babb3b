package normalize_test

import (
	"testing"

	"github.com/hot100db/hot100/normalize"
	"github.com/stretchr/testify/assert"
)

func TestCleanTitleRestoresCensoredWords(t *testing.T) {
	assert.Equal(t, "bitch Don't Kill My Vibe", normalize.CleanTitle("B***h Don't Kill My Vibe"))
	assert.Equal(t, "My nigga", normalize.CleanTitle("My N**a"))
}

func TestCleanTitleStripsQualifiers(t *testing.T) {
	assert.Equal(t, "Umbrella", normalize.CleanTitle("Umbrella (feat. Jay-Z)"))
	assert.Equal(t, "Senorita", normalize.CleanTitle("Senorita (with Camila Cabello)"))
	assert.Equal(t, "Hey Jude", normalize.CleanTitle("Hey Jude - Remastered 2015"))
	assert.Equal(t, "Everything I Wanted", normalize.CleanTitle("Everything I Wanted - Radio Edit"))
	assert.Equal(t, "Lose Yourself", normalize.CleanTitle(`Lose Yourself - From "8 Mile" Soundtrack`))
}

func TestCleanTitleKeepsPlainTitles(t *testing.T) {
	assert.Equal(t, "In Da Club", normalize.CleanTitle("In Da Club"))
}

func TestStripArticle(t *testing.T) {
	assert.Equal(t, "Real Slim Shady", normalize.StripArticle("The Real Slim Shady"))
	assert.Equal(t, "Thousand Miles", normalize.StripArticle("A Thousand Miles"))
	// Only a leading article comes off.
	assert.Equal(t, "End of the Road", normalize.StripArticle("End of the Road"))
}

func TestStripParentheticals(t *testing.T) {
	assert.Equal(t, "Young'n", normalize.StripParentheticals("Young'n (Holla Back)"))
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "P I M P", normalize.StripPunctuation("P.I.M.P."))
}

func TestPrimaryArtist(t *testing.T) {
	assert.Equal(t, "Mariah Carey", normalize.PrimaryArtist("Mariah Carey Feat. Jay-Z"))
	assert.Equal(t, "Shawn Mendes", normalize.PrimaryArtist("Shawn Mendes & Camila Cabello"))
	assert.Equal(t, "Marshmello", normalize.PrimaryArtist("Marshmello x Khalid"))
	assert.Equal(t, "Selena Gomez", normalize.PrimaryArtist("Selena Gomez, Rema"))
	assert.Equal(t, "Outkast", normalize.PrimaryArtist("Outkast"))
}

func TestPrimaryArtistKeepsEmbeddedKeywords(t *testing.T) {
	// "x" and "with" only split as standalone words.
	assert.Equal(t, "Lil Nas X", normalize.PrimaryArtist("Lil Nas X"))
	assert.Equal(t, "Within Temptation", normalize.PrimaryArtist("Within Temptation"))
}

func TestStripArtistPunctuation(t *testing.T) {
	assert.Equal(t, "Camron", normalize.StripArtistPunctuation("Cam'ron"))
	assert.Equal(t, "JayZ", normalize.StripArtistPunctuation("Jay-Z"))
}

func TestTitleVariants(t *testing.T) {
	v := normalize.Title("The Boy Is Mine (feat. Monica)")
	assert.Equal(t, "The Boy Is Mine", v.Clean)
	assert.Equal(t, "Boy Is Mine", v.NoArticle)
	assert.Equal(t, "The Boy Is Mine", v.NoParens)
}
