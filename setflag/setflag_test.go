package setflag_test

import (
	"testing"

	"github.com/hot100db/hot100/setflag"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	sf := setflag.New("spotify", "lastfm", "chartmetric")

	assert.NoError(t, sf.Set("spotify, lastfm"))
	assert.True(t, sf.Has("spotify"))
	assert.True(t, sf.Has("lastfm"))
	assert.False(t, sf.Has("chartmetric"))

	assert.Error(t, sf.Set("pandora"))
}

func TestEmptySelectionMeansAll(t *testing.T) {
	sf := setflag.New("spotify", "lastfm")
	assert.True(t, sf.Has("spotify"))
	assert.True(t, sf.Has("lastfm"))
}
