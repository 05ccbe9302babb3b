package credits_test

import (
	"testing"

	"github.com/hot100db/hot100/credits"
	"github.com/hot100db/hot100/genius"
	"github.com/stretchr/testify/assert"
)

func TestMapRole(t *testing.T) {
	for raw, want := range map[string]string{
		"Writer":             credits.RoleWriter,
		"written by":         credits.RoleWriter,
		"Producer":           credits.RoleProducer,
		"Additional Producer": credits.RoleCoProducer,
		"Mixing Engineer":    credits.RoleMixer,
		"Mastered By":        credits.RoleMasteringEngineer,
		"Background Vocals":  credits.RoleBackingVocalist,
	} {
		role, ok := credits.MapRole(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, role, raw)
	}
}

func TestMapRoleInstrumentHints(t *testing.T) {
	role, ok := credits.MapRole("Electric Guitar")
	assert.True(t, ok)
	assert.Equal(t, credits.RoleInstrumentalist, role)

	role, ok = credits.MapRole("Drum Programming")
	assert.True(t, ok)
	assert.Equal(t, credits.RoleInstrumentalist, role)
}

func TestMapRoleUnknown(t *testing.T) {
	_, ok := credits.MapRole("Creative Director")
	assert.False(t, ok)

	_, ok = credits.MapRole("")
	assert.False(t, ok)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "beyonce", credits.NormalizeName("Beyonce feat. Jay-Z"))
	assert.Equal(t, "earth, wind and fire", credits.NormalizeName("Earth, Wind & Fire"))
	assert.Equal(t, "outkast", credits.NormalizeName("  OutKast  "))
}

func TestResolve(t *testing.T) {
	song := &genius.Song{
		ID: 7,
		Contributors: []genius.Contributor{
			{Name: "Kendrick Lamar", RawRole: "artist", IsPrimary: true},
			{Name: "Kendrick Lamar", RawRole: "Writer"},
			{Name: "Sounwave", RawRole: "Producer"},
			{Name: "Somebody", RawRole: "Vibe Curator"},
			{Name: "", RawRole: "Writer"},
		},
	}

	idx := credits.NewIndex()
	out := credits.Resolve(42, song, idx)

	assert.Len(t, out, 3)
	assert.Equal(t, credits.RoleArtist, out[0].Role)
	assert.True(t, out[0].IsPrimary)
	assert.Equal(t, credits.RoleWriter, out[1].Role)
	assert.Equal(t, "Sounwave", out[2].PersonName)
	for _, credit := range out {
		assert.Equal(t, int64(42), credit.SongID)
		assert.Equal(t, "genius", credit.Source)
	}
}

func TestResolveSkipsKnownCredits(t *testing.T) {
	song := &genius.Song{
		Contributors: []genius.Contributor{
			{Name: "Max Martin", RawRole: "Producer"},
			{Name: "Max Martin", RawRole: "Writer"},
		},
	}

	idx := credits.NewIndex()
	idx.Add(1, "max martin", credits.RoleProducer)

	out := credits.Resolve(1, song, idx)
	assert.Len(t, out, 1)
	assert.Equal(t, credits.RoleWriter, out[0].Role)

	// A second resolve of the same song adds nothing.
	assert.Empty(t, credits.Resolve(1, song, idx))
}
