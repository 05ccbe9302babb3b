package genre

// denyListV2 is the static list of genre-level synonyms that must never
// become subgenre tags, on top of the primary set itself. Version 2 added
// the dance/electronic family after those terms leaked into subgenre storage
// and had to be cleaned up by hand; filtering at creation time keeps that
// from recurring.
var denyListV2 = []string{
	"soul", "blues", "funk", "disco", "gospel", "reggae",
	"punk", "metal", "indie", "dance", "edm", "house",
	"techno", "trance", "dubstep", "r&b", "rnb",
	"rap", "hip hop", "hip-hop", "country", "folk",
	"rock", "pop", "jazz", "classical", "latin",
	"electronic", "alternative", "other",
}

// DenyList returns the current static deny-list.
func DenyList() []string {
	out := make([]string, len(denyListV2))
	copy(out, denyListV2)
	return out
}
