// Package credits maps raw contributor role labels onto a closed role set
// and resolves contributors into credit rows, skipping ones a song already
// has.
package credits

import (
	"fmt"
	"log"
	"strings"

	"github.com/hot100db/hot100/data"
	"github.com/hot100db/hot100/genius"
)

// The closed canonical role set.
const (
	RoleArtist            = "Artist"
	RoleFeaturedArtist    = "Featured Artist"
	RoleWriter            = "Writer"
	RoleProducer          = "Producer"
	RoleCoWriter          = "Co-Writer"
	RoleCoProducer        = "Co-Producer"
	RoleArranger          = "Arranger"
	RoleEngineer          = "Engineer"
	RoleMixer             = "Mixer"
	RoleMasteringEngineer = "Mastering Engineer"
	RoleVocalist          = "Vocalist"
	RoleBackingVocalist   = "Backing Vocalist"
	RoleInstrumentalist   = "Instrumentalist"
)

var roleMapping = map[string]string{
	"artist":              RoleArtist,
	"primary artist":      RoleArtist,
	"featured artist":     RoleFeaturedArtist,
	"featuring":           RoleFeaturedArtist,
	"writer":              RoleWriter,
	"songwriter":          RoleWriter,
	"written by":          RoleWriter,
	"composer":            RoleWriter,
	"lyricist":            RoleWriter,
	"producer":            RoleProducer,
	"produced by":         RoleProducer,
	"co-writer":           RoleCoWriter,
	"co-producer":         RoleCoProducer,
	"additional producer": RoleCoProducer,
	"arranger":            RoleArranger,
	"arranged by":         RoleArranger,
	"string arranger":     RoleArranger,
	"engineer":            RoleEngineer,
	"recording engineer":  RoleEngineer,
	"engineered by":       RoleEngineer,
	"assistant engineer":  RoleEngineer,
	"mixer":               RoleMixer,
	"mixing engineer":     RoleMixer,
	"mixed by":            RoleMixer,
	"mastering engineer":  RoleMasteringEngineer,
	"mastered by":         RoleMasteringEngineer,
	"vocalist":            RoleVocalist,
	"lead vocals":         RoleVocalist,
	"vocals":              RoleVocalist,
	"backing vocalist":    RoleBackingVocalist,
	"background vocals":   RoleBackingVocalist,
	"backing vocals":      RoleBackingVocalist,
}

// Instrument labels ("guitar", "bass", "drums", ...) don't enumerate well;
// anything unmapped that names a performance rather than a desk role
// resolves to Instrumentalist via this containment check.
var instrumentalHints = []string{
	"guitar", "bass", "drums", "piano", "keyboard", "keys", "organ",
	"horn", "trumpet", "saxophone", "strings", "violin", "cello",
	"percussion", "synth", "programming", "scratches", "turntable",
}

// MapRole maps a raw provider role label onto the canonical set. The second
// return is false when the label fits nothing at all; such contributors are
// skipped rather than stored under an invented role.
func MapRole(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	if role, ok := roleMapping[key]; ok {
		return role, true
	}
	for _, hint := range instrumentalHints {
		if strings.Contains(key, hint) {
			return RoleInstrumentalist, true
		}
	}
	if strings.Contains(key, "vocal") {
		return RoleBackingVocalist, true
	}
	return "", false
}

// NormalizeName folds a person name for duplicate detection: featuring
// clauses off, "&" to "and", lowercased.
func NormalizeName(name string) string {
	n := strings.TrimSpace(name)
	lower := strings.ToLower(n)
	for _, marker := range []string{" feat.", " featuring", " ft."} {
		if i := strings.Index(lower, marker); i >= 0 {
			n = n[:i]
			lower = lower[:i]
		}
	}
	n = strings.ReplaceAll(n, " & ", " and ")
	return strings.ToLower(strings.TrimSpace(n))
}

// An Index tracks the (normalized name, role) pairs a song already has. One
// Index is built per batch run from the database and passed in explicitly;
// there is no shared package state between runs.
type Index struct {
	known map[string]struct{}
}

func NewIndex() *Index {
	return &Index{known: make(map[string]struct{})}
}

func key(songID int64, normalizedName, role string) string {
	return fmt.Sprintf("%d\x00%s\x00%s", songID, normalizedName, role)
}

// Add records a known credit.
func (idx *Index) Add(songID int64, normalizedName, role string) {
	idx.known[key(songID, normalizedName, role)] = struct{}{}
}

// Has reports whether the song already has this person in this role.
func (idx *Index) Has(songID int64, normalizedName, role string) bool {
	_, ok := idx.known[key(songID, normalizedName, role)]
	return ok
}

// Resolve turns a matched song's contributors into credit rows for songID,
// skipping duplicates against idx and recording new rows into it. One
// malformed contributor is logged and skipped; it never takes the rest of
// the song's contributors down with it.
//
// The primary artist always lands as a distinct Artist row, even when the
// same person also appears as writer or producer.
func Resolve(songID int64, song *genius.Song, idx *Index) []data.Credit {
	var out []data.Credit

	for _, contributor := range song.Contributors {
		name := strings.TrimSpace(contributor.Name)
		if name == "" {
			log.Printf("skipping unnamed contributor (role '%s') on song %d", contributor.RawRole, songID)
			continue
		}

		role, ok := MapRole(contributor.RawRole)
		if !ok {
			log.Printf("skipping contributor '%s' with unmapped role '%s' on song %d", name, contributor.RawRole, songID)
			continue
		}
		if contributor.IsPrimary {
			role = RoleArtist
		}

		normalized := NormalizeName(name)
		if normalized == "" {
			log.Printf("skipping contributor '%s': name normalizes to nothing", name)
			continue
		}

		if idx.Has(songID, normalized, role) {
			continue
		}
		idx.Add(songID, normalized, role)

		out = append(out, data.Credit{
			SongID:         songID,
			PersonName:     name,
			NormalizedName: normalized,
			Role:           role,
			IsPrimary:      contributor.IsPrimary,
			Source:         "genius",
			Confidence:     1,
		})
	}

	return out
}
