package data

// SongTags holds raw, unmapped genre labels captured from provider responses
// during enrichment. Unique on (song_id, label, source).
//
// These feed the fallback vote in genre classification: labels already on
// record for an artist's songs count as a low-weight source even when every
// live provider is unavailable.
type SongTag struct {
	ID     int64
	SongID int64

	Label  string
	Source string
}
