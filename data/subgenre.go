package data

// SubgenreTags holds the finer-grained genre labels attached to a song, like
// "neo soul" under "r&b". Unique on (song_id, label).
//
// A label that names a primary genre (or a generic genre-level synonym from
// the deny-list) is filtered out before a row is ever created; the genre
// package enforces this at extraction time.
type SubgenreTag struct {
	ID     int64
	SongID int64

	Label       string
	ParentGenre string
	Confidence  float64
	Source      string
}
