package data

// Credits holds one resolved contributor role per row. A credit is unique on
// (song_id, normalized_name, role): re-enriching a song skips rows that
// already exist rather than duplicating them.
type Credit struct {
	ID     int64
	SongID int64

	// The display name as the provider returned it, like "Pharrell Williams".
	PersonName string

	// Lowercased, featuring-clauses removed, "&" folded to "and". Used for
	// duplicate detection.
	NormalizedName string

	// One of the closed role set in the credits package, like "Producer".
	Role string

	// True only for the song's primary Artist entry.
	IsPrimary bool

	Source     string
	Confidence float64
}
