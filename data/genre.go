package data

// GenreAssignments holds one primary-genre decision per artist, derived from
// the weighted votes of the external sources. One row per artist; re-running
// classification replaces the row wholesale.
//
// Confidence is the literal sum of the fixed weights of the sources that
// agreed on the winning genre. It is not renormalized when a source was
// unavailable, so incomplete data reads as lower confidence.
type GenreAssignment struct {
	ID       int64
	ArtistID int64

	PrimaryGenre string
	Confidence   float64

	// Comma-joined names of the sources that voted for the winning genre,
	// like "spotify,lastfm".
	Sources string
}
