package data

import "database/sql"

// Songs holds the Billboard chart entries we enrich. A song is unique on
// (title, artist); the year and peak position come from the chart it first
// appeared on.
//
// EnrichedAt is set once credits have been resolved for the song. A null
// EnrichedAt marks the song as still needing enrichment, which is how a
// later run resumes where an earlier one left off.
type Song struct {
	ID     int64
	Title  string
	Artist string
	Year   int64

	// Chart position, like 1 for a chart-topper. Zero when unknown.
	PeakPos int64

	// The external song id on the lyrics-metadata provider, recorded when
	// a fuzzy match is accepted.
	GeniusID int64

	EnrichedAt sql.NullTime
}
