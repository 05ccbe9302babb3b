package data

import "database/sql"

// Artists holds the distinct primary artists extracted from chart entries.
// Artist names are unique.
//
// ClassifiedAt is set once multi-source genre classification has run for the
// artist. Classification is recomputed from scratch when re-run; it is never
// incrementally updated.
type Artist struct {
	ID   int64
	Name string

	ClassifiedAt sql.NullTime
}
