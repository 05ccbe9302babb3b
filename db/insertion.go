package db

import (
	"fmt"
	"time"

	"github.com/hot100db/hot100/data"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertSong, given a Song, inserts it into the songs table, doing nothing if
// a song with the same title and artist already exists.
func (db *DB) InsertSong(song *data.Song) error {
	if song.Title == "" || song.Artist == "" {
		return fmt.Errorf("song needs a title and an artist")
	}
	if err := db.rw.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(song).
		Error; err != nil {
		return fmt.Errorf("error inserting song '%s': %w", song.Title, err)
	}
	return nil
}

// InsertArtist, given an Artist, inserts it into the artists table, doing
// nothing if the name is already present.
func (db *DB) InsertArtist(artist *data.Artist) error {
	if artist.Name == "" {
		return fmt.Errorf("no artist name")
	}
	if err := db.rw.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(artist).
		Error; err != nil {
		return fmt.Errorf("error inserting artist '%s': %w", artist.Name, err)
	}
	return nil
}

// InsertCredit inserts one resolved credit inside tx. A uniqueness conflict
// is not an error here: the credit was already on record, so the insert is a
// no-op, which is what makes re-enrichment idempotent.
func (db *DB) InsertCredit(tx *gorm.DB, credit *data.Credit) error {
	if err := tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(credit).
		Error; err != nil {
		if IsConflict(err) {
			return nil
		}
		return fmt.Errorf("error inserting credit '%s' (%s): %w",
			credit.PersonName, credit.Role, err)
	}
	return nil
}

// InsertSongTag records one raw provider label for a song inside tx.
func (db *DB) InsertSongTag(tx *gorm.DB, tag *data.SongTag) error {
	if err := tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tag).
		Error; err != nil && !IsConflict(err) {
		return fmt.Errorf("error inserting tag '%s': %w", tag.Label, err)
	}
	return nil
}

// InsertSubgenreTag inserts one subgenre tag inside tx, doing nothing if the
// song already carries the label.
func (db *DB) InsertSubgenreTag(tx *gorm.DB, tag *data.SubgenreTag) error {
	if err := tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tag).
		Error; err != nil && !IsConflict(err) {
		return fmt.Errorf("error inserting subgenre '%s': %w", tag.Label, err)
	}
	return nil
}

// ReplaceAssignment replaces the artist's genre assignment inside tx.
// Classification is recomputed, never merged, so the old row goes away
// first.
func (db *DB) ReplaceAssignment(tx *gorm.DB, assignment *data.GenreAssignment) error {
	if err := tx.
		Where("artist_id = ?", assignment.ArtistID).
		Delete(&data.GenreAssignment{}).
		Error; err != nil {
		return fmt.Errorf("error clearing assignment for artist %d: %w", assignment.ArtistID, err)
	}
	if err := tx.Create(assignment).Error; err != nil {
		return fmt.Errorf("error inserting assignment for artist %d: %w", assignment.ArtistID, err)
	}
	return nil
}

// ClearSubgenreTags removes the subgenre tags for the given songs inside
// tx. Classification replaces tags rather than merging into them.
func (db *DB) ClearSubgenreTags(tx *gorm.DB, songIDs []int64) error {
	if len(songIDs) == 0 {
		return nil
	}
	if err := tx.Where("song_id in ?", songIDs).Delete(&data.SubgenreTag{}).Error; err != nil {
		return fmt.Errorf("error clearing subgenre tags: %w", err)
	}
	return nil
}

// ClearSongEnrichment removes a song's credits and raw tags inside tx, for
// forced re-enrichment: an overwrite, not an update in place.
func (db *DB) ClearSongEnrichment(tx *gorm.DB, songID int64) error {
	if err := tx.Where("song_id = ?", songID).Delete(&data.Credit{}).Error; err != nil {
		return fmt.Errorf("error clearing credits for song %d: %w", songID, err)
	}
	if err := tx.Where("song_id = ?", songID).Delete(&data.SongTag{}).Error; err != nil {
		return fmt.Errorf("error clearing tags for song %d: %w", songID, err)
	}
	return nil
}

// MarkSongEnriched stamps enriched_at and records the matched external id
// inside tx.
func (db *DB) MarkSongEnriched(tx *gorm.DB, songID, geniusID int64) error {
	if err := tx.
		Table("songs").
		Where("id = ?", songID).
		Updates(map[string]interface{}{
			"enriched_at": time.Now(),
			"genius_id":   geniusID,
		}).
		Error; err != nil {
		return fmt.Errorf("error marking song %d enriched: %w", songID, err)
	}
	return nil
}

// MarkArtistClassified stamps classified_at inside tx.
func (db *DB) MarkArtistClassified(tx *gorm.DB, artistID int64) error {
	if err := tx.
		Table("artists").
		Where("id = ?", artistID).
		Update("classified_at", time.Now()).
		Error; err != nil {
		return fmt.Errorf("error marking artist %d classified: %w", artistID, err)
	}
	return nil
}
