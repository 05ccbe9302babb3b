package db

import (
	"fmt"

	"github.com/hot100db/hot100/data"
)

// SongsToEnrich returns up to limit songs in [from, to] that still need
// credit resolution. With force set, already-enriched songs are included so
// their results can be overwritten.
func (db *DB) SongsToEnrich(from, to int64, limit int, force bool) ([]data.Song, error) {
	q := db.ro.Table("songs")
	if from > 0 {
		q = q.Where("year >= ?", from)
	}
	if to > 0 {
		q = q.Where("year <= ?", to)
	}
	if !force {
		q = q.Where("enriched_at is null")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var songs []data.Song
	if err := q.Order("year, peak_pos").Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("error getting songs to enrich: %w", err)
	}
	return songs, nil
}

// ArtistsToClassify returns up to limit artists still needing genre
// classification, or all artists when force is set.
func (db *DB) ArtistsToClassify(limit int, force bool) ([]data.Artist, error) {
	q := db.ro.Table("artists")
	if !force {
		q = q.Where("classified_at is null")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var artists []data.Artist
	if err := q.Order("name").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("error getting artists to classify: %w", err)
	}
	return artists, nil
}

// KnownCredits returns the (normalized_name, role) pairs already stored for
// a song, used to seed the resolver's duplicate index for a batch.
func (db *DB) KnownCredits(songID int64) ([]data.Credit, error) {
	var credits []data.Credit
	if err := db.ro.
		Table("credits").
		Where("song_id = ?", songID).
		Select("normalized_name", "role").
		Find(&credits).
		Error; err != nil {
		return nil, fmt.Errorf("error getting credits for song %d: %w", songID, err)
	}
	return credits, nil
}

// SongsByArtist returns the songs whose primary artist matches name.
func (db *DB) SongsByArtist(name string) ([]data.Song, error) {
	var songs []data.Song
	if err := db.ro.
		Table("songs").
		Where("artist = ? or artist like ?", name, name+" %").
		Find(&songs).
		Error; err != nil {
		return nil, fmt.Errorf("error getting songs for artist '%s': %w", name, err)
	}
	return songs, nil
}

// ArtistTags returns the distinct raw labels stored for an artist's songs
// during enrichment. These feed the fallback genre source.
func (db *DB) ArtistTags(name string) ([]string, error) {
	songs, err := db.SongsByArtist(name)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, nil
	}
	ids := make([]int64, len(songs))
	for i, song := range songs {
		ids[i] = song.ID
	}

	var labels []string
	if err := db.ro.
		Table("song_tags").
		Where("song_id in ?", ids).
		Distinct().
		Pluck("label", &labels).
		Error; err != nil {
		return nil, fmt.Errorf("error getting tags for artist '%s': %w", name, err)
	}
	return labels, nil
}

// AssignedGenreNames returns every primary genre currently assigned to any
// artist. The subgenre filter folds these into its deny set so a label that
// became a primary genre can never sneak back in as a subgenre.
func (db *DB) AssignedGenreNames() ([]string, error) {
	var names []string
	if err := db.ro.
		Table("genre_assignments").
		Distinct().
		Pluck("primary_genre", &names).
		Error; err != nil {
		return nil, fmt.Errorf("error getting assigned genre names: %w", err)
	}
	return names, nil
}

// SongByID returns one song row, or gorm.ErrRecordNotFound.
func (db *DB) SongByID(id int64) (data.Song, error) {
	var song data.Song
	if err := db.ro.Table("songs").Where("id = ?", id).First(&song).Error; err != nil {
		return song, fmt.Errorf("error getting song %d: %w", id, err)
	}
	return song, nil
}

// SongCredits returns the full credit rows for a song, primary artist
// first, then alphabetically by role and name.
func (db *DB) SongCredits(songID int64) ([]data.Credit, error) {
	var credits []data.Credit
	if err := db.ro.
		Table("credits").
		Where("song_id = ?", songID).
		Order("is_primary desc, role, person_name").
		Find(&credits).
		Error; err != nil {
		return nil, fmt.Errorf("error getting credits for song %d: %w", songID, err)
	}
	return credits, nil
}

// SongSubgenres returns the subgenre tags stored for a song.
func (db *DB) SongSubgenres(songID int64) ([]data.SubgenreTag, error) {
	var tags []data.SubgenreTag
	if err := db.ro.
		Table("subgenre_tags").
		Where("song_id = ?", songID).
		Order("label").
		Find(&tags).
		Error; err != nil {
		return nil, fmt.Errorf("error getting subgenres for song %d: %w", songID, err)
	}
	return tags, nil
}

// ArtistByName returns one artist row, or gorm.ErrRecordNotFound.
func (db *DB) ArtistByName(name string) (data.Artist, error) {
	var artist data.Artist
	if err := db.ro.Table("artists").Where("name = ?", name).First(&artist).Error; err != nil {
		return artist, fmt.Errorf("error getting artist '%s': %w", name, err)
	}
	return artist, nil
}

// ArtistAssignment returns the artist's genre assignment, if one exists.
func (db *DB) ArtistAssignment(artistID int64) (data.GenreAssignment, bool, error) {
	var assignments []data.GenreAssignment
	if err := db.ro.
		Table("genre_assignments").
		Where("artist_id = ?", artistID).
		Limit(1).
		Find(&assignments).
		Error; err != nil {
		return data.GenreAssignment{}, false, fmt.Errorf("error getting assignment for artist %d: %w", artistID, err)
	}
	if len(assignments) == 0 {
		return data.GenreAssignment{}, false, nil
	}
	return assignments[0], true, nil
}
