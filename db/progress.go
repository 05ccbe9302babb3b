package db

import "fmt"

func (db *DB) count(table, where string) (int, error) {
	var count int64
	q := db.ro.Table(table)
	if where != "" {
		q = q.Where(where)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return int(count), nil
}

func (db *DB) CountSongs() (int, error) { return db.count("songs", "") }

func (db *DB) CountSongsEnriched() (int, error) {
	return db.count("songs", "enriched_at is not null")
}

func (db *DB) CountSongsToEnrich() (int, error) {
	return db.count("songs", "enriched_at is null")
}

func (db *DB) CountArtists() (int, error) { return db.count("artists", "") }

func (db *DB) CountArtistsClassified() (int, error) {
	return db.count("artists", "classified_at is not null")
}

func (db *DB) CountArtistsToClassify() (int, error) {
	return db.count("artists", "classified_at is null")
}

func (db *DB) CountCredits() (int, error) { return db.count("credits", "") }

func (db *DB) CountSubgenreTags() (int, error) { return db.count("subgenre_tags", "") }
