package db

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB represents our sqlite3 database file. It holds two gorm handles over the
// same file: rw for the single writer and ro for reads, so long report
// queries don't sit on the write connection.
type DB struct {
	ro *gorm.DB
	rw *gorm.DB
}

//go:embed schema.sql
var schema string

// Open returns a connection to a migrated sqlite3 database file on disk,
// creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	rw, err := gorm.Open(sqlite.Open(filename), cfg)
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}
	if pool, err := rw.DB(); err != nil {
		return nil, err
	} else {
		pool.SetMaxOpenConns(1)
	}

	ro, err := gorm.Open(sqlite.Open(filename), cfg)
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s' for read: %w", filename, err)
	}

	db := &DB{ro: ro, rw: rw}

	if err := db.rw.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

// Close closes both connection pools.
func (db *DB) Close() error {
	for _, gdb := range []*gorm.DB{db.rw, db.ro} {
		pool, err := gdb.DB()
		if err != nil {
			return err
		}
		if err := pool.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Transaction runs f in one read-write transaction, retrying with
// exponential backoff when sqlite reports lock contention. The single writer
// can still see SQLITE_BUSY under concurrent-read load; backing off and
// retrying is cheaper than failing the whole song or artist.
func (db *DB) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	wait := 50 * time.Millisecond
	for attempt := 0; ; attempt++ {
		err := db.rw.WithContext(ctx).Transaction(f)
		if err == nil {
			return nil
		}
		if !isLocked(err) || attempt >= 5 {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func isLocked(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}

// IsConflict reports whether err is a uniqueness-constraint violation. A
// conflict on insert means the row already exists, which callers treat as a
// duplicate to skip, not a failure.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
