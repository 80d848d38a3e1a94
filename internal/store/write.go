package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ademuri/concert-tools/internal/concert"
)

// ImportRecords inserts a batch of raw records transactionally, tagging
// them with source. Concerts already present (same date, artist, venue and
// city) are skipped, so importing the same file twice is harmless. It
// returns the number of concerts added.
func (s *Store) ImportRecords(source string, records []concert.RawRecord) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	added := 0
	for _, r := range records {
		id, created, err := createConcert(tx, source, r)
		if err != nil {
			return 0, err
		}
		if !created {
			continue
		}
		if err := createSetlist(tx, id, r.Songs); err != nil {
			return 0, err
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return added, nil
}

func createConcert(tx *sql.Tx, source string, r concert.RawRecord) (int64, bool, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM Concert WHERE date = ? AND artist = ? AND venue = ? AND city = ?",
		r.Date, r.Artist, r.Venue, r.City).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("checking concert %q on %q: %w", r.Artist, r.Date, err)
	}

	res, err := tx.Exec("INSERT INTO Concert (date, artist, venue, city, source) VALUES (?, ?, ?, ?, ?)",
		r.Date, r.Artist, r.Venue, r.City, source)
	if err != nil {
		return 0, false, fmt.Errorf("inserting concert %q on %q: %w", r.Artist, r.Date, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("inserting concert %q on %q: %w", r.Artist, r.Date, err)
	}
	return id, true, nil
}

// createSetlist stores the songs one row per position. Stray commas are
// kept as empty entries so the setlist reads back identically.
func createSetlist(tx *sql.Tx, concertID int64, songs string) error {
	if strings.TrimSpace(songs) == "" {
		return nil
	}
	for i, song := range strings.Split(songs, ",") {
		_, err := tx.Exec("INSERT INTO SetlistEntry (concert, position, song) VALUES (?, ?, ?)",
			concertID, i, strings.TrimSpace(song))
		if err != nil {
			return fmt.Errorf("inserting song %d of concert %d: %w", i, concertID, err)
		}
	}
	return nil
}
