package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ademuri/concert-tools/internal/concert"
)

// LoadRecords reads every concert back in import order, setlists joined
// with ", " like the JSON export.
func (s *Store) LoadRecords() ([]concert.RawRecord, error) {
	query := `
	SELECT Concert.id, Concert.date, Concert.artist, Concert.venue, Concert.city, SetlistEntry.song
	FROM Concert
	LEFT JOIN SetlistEntry ON SetlistEntry.concert = Concert.id
	ORDER BY Concert.id, SetlistEntry.position
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying concerts: %w", err)
	}
	defer rows.Close()

	records := make([]concert.RawRecord, 0)
	var songs []string
	lastID := int64(-1)
	flush := func() {
		if len(records) > 0 {
			records[len(records)-1].Songs = strings.Join(songs, ", ")
		}
		songs = nil
	}

	for rows.Next() {
		var (
			id   int64
			r    concert.RawRecord
			song sql.NullString
		)
		if err := rows.Scan(&id, &r.Date, &r.Artist, &r.Venue, &r.City, &song); err != nil {
			return nil, fmt.Errorf("scanning concert: %w", err)
		}
		if id != lastID {
			flush()
			records = append(records, r)
			lastID = id
		}
		if song.Valid {
			songs = append(songs, song.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	flush()

	return records, nil
}

// CountConcerts returns the number of concerts per source file.
func (s *Store) CountConcerts() (map[string]int, error) {
	rows, err := s.db.Query("SELECT source, COUNT(id) FROM Concert GROUP BY source")
	if err != nil {
		return nil, fmt.Errorf("counting concerts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, err
		}
		counts[source] = count
	}
	return counts, rows.Err()
}
