// Package concert turns a flat list of concert records into the aggregate
// views of the dashboard. Every function here is pure.
package concert

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RawRecord is one concert as it appears in the dataset file.
type RawRecord struct {
	Date   string `json:"date" yaml:"date"`
	Artist string `json:"artist" yaml:"artist"`
	Venue  string `json:"venue" yaml:"venue"`
	City   string `json:"city" yaml:"city"`
	Songs  string `json:"songs,omitempty" yaml:"songs,omitempty"`
}

// Record is a RawRecord with its date parsed and its setlist split. Records
// are shared between every view and must not be modified after Normalize.
type Record struct {
	Date   time.Time `json:"date" yaml:"date"`
	Artist string    `json:"artist" yaml:"artist"`
	Venue  string    `json:"venue" yaml:"venue"`
	City   string    `json:"city" yaml:"city"`
	Songs  []string  `json:"songs" yaml:"songs"`
}

// Rejected describes a raw record that Normalize dropped.
type Rejected struct {
	Index int
	Raw   RawRecord
	Err   error
}

const dateLayout = "2-1-2006"

// ParseDate parses a day-first date such as "01-06-2023", "1/6/2023" or
// "01.06.2023" into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	ds := strings.TrimSpace(s)
	ds = strings.NewReplacer("/", "-", ".", "-").Replace(ds)
	t, err := time.Parse(dateLayout, ds)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// SplitSongs splits a comma separated setlist, keeping set order. An empty
// setlist gives an empty slice rather than a slice holding "".
func SplitSongs(songs string) []string {
	if strings.TrimSpace(songs) == "" {
		return []string{}
	}
	parts := strings.Split(songs, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// Normalize parses every raw record. Records whose date can't be parsed are
// left out of the result and returned in rejected instead.
func Normalize(raw []RawRecord) (records []Record, rejected []Rejected) {
	records = make([]Record, 0, len(raw))
	for i, r := range raw {
		date, err := ParseDate(r.Date)
		if err != nil {
			rejected = append(rejected, Rejected{Index: i, Raw: r, Err: err})
			continue
		}
		records = append(records, Record{
			Date:   date,
			Artist: r.Artist,
			Venue:  r.Venue,
			City:   r.City,
			Songs:  SplitSongs(r.Songs),
		})
	}
	return
}

// SortByDateDesc returns a copy of records, newest first. Concerts on the
// same day keep their relative order.
func SortByDateDesc(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Location is the composite venue key used by the map and the roll-up.
func (r Record) Location() string {
	return r.Venue + ", " + r.City
}

// HasSong reports whether song is in the record's setlist.
func (r Record) HasSong(song string) bool {
	for _, s := range r.Songs {
		if s == song {
			return true
		}
	}
	return false
}
