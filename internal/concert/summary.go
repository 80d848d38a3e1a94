package concert

import (
	"fmt"
	"sort"
	"strings"
)

// Grain is the grouping key of the summary roll-up.
type Grain string

const (
	// GrainVenueCity groups by venue and city. This is the default.
	GrainVenueCity Grain = "venue"
	// GrainVenueCityArtist additionally splits each venue by artist.
	GrainVenueCityArtist Grain = "venue-artist"
)

func ParseGrain(s string) (Grain, error) {
	switch Grain(strings.ToLower(strings.TrimSpace(s))) {
	case "", GrainVenueCity:
		return GrainVenueCity, nil
	case GrainVenueCityArtist:
		return GrainVenueCityArtist, nil
	}
	return "", fmt.Errorf("unknown summary grain %q", s)
}

// SummaryRow is one group of the roll-up. Artist is empty for the venue
// grain; UniqueArtists is always 1 for the venue-artist grain.
type SummaryRow struct {
	City          string `json:"city" yaml:"city"`
	Venue         string `json:"venue" yaml:"venue"`
	Artist        string `json:"artist,omitempty" yaml:"artist,omitempty"`
	Concerts      int    `json:"concerts" yaml:"concerts"`
	UniqueArtists int    `json:"unique_artists" yaml:"unique_artists"`
	Songs         int    `json:"songs" yaml:"songs"`
}

type summaryKey struct {
	city, venue, artist string
}

// Summarize rolls records up by grain, busiest group first. Groups with the
// same number of concerts keep first-seen order.
func Summarize(records []Record, grain Grain) []SummaryRow {
	index := make(map[summaryKey]int)
	artists := make([]map[string]bool, 0)
	rows := make([]SummaryRow, 0)

	for _, r := range records {
		key := summaryKey{city: r.City, venue: r.Venue}
		if grain == GrainVenueCityArtist {
			key.artist = r.Artist
		}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, SummaryRow{City: key.city, Venue: key.venue, Artist: key.artist})
			artists = append(artists, make(map[string]bool))
		}
		rows[i].Concerts++
		rows[i].Songs += len(r.Songs)
		artists[i][r.Artist] = true
	}

	for i := range rows {
		rows[i].UniqueArtists = len(artists[i])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Concerts > rows[j].Concerts
	})
	return rows
}
