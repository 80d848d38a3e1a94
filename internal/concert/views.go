package concert

import "time"

// Options configures DeriveViews. Use DefaultOptions and override fields.
type Options struct {
	TopSongs     int
	TopArtists   int
	ExcludeSongs []string
	Grain        Grain

	Today    time.Time
	Picker   SongPicker
	WrapYear bool

	Gazetteer Gazetteer

	MinutesPerSong   float64
	InterludeMinutes float64
}

// DefaultOptions matches the dashboard's stock layout: six songs without
// "Drums", eight artists, venue grain and year-end wraparound.
func DefaultOptions(today time.Time) Options {
	return Options{
		TopSongs:         6,
		TopArtists:       8,
		ExcludeSongs:     []string{"drums"},
		Grain:            GrainVenueCity,
		Today:            today,
		Picker:           IndexPicker(0),
		WrapYear:         true,
		MinutesPerSong:   DefaultMinutesPerSong,
		InterludeMinutes: DefaultInterludeMinutes,
	}
}

// Views holds every derived view of one filter state.
type Views struct {
	Filter         string          `json:"filter" yaml:"filter"`
	Metrics        Metrics         `json:"metrics" yaml:"metrics"`
	SongOfDay      *SongOfDay      `json:"song_of_day" yaml:"song_of_day"`
	TopSongs       []RankedCount   `json:"top_songs" yaml:"top_songs"`
	TopArtists     []RankedCount   `json:"top_artists" yaml:"top_artists"`
	MonthlyHistory []MonthlyBucket `json:"monthly_history" yaml:"monthly_history"`
	VenueGroups    []VenueGroup    `json:"venue_groups" yaml:"venue_groups"`
	Summary        []SummaryRow    `json:"summary" yaml:"summary"`
	Concerts       []Record        `json:"concerts" yaml:"concerts"`
}

// DeriveViews filters records and computes every view from the result.
// records is only read; all returned slices are freshly allocated.
func DeriveViews(records []Record, f Filter, opts Options) Views {
	filtered := f.Apply(records)
	exclude := ExcludeNamed(opts.ExcludeSongs...)

	return Views{
		Filter:         f.String(),
		Metrics:        Summary(filtered, records, exclude, opts.MinutesPerSong, opts.InterludeMinutes),
		SongOfDay:      SongOfTheDay(filtered, opts.Today, opts.Picker, opts.WrapYear),
		TopSongs:       TopN(filtered, BySong, exclude, opts.TopSongs),
		TopArtists:     TopN(filtered, ByArtist, nil, opts.TopArtists),
		MonthlyHistory: MonthlyHistory(filtered),
		VenueGroups:    VenueGroups(filtered, opts.Gazetteer),
		Summary:        Summarize(filtered, opts.Grain),
		Concerts:       SortByDateDesc(filtered),
	}
}
