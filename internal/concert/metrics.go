package concert

// Metrics are the headline numbers of the dashboard.
type Metrics struct {
	Concerts        int     `json:"concerts" yaml:"concerts"`
	Songs           int     `json:"songs" yaml:"songs"`
	MinutesListened float64 `json:"minutes_listened" yaml:"minutes_listened"`
	Artists         int     `json:"artists" yaml:"artists"`
	Venues          int     `json:"venues" yaml:"venues"`
	Cities          int     `json:"cities" yaml:"cities"`
	Years           int     `json:"years" yaml:"years"`
	InterludeShows  int     `json:"interlude_shows" yaml:"interlude_shows"`
	InterludeHours  float64 `json:"interlude_hours" yaml:"interlude_hours"`
}

const (
	DefaultMinutesPerSong   = 5.5
	DefaultInterludeMinutes = 9.5
)

// Summary computes the headline metrics of filtered. The interlude figures
// count every show in all whose setlist contains a song matched by
// interlude, regardless of the filter. Minutes are estimates: every song
// is assumed to last minutesPerSong and every interlude interludeMinutes.
func Summary(filtered, all []Record, interlude func(string) bool, minutesPerSong, interludeMinutes float64) Metrics {
	m := Metrics{Concerts: len(filtered)}

	artists := make(map[string]bool)
	venues := make(map[string]bool)
	cities := make(map[string]bool)
	years := make(map[int]bool)
	for _, r := range filtered {
		m.Songs += len(r.Songs)
		artists[r.Artist] = true
		venues[r.Venue] = true
		cities[r.City] = true
		years[r.Date.Year()] = true
	}
	m.Artists = len(artists)
	m.Venues = len(venues)
	m.Cities = len(cities)
	m.Years = len(years)
	m.MinutesListened = float64(m.Songs) * minutesPerSong

	if interlude != nil {
		for _, r := range all {
			for _, s := range r.Songs {
				if interlude(s) {
					m.InterludeShows++
					break
				}
			}
		}
	}
	m.InterludeHours = float64(m.InterludeShows) * interludeMinutes / 60

	return m
}
