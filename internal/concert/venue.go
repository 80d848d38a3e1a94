package concert

// LatLng is a map coordinate in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Gazetteer maps a location key ("venue, city") to its coordinates.
type Gazetteer map[string]LatLng

// VenueGroup is one venue on the concert map. Coordinates is nil when the
// venue's position is unknown.
type VenueGroup struct {
	Location    string  `json:"location" yaml:"location"`
	Venue       string  `json:"venue" yaml:"venue"`
	City        string  `json:"city" yaml:"city"`
	Count       int     `json:"count" yaml:"count"`
	Coordinates *LatLng `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// VenueGroups counts concerts per venue and city, in the order each venue
// first appears. No geocoding happens here; coordinates are only attached
// when gaz (which may be nil) knows the location.
func VenueGroups(records []Record, gaz Gazetteer) []VenueGroup {
	index := make(map[string]int)
	groups := make([]VenueGroup, 0)
	for _, r := range records {
		key := r.Location()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			g := VenueGroup{Location: key, Venue: r.Venue, City: r.City}
			if ll, found := gaz[key]; found {
				g.Coordinates = &ll
			}
			groups = append(groups, g)
		}
		groups[i].Count++
	}
	return groups
}
