package concert

import (
	"sort"
	"strings"
)

// RankedCount is one entry of a top-N ranking.
type RankedCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Selector extracts the values of a record that a ranking counts.
type Selector func(Record) []string

func ByArtist(r Record) []string { return []string{r.Artist} }
func ByVenue(r Record) []string  { return []string{r.Venue} }
func ByCity(r Record) []string   { return []string{r.City} }
func BySong(r Record) []string   { return r.Songs }

// ExcludeNamed matches names ignoring case and surrounding whitespace.
func ExcludeNamed(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			set[n] = true
		}
	}
	return func(name string) bool {
		return set[strings.ToLower(strings.TrimSpace(name))]
	}
}

// TopN counts the values picked by sel, highest count first. Values are
// counted exactly as stored; exclude (which may be nil) and empty names
// are skipped. Equal counts keep first-seen order. n <= 0 returns every
// value.
func TopN(records []Record, sel Selector, exclude func(string) bool, n int) []RankedCount {
	index := make(map[string]int)
	counts := make([]RankedCount, 0)
	for _, r := range records {
		for _, name := range sel(r) {
			if name == "" || (exclude != nil && exclude(name)) {
				continue
			}
			i, ok := index[name]
			if !ok {
				i = len(counts)
				index[name] = i
				counts = append(counts, RankedCount{Name: name})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
