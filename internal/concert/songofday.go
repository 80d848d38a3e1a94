package concert

import (
	"math/rand/v2"
	"time"
)

// SongOfDay is a song played at the concert whose anniversary is closest
// to today.
type SongOfDay struct {
	Song   string    `json:"song" yaml:"song"`
	Artist string    `json:"artist" yaml:"artist"`
	Venue  string    `json:"venue" yaml:"venue"`
	City   string    `json:"city" yaml:"city"`
	Date   time.Time `json:"date" yaml:"date"`
}

// SongPicker chooses one of n songs, returning an index in [0, n).
type SongPicker interface {
	Pick(n int) int
}

// IndexPicker always picks the same position, wrapped into range.
type IndexPicker int

func (p IndexPicker) Pick(n int) int {
	i := int(p) % n
	if i < 0 {
		i += n
	}
	return i
}

// RandomPicker picks uniformly with a seeded generator, so a fixed seed
// gives a fixed sequence of picks.
type RandomPicker struct {
	rng *rand.Rand
}

func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandomPicker) Pick(n int) int {
	return p.rng.IntN(n)
}

// Anniversaries are compared inside 2024 so that 29 February exists.
const referenceYear = 2024

const daysInReferenceYear = 366

// DayDistance is the number of days between the month-days of a and b,
// ignoring years. With wrap set the distance goes around the year end, so
// 31 December and 1 January are one day apart; without it they are 365.
func DayDistance(a, b time.Time, wrap bool) int {
	da := time.Date(referenceYear, a.Month(), a.Day(), 0, 0, 0, 0, time.UTC).YearDay()
	db := time.Date(referenceYear, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC).YearDay()
	d := da - db
	if d < 0 {
		d = -d
	}
	if wrap && daysInReferenceYear-d < d {
		d = daysInReferenceYear - d
	}
	return d
}

// SongOfTheDay finds the concert closest to today's month-day and asks
// picker for one of its songs. Concerts without a named song are skipped;
// equally close concerts resolve to the earliest in records. It returns nil
// when nothing qualifies.
func SongOfTheDay(records []Record, today time.Time, picker SongPicker, wrap bool) *SongOfDay {
	best := -1
	bestDist := 0
	var bestSongs []string
	for i, r := range records {
		songs := namedSongs(r.Songs)
		if len(songs) == 0 {
			continue
		}
		d := DayDistance(r.Date, today, wrap)
		if best < 0 || d < bestDist {
			best, bestDist, bestSongs = i, d, songs
		}
	}
	if best < 0 {
		return nil
	}

	if picker == nil {
		picker = IndexPicker(0)
	}
	r := records[best]
	return &SongOfDay{
		Song:   bestSongs[picker.Pick(len(bestSongs))],
		Artist: r.Artist,
		Venue:  r.Venue,
		City:   r.City,
		Date:   r.Date,
	}
}

func namedSongs(songs []string) []string {
	out := make([]string, 0, len(songs))
	for _, s := range songs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
