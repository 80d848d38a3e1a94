package concert

import (
	"fmt"
	"strings"
	"time"
)

// Dimension is a record field that can be constrained by equality.
type Dimension string

const (
	DimArtist Dimension = "artist"
	DimVenue  Dimension = "venue"
	DimCity   Dimension = "city"
	DimSong   Dimension = "song"
)

// Dimensions lists every filterable dimension in display order.
var Dimensions = []Dimension{DimArtist, DimVenue, DimCity, DimSong}

func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Dimensions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q", s)
}

// Filter selects the records a set of views is computed from. A zero Start
// or End leaves that side of the range open. A dimension missing from
// Dimensions is unconstrained.
type Filter struct {
	Start      time.Time
	End        time.Time
	Dimensions map[Dimension]string
}

// DefaultStart is the start of the default date range.
var DefaultStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// DefaultFilter covers 2000-01-01 through today with no dimension filters.
func DefaultFilter(today time.Time) Filter {
	return Filter{
		Start: DefaultStart,
		End:   Day(today),
	}
}

// Day truncates t to its calendar date in UTC, keeping t's own year, month
// and day.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// With returns a copy of f constraining dim to value.
func (f Filter) With(dim Dimension, value string) Filter {
	dims := make(map[Dimension]string, len(f.Dimensions)+1)
	for k, v := range f.Dimensions {
		dims[k] = v
	}
	dims[dim] = value
	f.Dimensions = dims
	return f
}

// Without returns a copy of f with no constraint on dim.
func (f Filter) Without(dim Dimension) Filter {
	dims := make(map[Dimension]string, len(f.Dimensions))
	for k, v := range f.Dimensions {
		if k != dim {
			dims[k] = v
		}
	}
	f.Dimensions = dims
	return f
}

// Include decides whether r passes the filter.
func (f Filter) Include(r Record) bool {
	date := Day(r.Date)
	if !f.Start.IsZero() && date.Before(Day(f.Start)) {
		return false
	}
	if !f.End.IsZero() && date.After(Day(f.End)) {
		return false
	}

	for dim, want := range f.Dimensions {
		switch dim {
		case DimArtist:
			if r.Artist != want {
				return false
			}
		case DimVenue:
			if r.Venue != want {
				return false
			}
		case DimCity:
			if r.City != want {
				return false
			}
		case DimSong:
			if !r.HasSong(want) {
				return false
			}
		}
	}
	return true
}

// Apply returns the records that pass the filter, in their original order.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Include(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) String() string {
	const dateFormat = "2006-01-02"
	var sb strings.Builder
	start, end := "*", "*"
	if !f.Start.IsZero() {
		start = f.Start.Format(dateFormat)
	}
	if !f.End.IsZero() {
		end = f.End.Format(dateFormat)
	}
	fmt.Fprintf(&sb, "%s to %s", start, end)
	for _, dim := range Dimensions {
		if v, ok := f.Dimensions[dim]; ok {
			fmt.Fprintf(&sb, ", %s=%q", dim, v)
		}
	}
	return sb.String()
}
