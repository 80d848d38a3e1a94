package concert

import (
	"reflect"
	"testing"
	"time"
)

var testToday = date(2026, time.June, 2)

func TestDeriveViewsScenario(t *testing.T) {
	records := scenarioRecords()
	views := DeriveViews(records, DefaultFilter(testToday), DefaultOptions(testToday))

	wantSongs := []RankedCount{{Name: "Y", Count: 2}, {Name: "X", Count: 1}}
	if !reflect.DeepEqual(views.TopSongs, wantSongs) {
		t.Errorf("TopSongs = %+v, want %+v", views.TopSongs, wantSongs)
	}
	if len(views.VenueGroups) != 1 || views.VenueGroups[0].Location != "V1, C1" || views.VenueGroups[0].Count != 2 {
		t.Errorf("unexpected venue groups %+v", views.VenueGroups)
	}
	wantSummary := []SummaryRow{{City: "C1", Venue: "V1", Concerts: 2, UniqueArtists: 2, Songs: 3}}
	if !reflect.DeepEqual(views.Summary, wantSummary) {
		t.Errorf("Summary = %+v, want %+v", views.Summary, wantSummary)
	}
	if len(views.MonthlyHistory) != 1 || views.MonthlyHistory[0].Month != "2023-06" {
		t.Errorf("unexpected history %+v", views.MonthlyHistory)
	}
	// 2023-06-02 is exactly one year before today.
	if views.SongOfDay == nil || views.SongOfDay.Artist != "B" || views.SongOfDay.Song != "Y" {
		t.Errorf("unexpected song of the day %+v", views.SongOfDay)
	}
	if len(views.Concerts) != 2 || views.Concerts[0].Artist != "B" {
		t.Errorf("concerts should be newest first, got %+v", views.Concerts)
	}

	m := views.Metrics
	if m.Concerts != 2 || m.Songs != 3 || m.Artists != 2 || m.Venues != 1 || m.Years != 1 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if m.MinutesListened != 16.5 {
		t.Errorf("MinutesListened = %v, want 16.5", m.MinutesListened)
	}
}

func TestDeriveViewsEmptyRange(t *testing.T) {
	records := scenarioRecords()
	f := Filter{Start: date(2024, time.January, 1), End: date(2024, time.December, 31)}
	views := DeriveViews(records, f, DefaultOptions(testToday))

	if len(views.TopSongs) != 0 {
		t.Errorf("expected no top songs, got %+v", views.TopSongs)
	}
	if len(views.TopArtists) != 0 {
		t.Errorf("expected no top artists, got %+v", views.TopArtists)
	}
	if len(views.MonthlyHistory) != 0 {
		t.Errorf("expected no monthly buckets, got %+v", views.MonthlyHistory)
	}
	if views.SongOfDay != nil {
		t.Errorf("expected no song of the day, got %+v", views.SongOfDay)
	}
	if len(views.Summary) != 0 {
		t.Errorf("expected no summary rows, got %+v", views.Summary)
	}
	if len(views.VenueGroups) != 0 {
		t.Errorf("expected no venue groups, got %+v", views.VenueGroups)
	}
	if views.Metrics.Concerts != 0 || views.Metrics.MinutesListened != 0 {
		t.Errorf("expected zero metrics, got %+v", views.Metrics)
	}
}

func TestDeriveViewsIdempotent(t *testing.T) {
	records := append(scenarioRecords(), summaryFixture()...)
	f := DefaultFilter(testToday).With(DimCity, "Y")
	opts := DefaultOptions(testToday)

	first := DeriveViews(records, f, opts)
	second := DeriveViews(records, f, opts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("DeriveViews is not idempotent:\n%+v\n%+v", first, second)
	}

	seeded := func() Views {
		o := opts
		o.Picker = NewRandomPicker(7)
		return DeriveViews(records, f, o)
	}
	if !reflect.DeepEqual(seeded(), seeded()) {
		t.Errorf("same seed produced different views")
	}
}

func TestDeriveViewsDoesNotModifyRecords(t *testing.T) {
	records := append(scenarioRecords(), summaryFixture()...)
	before := make([]Record, len(records))
	for i, r := range records {
		before[i] = r
		before[i].Songs = append([]string(nil), r.Songs...)
	}

	DeriveViews(records, DefaultFilter(testToday), DefaultOptions(testToday))

	for i := range records {
		if records[i].Artist != before[i].Artist || !records[i].Date.Equal(before[i].Date) ||
			!reflect.DeepEqual(records[i].Songs, before[i].Songs) {
			t.Errorf("record %d modified: %+v -> %+v", i, before[i], records[i])
		}
	}
}

func TestDeriveViewsEqualsAggregatingFilteredSet(t *testing.T) {
	records := append(scenarioRecords(), summaryFixture()...)
	f := DefaultFilter(testToday).With(DimArtist, "A")
	opts := DefaultOptions(testToday)

	viaFilter := DeriveViews(records, f, opts)
	prefiltered := DeriveViews(f.Apply(records), Filter{}, opts)

	if !reflect.DeepEqual(viaFilter.TopSongs, prefiltered.TopSongs) ||
		!reflect.DeepEqual(viaFilter.TopArtists, prefiltered.TopArtists) ||
		!reflect.DeepEqual(viaFilter.MonthlyHistory, prefiltered.MonthlyHistory) ||
		!reflect.DeepEqual(viaFilter.VenueGroups, prefiltered.VenueGroups) ||
		!reflect.DeepEqual(viaFilter.Summary, prefiltered.Summary) ||
		!reflect.DeepEqual(viaFilter.SongOfDay, prefiltered.SongOfDay) {
		t.Errorf("views differ:\n%+v\n%+v", viaFilter, prefiltered)
	}
}

func TestSummaryInterludeHours(t *testing.T) {
	records := []Record{
		{Date: date(1990, time.March, 1), Songs: []string{"Jam", "Drums", "Space"}},
		{Date: date(1991, time.March, 1), Songs: []string{"drums"}},
		{Date: date(2020, time.March, 1), Songs: []string{"Ballad"}},
	}
	filtered := records[2:]

	m := Summary(filtered, records, ExcludeNamed("drums"), DefaultMinutesPerSong, DefaultInterludeMinutes)
	if m.InterludeShows != 2 {
		t.Errorf("InterludeShows = %d, want 2", m.InterludeShows)
	}
	if want := 2 * 9.5 / 60; m.InterludeHours != want {
		t.Errorf("InterludeHours = %v, want %v", m.InterludeHours, want)
	}
	if m.Concerts != 1 || m.Songs != 1 {
		t.Errorf("filtered metrics wrong: %+v", m)
	}
}
