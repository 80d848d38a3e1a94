package concert

import (
	"reflect"
	"testing"
	"time"
)

func TestSummarizeScenario(t *testing.T) {
	got := Summarize(scenarioRecords(), GrainVenueCity)
	want := []SummaryRow{{City: "C1", Venue: "V1", Concerts: 2, UniqueArtists: 2, Songs: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func summaryFixture() []Record {
	return []Record{
		{Date: date(2020, time.May, 1), Artist: "A", Venue: "Small", City: "X", Songs: []string{"1"}},
		{Date: date(2020, time.May, 2), Artist: "A", Venue: "Big", City: "Y", Songs: []string{"1", "2", ""}},
		{Date: date(2020, time.May, 3), Artist: "B", Venue: "Big", City: "Y", Songs: []string{}},
		{Date: date(2020, time.May, 4), Artist: "A", Venue: "Big", City: "Y", Songs: []string{"3"}},
		{Date: date(2020, time.May, 5), Artist: "C", Venue: "Other", City: "Z", Songs: []string{"4", "5"}},
	}
}

func TestSummarizeVenueGrain(t *testing.T) {
	records := summaryFixture()
	got := Summarize(records, GrainVenueCity)
	want := []SummaryRow{
		{City: "Y", Venue: "Big", Concerts: 3, UniqueArtists: 2, Songs: 4},
		{City: "X", Venue: "Small", Concerts: 1, UniqueArtists: 1, Songs: 1},
		{City: "Z", Venue: "Other", Concerts: 1, UniqueArtists: 1, Songs: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
	checkSummaryTotals(t, records, got)
}

func TestSummarizeArtistGrain(t *testing.T) {
	records := summaryFixture()
	got := Summarize(records, GrainVenueCityArtist)
	want := []SummaryRow{
		{City: "Y", Venue: "Big", Artist: "A", Concerts: 2, UniqueArtists: 1, Songs: 4},
		{City: "X", Venue: "Small", Artist: "A", Concerts: 1, UniqueArtists: 1, Songs: 1},
		{City: "Y", Venue: "Big", Artist: "B", Concerts: 1, UniqueArtists: 1, Songs: 0},
		{City: "Z", Venue: "Other", Artist: "C", Concerts: 1, UniqueArtists: 1, Songs: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
	checkSummaryTotals(t, records, got)
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil, GrainVenueCity); len(got) != 0 {
		t.Errorf("expected no rows, got %+v", got)
	}
}

func checkSummaryTotals(t *testing.T, records []Record, rows []SummaryRow) {
	t.Helper()
	concerts, songs := 0, 0
	for _, row := range rows {
		concerts += row.Concerts
		songs += row.Songs
	}
	wantSongs := 0
	for _, r := range records {
		wantSongs += len(r.Songs)
	}
	if concerts != len(records) {
		t.Errorf("concert counts sum to %d, want %d", concerts, len(records))
	}
	if songs != wantSongs {
		t.Errorf("song counts sum to %d, want %d", songs, wantSongs)
	}
}

func TestParseGrain(t *testing.T) {
	if g, err := ParseGrain(""); err != nil || g != GrainVenueCity {
		t.Errorf("ParseGrain(\"\") = %q, %v", g, err)
	}
	if g, err := ParseGrain("Venue-Artist"); err != nil || g != GrainVenueCityArtist {
		t.Errorf("ParseGrain(Venue-Artist) = %q, %v", g, err)
	}
	if _, err := ParseGrain("city"); err == nil {
		t.Errorf("ParseGrain(city) should have failed")
	}
}
