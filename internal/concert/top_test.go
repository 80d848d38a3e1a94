package concert

import (
	"reflect"
	"testing"
	"time"
)

func scenarioRecords() []Record {
	records, _ := Normalize([]RawRecord{
		{Date: "01-06-2023", Artist: "A", Venue: "V1", City: "C1", Songs: "X, Y"},
		{Date: "02-06-2023", Artist: "B", Venue: "V1", City: "C1", Songs: "Y"},
	})
	return records
}

func TestTopSongsScenario(t *testing.T) {
	got := TopN(scenarioRecords(), BySong, ExcludeNamed("drums"), 6)
	want := []RankedCount{{Name: "Y", Count: 2}, {Name: "X", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN = %+v, want %+v", got, want)
	}
}

func TestTopNExclusionIgnoresCaseButCountingDoesNot(t *testing.T) {
	records := []Record{
		{Songs: []string{"Drums", "Space", "song"}},
		{Songs: []string{"drums", "Song", "", "Space"}},
		{Songs: []string{" DRUMS", "Space"}},
	}

	got := TopN(records, BySong, ExcludeNamed("Drums"), 0)
	want := []RankedCount{
		{Name: "Space", Count: 3},
		{Name: "song", Count: 1},
		{Name: "Song", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN = %+v, want %+v", got, want)
	}
}

func TestTopNCapAndOrdering(t *testing.T) {
	var records []Record
	add := func(artist string, n int) {
		for i := 0; i < n; i++ {
			records = append(records, Record{Artist: artist, Date: date(2020, time.January, i+1)})
		}
	}
	add("Tie-1", 2)
	add("Most", 5)
	add("Tie-2", 2)
	add("Least", 1)
	add("Tie-3", 2)

	got := TopN(records, ByArtist, nil, 3)
	want := []RankedCount{
		{Name: "Most", Count: 5},
		{Name: "Tie-1", Count: 2},
		{Name: "Tie-2", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN = %+v, want %+v", got, want)
	}

	all := TopN(records, ByArtist, nil, 0)
	if len(all) != 5 {
		t.Fatalf("n=0 should return every artist, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Count < all[i].Count {
			t.Errorf("not sorted by count: %+v before %+v", all[i-1], all[i])
		}
	}

	again := TopN(records, ByArtist, nil, 0)
	if !reflect.DeepEqual(all, again) {
		t.Errorf("TopN is not deterministic: %+v vs %+v", all, again)
	}
}

func TestTopNEmpty(t *testing.T) {
	got := TopN(nil, BySong, nil, 6)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil ranking, got %#v", got)
	}
}

func TestTopNSelectors(t *testing.T) {
	records := scenarioRecords()
	if got := TopN(records, ByVenue, nil, 0); len(got) != 1 || got[0].Count != 2 {
		t.Errorf("ByVenue: unexpected %+v", got)
	}
	if got := TopN(records, ByCity, nil, 0); len(got) != 1 || got[0].Name != "C1" {
		t.Errorf("ByCity: unexpected %+v", got)
	}
	if got := TopN(records, ByArtist, nil, 8); len(got) != 2 || got[0].Name != "A" {
		t.Errorf("ByArtist: unexpected %+v", got)
	}
}
