package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

const testDataset = `[
  {"date": "01-06-2023", "artist": "Phish", "venue": "Madison Square Garden", "city": "New York", "songs": "Tweezer, Drums, Fluffhead"},
  {"date": "02-06-2023", "artist": "Phish", "venue": "Madison Square Garden", "city": "New York", "songs": "Tweezer, Harry Hood"},
  {"date": "15-12-2024", "artist": "Goose", "venue": "Red Rocks", "city": "Morrison", "songs": "Arcadia"},
  {"date": "sometime", "artist": "Unknown", "venue": "Nowhere", "city": "Nowhere", "songs": "Lost"},
  {"date": "01-01-2022", "artist": "Dead & Company", "venue": "Sphere", "city": "Las Vegas", "songs": ""}
]`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// setTestConfig points the commands at dataPath with every other setting at
// its flag default, and pins today to 2026-06-02.
func setTestConfig(t *testing.T, dataPath string) {
	t.Helper()
	viper.Reset()
	viper.Set("data", dataPath)
	viper.Set("exclude_song", []string{"drums"})
	viper.Set("top_songs", 6)
	viper.Set("top_artists", 8)
	viper.Set("grain", "venue")
	viper.Set("wrap_year", true)
	viper.Set("song_index", 0)
	viper.Set("log_level", "error")

	orig := now
	now = func() time.Time { return time.Date(2026, time.June, 2, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		now = orig
		viper.Reset()
	})
}
