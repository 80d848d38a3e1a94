// Package dataset reads the concert dataset and the venue gazetteer from
// disk. The dataset may be the JSON or CSV export of the setlist scraper or
// a SQLite file produced by the import command.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ademuri/concert-tools/internal/concert"
	"github.com/ademuri/concert-tools/internal/store"
)

var ErrUnknownFormat = errors.New("unknown dataset format")

type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads every raw record from path. Any failure is fatal for the
// whole file; per-record date problems are left to concert.Normalize.
func Load(path string) ([]concert.RawRecord, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == FormatSQLite {
		s, err := store.Open(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		defer s.Close()
		records, err := s.LoadRecords()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return records, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	defer f.Close()

	var records []concert.RawRecord
	switch format {
	case FormatJSON:
		records, err = ReadJSON(f)
	case FormatCSV:
		records, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}

// ReadJSON decodes an array of concert objects. Unknown fields such as
// artist_id or country are ignored and a null songs field reads as "".
func ReadJSON(r io.Reader) ([]concert.RawRecord, error) {
	var records []concert.RawRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if records == nil {
		records = []concert.RawRecord{}
	}
	return records, nil
}

var requiredColumns = []string{"date", "artist", "venue", "city"}

// ReadCSV reads a CSV file with a header row. Columns are matched by name;
// the songs column is optional.
func ReadCSV(r io.Reader) ([]concert.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("reading csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("reading csv: missing %q column", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]concert.RawRecord, 0)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}
		records = append(records, concert.RawRecord{
			Date:   field(row, "date"),
			Artist: field(row, "artist"),
			Venue:  field(row, "venue"),
			City:   field(row, "city"),
			Songs:  field(row, "songs"),
		})
	}
	return records, nil
}

// LoadGazetteer reads venue coordinates from a YAML mapping of
// "venue, city" to {lat, lng}.
func LoadGazetteer(path string) (concert.Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gazetteer: %w", err)
	}

	gaz := concert.Gazetteer{}
	if err := yaml.Unmarshal(data, &gaz); err != nil {
		return nil, fmt.Errorf("parsing gazetteer: %w", err)
	}
	return gaz, nil
}
