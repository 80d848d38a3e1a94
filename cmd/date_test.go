/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestGetImplicitDateRange_year(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020", "2020-01-01", "2020-12-31")
}

func TestGetImplicitDateRange_month(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-02", "2020-02-01", "2020-02-29")
}

func TestGetImplicitDateRange_day(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01-01", "2020-01-01", "2020-01-01")
}

func TestGetImplicitDateRange_dayFirst(t *testing.T) {
	doTestGetImplicitDateRange(t, "01-06-2023", "2023-06-01", "2023-06-01")
}

func TestGetImplicitDateRange_invalid(t *testing.T) {
	tooMany := "2020-01-0123"
	_, _, err := getImplicitDateRange(tooMany)
	if err == nil {
		t.Fatalf("Expected error parsing %q", tooMany)
	}
	if !strings.Contains(err.Error(), "Invalid format") {
		t.Fatalf("Should have error with invalid format: %v", err)
	}

	letters := "not_real"
	_, _, err = getImplicitDateRange(letters)
	if err == nil {
		t.Fatalf("Expected error parsing %q", letters)
	}
	if !strings.Contains(err.Error(), "Invalid format") {
		t.Fatalf("Should have error with invalid format: %v", err)
	}

	if _, _, err = getImplicitDateRange("31-02-2023"); err == nil {
		t.Fatalf("Expected error parsing an impossible day-first date")
	}
}

func doTestGetImplicitDateRange(t *testing.T, ds string, startString string, endString string) {
	t.Helper()
	start, end, err := getImplicitDateRange(ds)
	if err != nil {
		t.Fatalf("getImplicitDateRange(%q): %v", ds, err)
	}

	expectedStart, err := time.Parse("2006-01-02", startString)
	if err != nil {
		t.Fatalf("Constructing expectedStart: %v", err)
	}

	expectedEnd, err := time.Parse("2006-01-02", endString)
	if err != nil {
		t.Fatalf("Constructing expectedEnd: %v", err)
	}

	if !start.Equal(expectedStart) {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	if !end.Equal(expectedEnd) {
		t.Fatalf("Expected end to be %q, got %q", expectedEnd, end)
	}
}

func TestGetExplicitDateRange_valid(t *testing.T) {
	start, end, err := getExplicitDateRange("2020", "2021-02")
	if err != nil {
		t.Fatalf("getExplicitDateRange: %v", err)
	}

	if want := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("Expected start to be %q, got %q", want, start)
	}

	// The end datestring is covered in full.
	if want := time.Date(2021, time.February, 28, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("Expected end to be %q, got %q", want, end)
	}
}

func TestGetExplicitDateRange_invalid(t *testing.T) {
	_, _, err := getExplicitDateRange("2020", "abc")
	if err == nil {
		t.Fatalf("Expected error when parsing invalid datestring")
	}

	_, _, err = getExplicitDateRange("2021", "2020")
	if err == nil {
		t.Fatalf("Expected error when end is before start")
	}
}

func TestParseSingleDatestring_Relative(t *testing.T) {
	fixed := time.Date(2026, time.March, 31, 15, 4, 5, 0, time.UTC)
	defer func(orig func() time.Time) { now = orig }(now)
	now = func() time.Time { return fixed }

	tests := []struct {
		input string
		want  time.Time
	}{
		{"30d", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"2w", time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)},
		{"1m", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{"10y", time.Date(2016, time.March, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		pd, err := parseSingleDatestring(tc.input)
		if err != nil {
			t.Errorf("parseSingleDatestring(%q) returned error: %v", tc.input, err)
			continue
		}
		if !pd.Date.Equal(tc.want) {
			t.Errorf("parseSingleDatestring(%q) = %v; want %v", tc.input, pd.Date, tc.want)
		}
	}

	start, end, err := getImplicitDateRange("30d")
	if err != nil {
		t.Fatalf("getImplicitDateRange(30d): %v", err)
	}
	if !start.Equal(tests[0].want) || !end.Equal(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("getImplicitDateRange(30d) = %v to %v", start, end)
	}
}
