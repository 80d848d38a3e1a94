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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/concert-tools/internal/concert"
)

type Analysis struct {
	results      [][]string
	summary      string
	BodyOverride string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int

	// Only return results seen more often than this. Default is all results.
	FilterThreshold int
}

type Analyser interface {
	GetResults(d *dashboard) (Analysis, error)

	GetName() string
}

type Configurable interface {
	Configure(params map[string]string) error
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	if a.BodyOverride != "" {
		fmt.Fprintln(out, a.BodyOverride)
	} else if len(a.results) <= 1 {
		fmt.Fprintln(out, "No concerts found.")
	} else {
		table := tablewriter.NewWriter(out)
		table.Header(a.results[0])
		for _, row := range a.results[1:] {
			if err := table.Append(row); err != nil {
				return fmt.Sprintf("Error rendering table: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if a.summary != "" {
		fmt.Fprintf(out, "%s\n", a.summary)
	}
	return out.String()
}

// views derives every view once per dashboard.
func (d *dashboard) views() concert.Views {
	if d.derived == nil {
		v := concert.DeriveViews(d.Records, d.Filter, d.Options)
		d.derived = &v
	}
	return *d.derived
}

func rankedResults(header string, ranked []concert.RankedCount, config AnalyserConfig) [][]string {
	results := [][]string{{"#", header, "Count"}}
	for i, r := range ranked {
		if config.NumToReturn > 0 && i >= config.NumToReturn {
			break
		}
		if config.FilterThreshold > 0 && r.Count <= config.FilterThreshold {
			continue
		}
		results = append(results, []string{strconv.Itoa(i + 1), r.Name, strconv.Itoa(r.Count)})
	}
	return results
}

func printAnalysis(out io.Writer, a Analyser, args []string) error {
	d, err := loadDashboard(args)
	if err != nil {
		return err
	}
	analysis, err := a.GetResults(d)
	if err != nil {
		return fmt.Errorf("%s: %w", a.GetName(), err)
	}
	fmt.Fprint(out, analysis)
	return nil
}

// parseParams turns "n=20,min=2" into a map. Pairs without "=" are ignored.
func parseParams(v string) map[string]string {
	params := make(map[string]string)
	if v == "" {
		return params
	}
	for _, pair := range strings.Split(v, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return params
}

func configureRanked(config *AnalyserConfig, params map[string]string) error {
	if val, ok := params["n"]; ok {
		v, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid n: %w", err)
		}
		config.NumToReturn = v
	}
	if val, ok := params["min"]; ok {
		v, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid min: %w", err)
		}
		config.FilterThreshold = v
	}
	return nil
}

func getActionFromName(actionName string) (Analyser, error) {
	actionMap := map[string]Analyser{
		"metrics":     MetricsAnalyzer{},
		"song-of-day": SongOfDayAnalyzer{},
		"top-songs":   &TopSongsAnalyzer{},
		"top-artists": &TopArtistsAnalyzer{},
		"history":     HistoryAnalyzer{},
		"yearly":      HistoryAnalyzer{Yearly: true},
		"venues":      VenuesAnalyzer{},
		"summary":     SummaryAnalyzer{},
		"concerts":    ConcertsAnalyzer{},
	}

	action, ok := actionMap[actionName]
	if !ok {
		return nil, fmt.Errorf("Invalid section: %s", actionName)
	}

	return action, nil
}
