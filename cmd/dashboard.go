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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var defaultSections = []string{"metrics", "song-of-day", "top-songs", "top-artists", "history", "venues", "summary", "concerts"}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [from (optional)] [to (optional)]",
	Short: "Prints every dashboard section for a date range",
	Long: `Prints the headline metrics followed by each section in --sections.
  Sections are one or more of: metrics, song-of-day, top-songs, top-artists, history, yearly, venues, summary, concerts.
  --params are matched to sections by index (e.g. --params '' --params '' --params 'n=20').`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		sections, _ := cmd.Flags().GetStringSlice("sections")
		params, _ := cmd.Flags().GetStringArray("params")
		err := printDashboard(os.Stdout, sections, params, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringSlice("sections", defaultSections, "Sections to print, in order")
	dashboardCmd.Flags().StringArray("params", nil, "Parameters for sections, matched by index (e.g. --params 'n=20')")
}

func printDashboard(out io.Writer, sections []string, params []string, args []string) error {
	if len(params) > 0 && len(params) != len(sections) {
		return fmt.Errorf("Number of --params flags (%d) must match number of sections (%d), or be 0", len(params), len(sections))
	}

	actions := make([]Analyser, 0, len(sections))
	for i, name := range sections {
		action, err := getActionFromName(name)
		if err != nil {
			return err
		}
		if i < len(params) {
			if configurable, ok := action.(Configurable); ok {
				if err := configurable.Configure(parseParams(params[i])); err != nil {
					return fmt.Errorf("configuring %s (index %d): %w", name, i, err)
				}
			}
		}
		actions = append(actions, action)
	}

	d, err := loadDashboard(args)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Concerts %s\n\n", d.Filter)
	for _, action := range actions {
		analysis, err := action.GetResults(d)
		if err != nil {
			return fmt.Errorf("%s: %w", action.GetName(), err)
		}
		fmt.Fprintf(out, "%s\n%s\n", action.GetName(), analysis)
	}
	return nil
}

type MetricsAnalyzer struct{}

func (t MetricsAnalyzer) GetName() string {
	return "Metrics"
}

func (t MetricsAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	m := d.views().Metrics
	analysis.results = [][]string{
		{"Metric", "Value"},
		{"Concerts", strconv.Itoa(m.Concerts)},
		{"Songs", strconv.Itoa(m.Songs)},
		{"Minutes listened", strconv.FormatFloat(m.MinutesListened, 'f', 1, 64)},
		{"Artists", strconv.Itoa(m.Artists)},
		{"Venues", strconv.Itoa(m.Venues)},
		{"Cities", strconv.Itoa(m.Cities)},
		{"Years", strconv.Itoa(m.Years)},
		{"Interlude shows", strconv.Itoa(m.InterludeShows)},
		{"Interlude hours", strconv.FormatFloat(m.InterludeHours, 'f', 1, 64)},
	}
	return
}
