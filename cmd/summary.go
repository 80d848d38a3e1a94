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
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/concert-tools/internal/concert"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [from (optional)] [to (optional)]",
	Short: "Summarizes concerts per venue",
	Long: `Counts concerts, distinct artists and songs per venue and city, most concerts first.
With --grain venue-artist each artist at a venue gets its own row.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printAnalysis(os.Stdout, SummaryAnalyzer{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

type SummaryAnalyzer struct{}

func (t SummaryAnalyzer) GetName() string {
	return "Summary"
}

func (t SummaryAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	byArtist := d.Options.Grain == concert.GrainVenueCityArtist
	header := []string{"City", "Venue"}
	if byArtist {
		header = append(header, "Artist")
	}
	analysis.results = [][]string{append(header, "Concerts", "Artists", "Songs")}

	concerts, songs := 0, 0
	for _, row := range d.views().Summary {
		r := []string{row.City, row.Venue}
		if byArtist {
			r = append(r, row.Artist)
		}
		r = append(r, strconv.Itoa(row.Concerts), strconv.Itoa(row.UniqueArtists), strconv.Itoa(row.Songs))
		analysis.results = append(analysis.results, r)
		concerts += row.Concerts
		songs += row.Songs
	}
	analysis.summary = fmt.Sprintf("Total: %d concerts, %d songs", concerts, songs)
	return
}
