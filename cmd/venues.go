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
)

var venuesCmd = &cobra.Command{
	Use:   "venues [from (optional)] [to (optional)]",
	Short: "Lists the venues concerts were seen at",
	Long: `Groups concerts by venue and city. Coordinates come from the --venues file,
which maps "venue, city" to lat and lng, and are left blank when unknown.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printAnalysis(os.Stdout, VenuesAnalyzer{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(venuesCmd)
}

type VenuesAnalyzer struct{}

func (t VenuesAnalyzer) GetName() string {
	return "Venues"
}

func (t VenuesAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	groups := d.views().VenueGroups
	located := 0
	analysis.results = [][]string{{"Venue", "City", "Concerts", "Lat", "Lng"}}
	for _, g := range groups {
		lat, lng := "", ""
		if g.Coordinates != nil {
			lat = strconv.FormatFloat(g.Coordinates.Lat, 'f', 4, 64)
			lng = strconv.FormatFloat(g.Coordinates.Lng, 'f', 4, 64)
			located++
		}
		analysis.results = append(analysis.results, []string{g.Venue, g.City, strconv.Itoa(g.Count), lat, lng})
	}
	analysis.summary = fmt.Sprintf("Found %d venues, %d with coordinates", len(groups), located)
	return
}
