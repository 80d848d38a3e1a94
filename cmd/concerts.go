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

var concertsCmd = &cobra.Command{
	Use:   "concerts [from (optional)] [to (optional)]",
	Short: "Lists concerts, most recent first",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printAnalysis(os.Stdout, ConcertsAnalyzer{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(concertsCmd)
}

type ConcertsAnalyzer struct{}

func (t ConcertsAnalyzer) GetName() string {
	return "Concerts"
}

func (t ConcertsAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	concerts := d.views().Concerts
	analysis.results = [][]string{{"Date", "Artist", "Venue", "City", "Songs"}}
	for _, c := range concerts {
		analysis.results = append(analysis.results, []string{
			c.Date.Format("2006-01-02"), c.Artist, c.Venue, c.City, strconv.Itoa(len(c.Songs)),
		})
	}
	analysis.summary = fmt.Sprintf("Found %d concerts (%s)", len(concerts), d.Filter)
	return
}
