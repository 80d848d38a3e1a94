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

	"github.com/spf13/cobra"

	"github.com/ademuri/concert-tools/internal/concert"
)

var topSongsNumber int
var topSongsCmd = &cobra.Command{
	Use:   "top-songs [from (optional)] [to (optional)]",
	Short: "Gets the most played songs",
	Long: `Uses the specified date or date range, or everything up to today. Date strings look like
'yyyy', 'yyyy-mm', 'yyyy-mm-dd', 'dd-mm-yyyy' or '30d'. Songs in --exclude_song are left out.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		config := AnalyserConfig{NumToReturn: topSongsNumber}
		err := printAnalysis(os.Stdout, TopSongsAnalyzer{}.SetConfig(config), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topSongsCmd)

	topSongsCmd.Flags().IntVarP(&topSongsNumber, "number", "n", 0, "number of results to return (default --top_songs)")
}

type TopSongsAnalyzer struct {
	Config AnalyserConfig
}

func (t TopSongsAnalyzer) SetConfig(config AnalyserConfig) TopSongsAnalyzer {
	t.Config = config
	return t
}

func (t *TopSongsAnalyzer) Configure(params map[string]string) error {
	return configureRanked(&t.Config, params)
}

func (t TopSongsAnalyzer) GetName() string {
	return "Top songs"
}

func (t TopSongsAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	config := t.Config
	if config.NumToReturn == 0 {
		config.NumToReturn = d.Options.TopSongs
	}

	filtered := d.Filter.Apply(d.Records)
	ranked := concert.TopN(filtered, concert.BySong, concert.ExcludeNamed(d.Options.ExcludeSongs...), 0)
	analysis.results = rankedResults("Song", ranked, config)
	analysis.summary = fmt.Sprintf("Found %d songs in %d concerts (%s)", len(ranked), len(filtered), d.Filter)
	return
}
