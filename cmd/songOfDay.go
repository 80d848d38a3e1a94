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
)

var songOfDayCmd = &cobra.Command{
	Use:   "song-of-day [from (optional)] [to (optional)]",
	Short: "Picks a song from the concert closest to today's date in any year",
	Long: `Finds the concert whose day of the year is closest to today and picks one of its songs.
Use --seed for a repeatable pick or --song_index to always take the same setlist position.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printAnalysis(os.Stdout, SongOfDayAnalyzer{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(songOfDayCmd)
}

type SongOfDayAnalyzer struct{}

func (t SongOfDayAnalyzer) GetName() string {
	return "Song of the day"
}

func (t SongOfDayAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	s := d.views().SongOfDay
	if s == nil {
		analysis.BodyOverride = "No setlists found."
		return
	}
	analysis.BodyOverride = fmt.Sprintf("%s\n%s, %s, %s (%s)",
		s.Song, s.Artist, s.Venue, s.City, s.Date.Format("2 January 2006"))
	return
}
