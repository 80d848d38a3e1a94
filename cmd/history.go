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

var historyYearly bool
var historyCmd = &cobra.Command{
	Use:   "history [from (optional)] [to (optional)]",
	Short: "Counts concerts per month",
	Long:  `Counts concerts per calendar month, or per year with --yearly. Months without concerts are left out.`,
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printAnalysis(os.Stdout, HistoryAnalyzer{Yearly: historyYearly}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyYearly, "yearly", false, "group concerts by year instead of month")
}

type HistoryAnalyzer struct {
	Yearly bool
}

func (t HistoryAnalyzer) GetName() string {
	if t.Yearly {
		return "Concerts per year"
	}
	return "Concerts per month"
}

func (t HistoryAnalyzer) GetResults(d *dashboard) (analysis Analysis, err error) {
	total := 0
	if t.Yearly {
		analysis.results = [][]string{{"Year", "Concerts"}}
		for _, b := range concert.YearlyHistory(d.Filter.Apply(d.Records)) {
			analysis.results = append(analysis.results, []string{strconv.Itoa(b.Year), strconv.Itoa(b.Count)})
			total += b.Count
		}
	} else {
		analysis.results = [][]string{{"Month", "Concerts"}}
		for _, b := range d.views().MonthlyHistory {
			analysis.results = append(analysis.results, []string{b.Month, strconv.Itoa(b.Count)})
			total += b.Count
		}
	}
	analysis.summary = fmt.Sprintf("Found %d concerts in %d periods", total, len(analysis.results)-1)
	return
}
