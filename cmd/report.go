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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/concert-tools/internal/concert"
)

var reportFormat string
var reportCmd = &cobra.Command{
	Use:   "report [from (optional)] [to (optional)]",
	Short: "Prints every view of the dashboard as YAML or JSON",
	Long:  `Derives every dashboard view for the date range and filters and writes them as one YAML (default) or JSON document.`,
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, reportFormat, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFormat, "format", "yaml", "Output format: yaml or json")
}

type report struct {
	concert.Views `yaml:",inline"`

	YearlyHistory []concert.YearlyBucket `json:"yearly_history" yaml:"yearly_history"`
}

func runReport(out io.Writer, format string, args []string) error {
	if format != "yaml" && format != "json" {
		return fmt.Errorf("Invalid format: %q", format)
	}

	d, err := loadDashboard(args)
	if err != nil {
		return err
	}

	r := report{
		Views:         d.views(),
		YearlyHistory: concert.YearlyHistory(d.Filter.Apply(d.Records)),
	}

	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
