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
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/concert-tools/internal/dataset"
	"github.com/ademuri/concert-tools/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <source.json|source.csv> <dataset.db>",
	Short: "Imports a concert export into a SQLite dataset",
	Long: `Reads a JSON or CSV concert export and adds its concerts to a SQLite dataset, creating it if needed.
Concerts already in the dataset are skipped, so the same export can be imported again.
The dataset can then be passed to every other command with --data.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := importDataset(os.Stdout, args[0], args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func importDataset(out io.Writer, srcPath string, dbPath string) error {
	logger := newLogger(viper.GetString("log_level"))

	format, err := dataset.DetectFormat(srcPath)
	if err != nil {
		return err
	}
	if format == dataset.FormatSQLite {
		return fmt.Errorf("import: %s is already a dataset", srcPath)
	}

	raw, err := dataset.Load(srcPath)
	if err != nil {
		return err
	}

	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer s.Close()

	source := filepath.Base(srcPath)
	added, err := s.ImportRecords(source, raw)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	logger.Info("imported", "source", source, "read", len(raw), "added", added)

	counts, err := s.CountConcerts()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	sources := make([]string, 0, len(counts))
	for src := range counts {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	fmt.Fprintf(out, "Added %d of %d concerts from %s\n", added, len(raw), source)
	for _, src := range sources {
		fmt.Fprintf(out, "  %s: %d concerts\n", src, counts[src])
	}
	return nil
}
