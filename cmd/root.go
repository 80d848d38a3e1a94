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
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/concert-tools/internal/concert"
	"github.com/ademuri/concert-tools/internal/dataset"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "concert-tools",
	Short: "Shows statistics about the concerts you've been to",
	Long: `Loads a concert dataset (the JSON or CSV export of setlist.fm attended
concerts, or a SQLite dataset built with 'import') and prints top songs,
top artists, concert history, venues and summaries for a date range.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.concert-tools.yaml)")

	flags.StringP("data", "d", "", "Path to the concert dataset (.json, .csv or .db)")
	flags.String("venues", "", "YAML file mapping \"venue, city\" to coordinates")
	flags.String("start", "", "Only include concerts on or after this date")
	flags.String("end", "", "Only include concerts on or before this date (default today)")
	flags.String("artist", "", "Only include concerts by this artist")
	flags.String("venue", "", "Only include concerts at this venue")
	flags.String("city", "", "Only include concerts in this city")
	flags.String("song", "", "Only include concerts where this song was played")
	flags.StringSlice("exclude_song", []string{"drums"}, "Songs left out of the top songs (case-insensitive)")
	flags.Int("top_songs", 6, "Number of top songs to show")
	flags.Int("top_artists", 8, "Number of top artists to show")
	flags.String("grain", string(concert.GrainVenueCity), "Summary grouping: venue or venue-artist")
	flags.Bool("wrap_year", true, "Treat 31 Dec and 1 Jan as adjacent when picking the song of the day")
	flags.Uint64("seed", 0, "Seed for the song of the day (0 picks a new song every run)")
	flags.Int("song_index", -1, "Always pick this setlist position for the song of the day")
	flags.String("log_level", "warn", "Log level: debug, info, warn or error")

	for _, name := range []string{
		"data", "venues", "start", "end", "artist", "venue", "city", "song",
		"exclude_song", "top_songs", "top_artists", "grain", "wrap_year",
		"seed", "song_index", "log_level",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".concert-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".concert-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.PersistentFlags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// dashboard is everything a command needs to compute views: the loaded
// records and the filter and options built from flags and config.
type dashboard struct {
	Records []concert.Record
	Filter  concert.Filter
	Options concert.Options

	derived *concert.Views
}

// loadDashboard loads the dataset named by the "data" setting and builds
// the filter from flags, with positional date arguments taking precedence
// over --start and --end.
func loadDashboard(args []string) (*dashboard, error) {
	logger := newLogger(viper.GetString("log_level"))
	today := concert.Day(now())

	f, err := buildFilter(args, today)
	if err != nil {
		return nil, err
	}
	opts, err := buildOptions(today)
	if err != nil {
		return nil, err
	}

	records, err := loadRecords(viper.GetString("data"), logger)
	if err != nil {
		return nil, err
	}

	if path := viper.GetString("venues"); path != "" {
		gaz, err := dataset.LoadGazetteer(path)
		if err != nil {
			return nil, err
		}
		opts.Gazetteer = gaz
		logger.Info("loaded venue coordinates", "path", path, "venues", len(gaz))
	}

	logger.Debug("filter", "filter", f.String())
	return &dashboard{Records: records, Filter: f, Options: opts}, nil
}

func loadRecords(path string, logger *slog.Logger) ([]concert.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("required flag(s) \"data\" not set")
	}

	raw, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	records, rejected := concert.Normalize(raw)
	for _, r := range rejected {
		logger.Warn("skipping concert with unparseable date",
			"index", r.Index, "date", r.Raw.Date, "artist", r.Raw.Artist, "error", r.Err)
	}
	logger.Info("loaded dataset", "path", path, "concerts", len(records), "skipped", len(rejected))
	return records, nil
}

func buildFilter(args []string, today time.Time) (concert.Filter, error) {
	f := concert.DefaultFilter(today)

	if s := viper.GetString("start"); s != "" {
		d, err := parseSingleDatestring(s)
		if err != nil {
			return f, fmt.Errorf("--start: %w", err)
		}
		f.Start = d.Date
	}
	if s := viper.GetString("end"); s != "" {
		d, err := parseSingleDatestring(s)
		if err != nil {
			return f, fmt.Errorf("--end: %w", err)
		}
		f.End = d.Last()
	}
	if len(args) > 0 {
		start, end, err := parseDateRangeFromArgs(args)
		if err != nil {
			return f, err
		}
		f.Start, f.End = start, end
	}

	for _, dim := range concert.Dimensions {
		if v := viper.GetString(string(dim)); v != "" {
			f = f.With(dim, v)
		}
	}
	return f, nil
}

func buildOptions(today time.Time) (concert.Options, error) {
	opts := concert.DefaultOptions(today)
	opts.TopSongs = viper.GetInt("top_songs")
	opts.TopArtists = viper.GetInt("top_artists")
	opts.ExcludeSongs = viper.GetStringSlice("exclude_song")
	opts.WrapYear = viper.GetBool("wrap_year")

	grain, err := concert.ParseGrain(viper.GetString("grain"))
	if err != nil {
		return opts, fmt.Errorf("--grain: %w", err)
	}
	opts.Grain = grain

	if i := viper.GetInt("song_index"); i >= 0 {
		opts.Picker = concert.IndexPicker(i)
	} else {
		seed := viper.GetUint64("seed")
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		opts.Picker = concert.NewRandomPicker(seed)
	}
	return opts, nil
}
