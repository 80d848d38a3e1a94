package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ademuri/concert-tools/internal/concert"
)

// ParsedDate is a date string's start date and the granularity it was
// written with.
type ParsedDate struct {
	Date  time.Time
	Year  bool
	Month bool
	Day   bool
}

// Last returns the last calendar day covered by the datestring, so that
// "2020" ends on 2020-12-31 and "2020-02" on 2020-02-29.
func (d ParsedDate) Last() time.Time {
	switch {
	case d.Year:
		return d.Date.AddDate(1, 0, -1)
	case d.Month:
		return d.Date.AddDate(0, 1, -1)
	}
	return d.Date
}

// now is swapped out by tests.
var now = time.Now

var (
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
	monthPattern    = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dayPattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayFirstPattern = regexp.MustCompile(`^\d{1,2}[-/.]\d{1,2}[-/.]\d{4}$`)
	relativePattern = regexp.MustCompile(`^(\d+)([dwmy])$`)
)

// parseDateRangeFromArgs turns one or two datestrings into an inclusive
// range of calendar days.
func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		start, end, err = getImplicitDateRange(args[0])

	case 2:
		start, end, err = getExplicitDateRange(args[0], args[1])

	default:
		err = fmt.Errorf("Expected one or two date arguments")
	}
	return
}

func getImplicitDateRange(ds string) (start time.Time, end time.Time, err error) {
	date, err := parseSingleDatestring(ds)
	if err != nil {
		return
	}

	start = date.Date
	switch {
	case date.Year, date.Month:
		end = date.Last()

	case date.Day:
		if relativePattern.MatchString(ds) {
			// "30d" means the last 30 days up to today
			end = concert.Day(now())
		} else {
			end = start
		}

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}

	return
}

func getExplicitDateRange(startString, endString string) (start time.Time, end time.Time, err error) {
	startParsed, err := parseSingleDatestring(startString)
	if err != nil {
		return
	}
	start = startParsed.Date

	endParsed, err := parseSingleDatestring(endString)
	if err != nil {
		return
	}
	end = endParsed.Last()

	if end.Before(start) {
		err = fmt.Errorf("End date %s is before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return
}

func parseSingleDatestring(ds string) (date ParsedDate, err error) {
	switch {
	case yearPattern.MatchString(ds):
		date.Date, err = time.Parse("2006", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as year: %w", err)
			return
		}
		date.Year = true

	case monthPattern.MatchString(ds):
		date.Date, err = time.Parse("2006-01", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as month: %w", err)
			return
		}
		date.Month = true

	case dayPattern.MatchString(ds):
		date.Date, err = time.Parse("2006-01-02", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as day: %w", err)
			return
		}
		date.Day = true

	case dayFirstPattern.MatchString(ds):
		// Same format as the dataset, e.g. 01-06-2023
		date.Date, err = concert.ParseDate(ds)
		if err != nil {
			return
		}
		date.Day = true

	case relativePattern.MatchString(ds):
		m := relativePattern.FindStringSubmatch(ds)
		var amount int
		amount, err = strconv.Atoi(m[1])
		if err != nil {
			err = fmt.Errorf("Parsing relative datestring: %w", err)
			return
		}
		today := concert.Day(now())
		switch m[2] {
		case "d":
			date.Date = today.AddDate(0, 0, -amount)
		case "w":
			date.Date = today.AddDate(0, 0, -amount*7)
		case "m":
			date.Date = today.AddDate(0, -amount, 0)
		case "y":
			date.Date = today.AddDate(-amount, 0, 0)
		}
		date.Day = true

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}
	return
}
