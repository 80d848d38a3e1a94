package concert

import "sort"

const monthFormat = "2006-01"

// MonthlyBucket counts the concerts in one calendar month.
type MonthlyBucket struct {
	Month string `json:"month" yaml:"month"`
	Count int    `json:"count" yaml:"count"`
}

// YearlyBucket counts the concerts in one calendar year.
type YearlyBucket struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// MonthlyHistory buckets records by month, oldest first. Months without a
// concert are not emitted.
func MonthlyHistory(records []Record) []MonthlyBucket {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Date.Format(monthFormat)]++
	}

	buckets := make([]MonthlyBucket, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, MonthlyBucket{Month: month, Count: count})
	}
	// Zero-padded yyyy-mm sorts chronologically as a string.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// YearlyHistory buckets records by year, oldest first.
func YearlyHistory(records []Record) []YearlyBucket {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Date.Year()]++
	}

	buckets := make([]YearlyBucket, 0, len(counts))
	for year, count := range counts {
		buckets = append(buckets, YearlyBucket{Year: year, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Year < buckets[j].Year
	})
	return buckets
}
