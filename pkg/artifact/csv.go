// Package artifact writes the report outputs: CSV tables, chart and
// map HTML pages, and their PDF conversions.
package artifact

import (
	"encoding/csv"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"mediastats/pkg/stats"
)

// WriteDouyinCSV writes the per-year video statistics table, one row
// per year present, ascending.
func WriteDouyinCSV(table map[int]*stats.DouyinYearStats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Year", "Post Count", "Total Likes", "Total Collections", "Total Comments", "Total Shares"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, year := range slices.Sorted(maps.Keys(table)) {
		ys := table[year]
		row := []string{
			strconv.Itoa(year),
			strconv.Itoa(ys.PostCount),
			strconv.Itoa(ys.TotalLikes),
			strconv.Itoa(ys.TotalCollections),
			strconv.Itoa(ys.TotalComments),
			strconv.Itoa(ys.TotalShares),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %d: %w", year, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteWeiboCSV writes the basic per-year post count table.
func WriteWeiboCSV(counts map[int]int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Year", "Post Count"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, year := range slices.Sorted(maps.Keys(counts)) {
		if err := w.Write([]string{strconv.Itoa(year), strconv.Itoa(counts[year])}); err != nil {
			return fmt.Errorf("failed to write row for %d: %w", year, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteWeiboReadsCSV writes the extended per-year post and read count
// table.
func WriteWeiboReadsCSV(table map[int]*stats.WeiboYearStats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Year", "Post Count", "Reads Count"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, year := range slices.Sorted(maps.Keys(table)) {
		ys := table[year]
		if err := w.Write([]string{strconv.Itoa(year), strconv.Itoa(ys.PostCount), strconv.Itoa(ys.ReadsCount)}); err != nil {
			return fmt.Errorf("failed to write row for %d: %w", year, err)
		}
	}
	w.Flush()
	return w.Error()
}
