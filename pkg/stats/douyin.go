package stats

import (
	"encoding/json"
	"fmt"
	"os"
)

// DouyinYearStats accumulates one calendar year of video activity.
type DouyinYearStats struct {
	PostCount        int
	TotalLikes       int
	TotalCollections int
	TotalComments    int
	TotalShares      int
}

// LoadDouyin reads a douyin export: a single JSON array of post
// objects.
func LoadDouyin(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open douyin export: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode douyin export: %w", err)
	}
	return records, nil
}

// AggregateDouyin folds records into per-year totals. The fold is a
// plain per-field sum, so record order never affects the result.
// Years with no records do not appear in the table. A timestamp or
// engagement field that exists but cannot be coerced aborts the whole
// pass.
func AggregateDouyin(records []Record) (map[int]*DouyinYearStats, error) {
	table := make(map[int]*DouyinYearStats)

	for _, rec := range records {
		year, err := createYear(rec)
		if err != nil {
			return nil, err
		}

		ys := table[year]
		if ys == nil {
			ys = &DouyinYearStats{}
			table[year] = ys
		}

		likes, err := engagementCount(rec, "liked_count")
		if err != nil {
			return nil, err
		}
		collections, err := engagementCount(rec, "collected_count")
		if err != nil {
			return nil, err
		}
		comments, err := engagementCount(rec, "comment_count")
		if err != nil {
			return nil, err
		}
		shares, err := engagementCount(rec, "share_count")
		if err != nil {
			return nil, err
		}

		ys.PostCount++
		ys.TotalLikes += likes
		ys.TotalCollections += collections
		ys.TotalComments += comments
		ys.TotalShares += shares
	}

	return table, nil
}
