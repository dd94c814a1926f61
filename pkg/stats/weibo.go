package stats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxLineBytes bounds a single JSONL line. Long-form posts run a few
// kilobytes; one megabyte leaves plenty of slack.
const maxLineBytes = 1 << 20

// WeiboYearStats accumulates one calendar year of microblog activity.
type WeiboYearStats struct {
	PostCount  int
	ReadsCount int
}

// ScanWeiboPostCounts reads a weibo JSONL export and counts posts per
// year. Lines that fail to decode and records without a parseable
// created_at are skipped silently: corruption in the export is a
// data-quality issue, not a recoverable fault, and no skip counter is
// kept.
func ScanWeiboPostCounts(r io.Reader) (map[int]int, error) {
	counts := make(map[int]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		rec, err := decodeRecord(bytes.TrimSpace(sc.Bytes()))
		if err != nil {
			continue
		}
		year, ok := postYear(rec)
		if !ok {
			continue
		}
		counts[year]++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan weibo export: %w", err)
	}

	return counts, nil
}

// ScanWeiboYearStats reads a weibo JSONL export and accumulates both
// post and read counts per year, applying the reads_count fallback
// chain per record. Skip policy matches ScanWeiboPostCounts.
func ScanWeiboYearStats(r io.Reader) (map[int]*WeiboYearStats, error) {
	table := make(map[int]*WeiboYearStats)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		rec, err := decodeRecord(bytes.TrimSpace(sc.Bytes()))
		if err != nil {
			continue
		}
		year, ok := postYear(rec)
		if !ok {
			continue
		}

		ys := table[year]
		if ys == nil {
			ys = &WeiboYearStats{}
			table[year] = ys
		}
		ys.PostCount++
		ys.ReadsCount += readsCount(rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan weibo export: %w", err)
	}

	return table, nil
}
