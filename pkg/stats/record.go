// Package stats folds raw social-media export records into per-year
// statistics tables.
package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one decoded export entry. Numbers keep their json.Number
// form so integer and fractional inputs stay distinguishable.
type Record map[string]any

// weiboTimeLayout is the exact created_at format in weibo exports.
const weiboTimeLayout = "2006-01-02 15:04:05"

// DefaultReadsCount substitutes for a reads_count field that is
// entirely absent from a record.
const DefaultReadsCount = 3000

// decodeRecord decodes a single JSON object with UseNumber enabled.
func decodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// engagementCount reads an optional engagement field from a video
// record. An absent field counts as zero. A present value that cannot
// be coerced to an integer is a hard error: that means the export
// itself is corrupt, and the whole pass must fail rather than produce
// a silently wrong report. Fractional numbers coerce by truncation.
func engagementCount(rec Record, field string) (int, error) {
	v, ok := rec[field]
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %s: invalid number %q", field, n.String())
		}
		return int(f), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("field %s: cannot parse %q as an integer", field, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("field %s: unexpected type %T", field, v)
	}
}

// readsCount applies the reads_count fallback chain: an absent field
// defaults to DefaultReadsCount, a string is parsed after stripping
// thousands separators (non-digit remainders count as zero), and any
// other type counts as zero. The absent and unparseable cases
// deliberately get different defaults; the tests pin this down.
func readsCount(rec Record) int {
	v, ok := rec["reads_count"]
	if !ok {
		return DefaultReadsCount
	}
	switch n := v.(type) {
	case string:
		s := strings.ReplaceAll(n, ",", "")
		if s == "" {
			return 0
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0
			}
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return i
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			// fractional reads count, unusable
			return 0
		}
		return int(i)
	default:
		return 0
	}
}

// createYear derives the local-time calendar year from a video
// record's epoch create_time. The field is required; a record without
// a usable timestamp means the export is corrupt.
func createYear(rec Record) (int, error) {
	v, ok := rec["create_time"]
	if !ok {
		return 0, fmt.Errorf("record is missing create_time")
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("field create_time: unexpected type %T", v)
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("field create_time: invalid number %q", n.String())
	}
	return time.Unix(int64(f), 0).Year(), nil
}

// postYear derives the calendar year from a weibo record's created_at
// field. ok is false when the record should be skipped: the field is
// missing, empty, not a string, or not in the expected layout.
func postYear(rec Record) (int, bool) {
	v, ok := rec["created_at"]
	if !ok {
		return 0, false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return 0, false
	}
	t, err := time.Parse(weiboTimeLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
