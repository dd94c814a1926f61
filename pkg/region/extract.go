package region

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
)

// markerRe anchors on the literal "posted from" marker and captures
// the first non-whitespace run after it.
var markerRe = regexp.MustCompile(`发布于\s*(\S+)`)

// maxLineBytes mirrors the JSONL line bound used by the stats scans.
const maxLineBytes = 1 << 20

// Extract pulls the division token following the 发布于 marker out of a
// location string and resolves it to a canonical display name. ok is
// false when the marker is absent or the token is not a recognized
// division.
func Extract(text string) (string, bool) {
	m := markerRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return Canonical(m[1])
}

// CountLocations scans a weibo JSONL export and tallies posts per
// canonical division. Undecodable lines, records whose ip_location is
// missing or not a string, and unrecognized locations contribute
// nothing, so the sum of the counts never exceeds the record count.
func CountLocations(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(sc.Bytes()), &rec); err != nil {
			continue
		}
		loc, ok := rec["ip_location"].(string)
		if !ok {
			continue
		}
		name, ok := Extract(loc)
		if !ok {
			continue
		}
		counts[name]++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan weibo export: %w", err)
	}

	return counts, nil
}
