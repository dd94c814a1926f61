package artifact

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mediastats/pkg/stats"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteDouyinCSV(t *testing.T) {
	table := map[int]*stats.DouyinYearStats{
		2021: {PostCount: 1, TotalLikes: 7, TotalShares: 1},
		2019: {PostCount: 2, TotalLikes: 15, TotalCollections: 1, TotalComments: 2, TotalShares: 3},
	}

	path := filepath.Join(t.TempDir(), "douyin.csv")
	if err := WriteDouyinCSV(table, path); err != nil {
		t.Fatalf("WriteDouyinCSV() error = %v", err)
	}

	rows := readCSV(t, path)
	want := [][]string{
		{"Year", "Post Count", "Total Likes", "Total Collections", "Total Comments", "Total Shares"},
		{"2019", "2", "15", "1", "2", "3"},
		{"2021", "1", "7", "0", "0", "1"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

// TestWriteDouyinCSVRoundTrip verifies that re-parsing the CSV
// recovers the same year-to-value mapping with column order intact.
func TestWriteDouyinCSVRoundTrip(t *testing.T) {
	table := map[int]*stats.DouyinYearStats{
		2018: {PostCount: 4, TotalLikes: 100, TotalCollections: 5, TotalComments: 20, TotalShares: 8},
	}

	path := filepath.Join(t.TempDir(), "douyin.csv")
	if err := WriteDouyinCSV(table, path); err != nil {
		t.Fatalf("WriteDouyinCSV() error = %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if got, want := rows[1], []string{"2018", "4", "100", "5", "20", "8"}; !reflect.DeepEqual(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
}

func TestWriteWeiboCSV(t *testing.T) {
	counts := map[int]int{2021: 1, 2019: 2}

	path := filepath.Join(t.TempDir(), "weibo.csv")
	if err := WriteWeiboCSV(counts, path); err != nil {
		t.Fatalf("WriteWeiboCSV() error = %v", err)
	}

	rows := readCSV(t, path)
	want := [][]string{
		{"Year", "Post Count"},
		{"2019", "2"},
		{"2021", "1"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestWriteWeiboReadsCSV(t *testing.T) {
	table := map[int]*stats.WeiboYearStats{
		2020: {PostCount: 3, ReadsCount: 4234},
		2018: {PostCount: 1, ReadsCount: 3000},
	}

	path := filepath.Join(t.TempDir(), "weibo.csv")
	if err := WriteWeiboReadsCSV(table, path); err != nil {
		t.Fatalf("WriteWeiboReadsCSV() error = %v", err)
	}

	rows := readCSV(t, path)
	want := [][]string{
		{"Year", "Post Count", "Reads Count"},
		{"2018", "1", "3000"},
		{"2020", "3", "4234"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}
