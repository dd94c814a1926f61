package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"mediastats/pkg/stats"
)

func renderedDoc(t *testing.T, path string) (*goquery.Document, string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return doc, string(data)
}

func TestWriteYearlyChartsHTML(t *testing.T) {
	douyin := map[int]*stats.DouyinYearStats{
		2019: {PostCount: 2, TotalLikes: 15, TotalShares: 3},
	}
	weibo := map[int]int{2021: 1}

	path := filepath.Join(t.TempDir(), "yearly.html")
	if err := WriteYearlyChartsHTML(douyin, weibo, path); err != nil {
		t.Fatalf("WriteYearlyChartsHTML() error = %v", err)
	}

	doc, html := renderedDoc(t, path)

	// one container per chart: post counts and engagement
	if got := doc.Find("div.item").Length(); got != 2 {
		t.Errorf("chart containers = %d, want 2", got)
	}
	for _, series := range []string{"抖音视频数", "微博帖子数", "总点赞数", "总收藏数", "总评论数", "总分享数"} {
		if !strings.Contains(html, series) {
			t.Errorf("rendered page missing series %q", series)
		}
	}
	// shared year axis covers both sources
	for _, year := range []string{"2019", "2021"} {
		if !strings.Contains(html, year) {
			t.Errorf("rendered page missing year %q on the axis", year)
		}
	}
}

func TestWriteReadsChartHTML(t *testing.T) {
	table := map[int]*stats.WeiboYearStats{
		2017: {PostCount: 9, ReadsCount: 900},
		2020: {PostCount: 3, ReadsCount: 4234},
		2022: {PostCount: 5, ReadsCount: 15000},
	}

	path := filepath.Join(t.TempDir(), "reads.html")
	if err := WriteReadsChartHTML(table, 2018, path); err != nil {
		t.Fatalf("WriteReadsChartHTML() error = %v", err)
	}

	doc, html := renderedDoc(t, path)

	if got := doc.Find("div.item").Length(); got != 1 {
		t.Errorf("chart containers = %d, want 1", got)
	}
	for _, series := range []string{"微博发帖数", "微博阅读数"} {
		if !strings.Contains(html, series) {
			t.Errorf("rendered chart missing series %q", series)
		}
	}
	if strings.Contains(html, "2017") {
		t.Error("rendered chart contains 2017, want years before the start year dropped")
	}
	if !strings.Contains(html, "2020") || !strings.Contains(html, "2022") {
		t.Error("rendered chart missing years at or after the start year")
	}
}

func TestWriteRegionMapHTML(t *testing.T) {
	counts := map[string]int{"北京市": 99, "广西壮族自治区": 1}

	path := filepath.Join(t.TempDir(), "map.html")
	if err := WriteRegionMapHTML(counts, path); err != nil {
		t.Fatalf("WriteRegionMapHTML() error = %v", err)
	}

	doc, html := renderedDoc(t, path)

	if got := doc.Find("div.item").Length(); got != 1 {
		t.Errorf("chart containers = %d, want 1", got)
	}
	if !strings.Contains(html, "china") {
		t.Error("rendered map missing china map type")
	}
	for _, name := range []string{"北京市", "广西壮族自治区"} {
		if !strings.Contains(html, name) {
			t.Errorf("rendered map missing division %q", name)
		}
	}
	// tooltip keeps the raw count alongside the log-scaled series value
	if !strings.Contains(html, "99") {
		t.Error("rendered map missing raw count for the tooltip")
	}
}
