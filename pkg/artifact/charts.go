package artifact

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mediastats/pkg/stats"
)

// yearAxis merges both sources' year sets into one sorted axis. The
// aggregation tables are sparse, so charting reindexes them here with
// zero-fill for missing years.
func yearAxis(douyin map[int]*stats.DouyinYearStats, weibo map[int]int) []int {
	seen := make(map[int]struct{})
	for year := range douyin {
		seen[year] = struct{}{}
	}
	for year := range weibo {
		seen[year] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

func axisLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, year := range years {
		labels[i] = strconv.Itoa(year)
	}
	return labels
}

func lineData(values []int) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// WriteYearlyChartsHTML renders the combined report page: a dual-series
// chart of yearly douyin/weibo post counts and a four-series chart of
// douyin engagement totals, both over the shared zero-filled year axis.
func WriteYearlyChartsHTML(douyin map[int]*stats.DouyinYearStats, weibo map[int]int, path string) error {
	years := yearAxis(douyin, weibo)

	douyinPosts := make([]int, len(years))
	weiboPosts := make([]int, len(years))
	likes := make([]int, len(years))
	collections := make([]int, len(years))
	comments := make([]int, len(years))
	shares := make([]int, len(years))
	for i, year := range years {
		if ys := douyin[year]; ys != nil {
			douyinPosts[i] = ys.PostCount
			likes[i] = ys.TotalLikes
			collections[i] = ys.TotalCollections
			comments[i] = ys.TotalComments
			shares[i] = ys.TotalShares
		}
		weiboPosts[i] = weibo[year]
	}

	postLine := charts.NewLine()
	postLine.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "年度视频/帖子数量统计"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Left: "left"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "年份"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "数量"}),
	)
	postLine.SetXAxis(axisLabels(years)).
		AddSeries("抖音视频数", lineData(douyinPosts)).
		AddSeries("微博帖子数", lineData(weiboPosts))

	engagementLine := charts.NewLine()
	engagementLine.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "年度互动数据统计 (抖音)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Left: "left"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "年份"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "数量"}),
	)
	engagementLine.SetXAxis(axisLabels(years)).
		AddSeries("总点赞数", lineData(likes)).
		AddSeries("总收藏数", lineData(collections)).
		AddSeries("总评论数", lineData(comments)).
		AddSeries("总分享数", lineData(shares))

	page := components.NewPage()
	page.AddCharts(postLine, engagementLine)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

// WriteReadsChartHTML renders the dual-axis chart of weibo posts (left
// axis) against reads (right axis), dropping years before startYear.
// The CSV table keeps every year; only the chart is filtered.
func WriteReadsChartHTML(table map[int]*stats.WeiboYearStats, startYear int, path string) error {
	var years []int
	for _, year := range slices.Sorted(maps.Keys(table)) {
		if year >= startYear {
			years = append(years, year)
		}
	}

	posts := make([]int, len(years))
	reads := make([]int, len(years))
	for i, year := range years {
		posts[i] = table[year].PostCount
		reads[i] = table[year].ReadsCount
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "微博年度发帖数与阅读数统计"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Left: "left"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "年份"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "发帖数"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "阅读数", Type: "value"})
	line.SetXAxis(axisLabels(years)).
		AddSeries("微博发帖数", lineData(posts)).
		AddSeries("微博阅读数", lineData(reads), charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render reads chart: %w", err)
	}
	return nil
}
