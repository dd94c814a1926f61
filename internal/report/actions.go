// Package report implements the CLI actions that wire the aggregation
// pipeline to the artifact writers.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"mediastats/models"
	"mediastats/pkg/artifact"
	"mediastats/pkg/region"
	"mediastats/pkg/stats"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ReportAction runs the full combined report: douyin and weibo CSV
// tables, the yearly chart page as PDF, and the posting IP map as PDF.
func ReportAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DouyinInput == "" {
		return fmt.Errorf("config: douyin_input is required for the combined report")
	}

	logger.Info("loading douyin export", "path", cfg.DouyinInput)
	records, err := stats.LoadDouyin(cfg.DouyinInput)
	if err != nil {
		return err
	}
	douyinStats, err := stats.AggregateDouyin(records)
	if err != nil {
		return fmt.Errorf("failed to aggregate douyin export: %w", err)
	}

	douyinCSV := cfg.ArtifactPath("_yearly_stats_douyin.csv")
	if err := artifact.WriteDouyinCSV(douyinStats, douyinCSV); err != nil {
		return err
	}
	fmt.Printf("douyin statistics saved to %s\n", douyinCSV)

	logger.Info("scanning weibo export", "path", cfg.WeiboInput)
	weiboCounts, err := scanWeibo(cfg.WeiboInput, stats.ScanWeiboPostCounts)
	if err != nil {
		return err
	}

	weiboCSV := cfg.ArtifactPath("_yearly_stats_weibo.csv")
	if err := artifact.WriteWeiboCSV(weiboCounts, weiboCSV); err != nil {
		return err
	}
	fmt.Printf("weibo statistics saved to %s\n", weiboCSV)

	chartHTML := cfg.ArtifactPath("_yearly_stats.html")
	chartPDF := cfg.ArtifactPath("_yearly_stats.pdf")
	if err := artifact.WriteYearlyChartsHTML(douyinStats, weiboCounts, chartHTML); err != nil {
		return err
	}
	if err := artifact.ConvertHTMLToPDF(chartHTML, chartPDF, cfg.WkhtmltopdfPath); err != nil {
		return err
	}
	fmt.Printf("combined charts saved to %s\n", chartPDF)

	return renderRegionMap(cfg, logger)
}

// WeiboReportAction runs the extended weibo-only report: the
// posts+reads CSV, the dual-axis chart as PDF, and the posting IP map
// as PDF.
func WeiboReportAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	startYear := cfg.StartYear
	if c.IsSet("start-year") {
		startYear = c.Int("start-year")
	}

	logger.Info("scanning weibo export", "path", cfg.WeiboInput)
	table, err := scanWeibo(cfg.WeiboInput, stats.ScanWeiboYearStats)
	if err != nil {
		return err
	}

	weiboCSV := cfg.ArtifactPath("_yearly_stats_weibo.csv")
	if err := artifact.WriteWeiboReadsCSV(table, weiboCSV); err != nil {
		return err
	}
	fmt.Printf("weibo statistics saved to %s\n", weiboCSV)

	chartHTML := cfg.ArtifactPath("_post_reads_per_year.html")
	chartPDF := cfg.ArtifactPath("_post_reads_per_year.pdf")
	if err := artifact.WriteReadsChartHTML(table, startYear, chartHTML); err != nil {
		return err
	}
	if err := artifact.ConvertHTMLToPDF(chartHTML, chartPDF, cfg.WkhtmltopdfPath); err != nil {
		return err
	}
	fmt.Printf("posts/reads chart saved to %s\n", chartPDF)

	return renderRegionMap(cfg, logger)
}

// MapAction renders only the posting IP division map.
func MapAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return renderRegionMap(cfg, logger)
}

// renderRegionMap counts posting divisions from the weibo export and
// renders the choropleth. An empty count map skips rendering with a
// notice instead of producing an empty map.
func renderRegionMap(cfg *models.Config, logger *slog.Logger) error {
	f, err := os.Open(cfg.WeiboInput)
	if err != nil {
		return fmt.Errorf("failed to open weibo export: %w", err)
	}
	counts, err := region.CountLocations(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("no posts with a Chinese division IP location, skipping map rendering")
		return nil
	}
	logger.Info("rendering region map", "divisions", len(counts))

	mapHTML := cfg.ArtifactPath("_ip_location_chart.html")
	mapPDF := cfg.ArtifactPath("_ip_location_chart.pdf")
	if err := artifact.WriteRegionMapHTML(counts, mapHTML); err != nil {
		return err
	}
	fmt.Printf("region map saved to %s\n", mapHTML)

	if err := artifact.ConvertHTMLToPDF(mapHTML, mapPDF, cfg.WkhtmltopdfPath); err != nil {
		return err
	}
	fmt.Printf("region map saved to %s\n", mapPDF)
	return nil
}

// scanWeibo opens the JSONL export, runs one scan pass over it and
// releases the handle before returning.
func scanWeibo[T any](path string, scan func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open weibo export: %w", err)
	}
	defer f.Close()
	return scan(f)
}
