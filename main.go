package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"mediastats/internal/report"
)

func main() {
	app := &cli.App{
		Name:  "mediastats",
		Usage: "aggregate exported social-media activity into yearly statistics, charts and maps",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "combined run: douyin and weibo CSV tables, yearly charts and the posting IP map",
				Action: report.ReportAction,
			},
			{
				Name:  "weibo-report",
				Usage: "weibo-only run with read totals and a dual-axis posts/reads chart",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "start-year",
						Usage: "first year shown on the dual-axis chart (overrides config)",
					},
				},
				Action: report.WeiboReportAction,
			},
			{
				Name:   "map",
				Usage:  "render only the posting IP division map",
				Action: report.MapAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
