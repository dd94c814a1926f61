package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteRegionMapHTML renders the choropleth of posting divisions. The
// series value is log10(count+1) so a handful of prolific divisions do
// not wash out the rest of the color scale; the tooltip shows the raw
// count per division.
func WriteRegionMapHTML(counts map[string]int, path string) error {
	data := make([]opts.MapData, 0, len(counts))
	var maxLog float64
	for name, count := range counts {
		logVal := math.Log10(float64(count) + 1)
		if logVal > maxLog {
			maxLog = logVal
		}
		data = append(data, opts.MapData{Name: name, Value: logVal})
	}

	rawJSON, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to encode tooltip counts: %w", err)
	}
	formatter := fmt.Sprintf(`function (params) {
		var counts = %s;
		var orig = counts[params.name] || 0;
		return params.name + ': ' + orig + ' 条';
	}`, rawJSON)

	mc := charts.NewMap()
	mc.RegisterMapType("china")
	mc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1400px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "微博发帖 IP 地图"}),
		charts.WithVisualMapOpts(opts.VisualMap{Max: float32(maxLog)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: opts.FuncOpts(formatter)}),
	)
	mc.AddSeries("发帖数 (log10)", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := mc.Render(f); err != nil {
		return fmt.Errorf("failed to render region map: %w", err)
	}
	return nil
}
