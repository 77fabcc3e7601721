package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Column extracts column col from rows.
func Column(rows [][]float64, col int) []float64 {
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	return out
}

// PlotSeries draws one or more equally sampled series on a shared axis.
func PlotSeries(caption string, width, height int, series ...[]float64) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no data to plot")
	}
	for _, s := range series {
		if len(s) == 0 {
			return "", fmt.Errorf("no data to plot")
		}
	}

	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	}
	if len(series) > 1 {
		opts = append(opts, asciigraph.SeriesColors(colors[:min(len(series), len(colors))]...))
	}
	return asciigraph.PlotMany(series, opts...), nil
}
