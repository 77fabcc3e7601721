// Package export renders stored comparison tables as SVG line charts.
package export

import (
	"fmt"
	"html"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Series is one curve of a chart.
type Series struct {
	Name   string
	Y      []float64
	Stroke string
}

var defaultStrokes = []string{"#00ffff", "#ff00ff", "#ffcc00", "#00ff88"}

// TableSeries picks the series to draw from a comparison table: every
// column between the leading x column and the trailing delta column.
// Tables without an x column (integrals) have nothing to draw.
func TableSeries(columns []string, rows [][]float64) ([]float64, []Series, error) {
	if len(columns) < 3 || columns[0] != "x" {
		return nil, nil, fmt.Errorf("table has no x column")
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 rows, got %d", len(rows))
	}

	xs := column(rows, 0)
	series := make([]Series, 0, len(columns)-2)
	for c := 1; c < len(columns)-1; c++ {
		series = append(series, Series{
			Name:   columns[c],
			Y:      column(rows, c),
			Stroke: defaultStrokes[(c-1)%len(defaultStrokes)],
		})
	}
	return xs, series, nil
}

func column(rows [][]float64, c int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row[c]
	}
	return out
}

// ChartToSVG draws each series against xs with 10% padding on both axes.
func ChartToSVG(xs []float64, series []Series, width, height int) (string, error) {
	if len(xs) < 2 {
		return "", fmt.Errorf("need at least 2 points, got %d", len(xs))
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no series to draw")
	}

	for _, s := range series {
		if len(s.Y) != len(xs) {
			return "", fmt.Errorf("series %s has %d points, want %d", s.Name, len(s.Y), len(xs))
		}
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := series[0].Y[0], series[0].Y[0]
	for _, s := range series {
		minY = min(minY, floats.Min(s.Y))
		maxY = max(maxY, floats.Max(s.Y))
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for i, s := range series {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, html.EscapeString(s.Stroke))
		for j, y := range s.Y {
			px := (xs[j] - minX) / rangeX * float64(width)
			py := float64(height) - (y-minY)/rangeY*float64(height)
			if j == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", px, py)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", px, py)
			}
		}
		sb.WriteString("\"/>\n")
		fmt.Fprintf(&sb, `<text x="10" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 20+16*i, html.EscapeString(s.Stroke), html.EscapeString(s.Name))
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}
