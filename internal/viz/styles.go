package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FormatValue prints table cells the way the classic drivers did: fixed
// six decimals, switching to exponent form for tiny deviations.
func FormatValue(v float64) string {
	if v != 0 && math.Abs(v) < 1e-4 {
		return fmt.Sprintf("%.6e", v)
	}
	return fmt.Sprintf("%.6f", v)
}

// RenderTable draws columns and rows in a bordered table. A trailing
// "delta" column is colored by magnitude. maxRows <= 0 renders every row;
// otherwise the middle is elided.
func RenderTable(theme Theme, columns []string, rows [][]float64, maxRows int) string {
	deltaCol := -1
	if n := len(columns); n > 0 && columns[n-1] == "delta" {
		deltaCol = n - 1
	}

	visible, elided := elide(rows, maxRows)
	cells := make([][]string, 0, len(visible)+1)
	deltas := make([]float64, 0, len(visible)+1)
	for i, row := range visible {
		if elided > 0 && i == (maxRows+1)/2 {
			gap := make([]string, len(columns))
			gap[0] = fmt.Sprintf("… %d more", elided)
			cells = append(cells, gap)
			deltas = append(deltas, math.NaN())
		}
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = FormatValue(v)
		}
		cells = append(cells, record)
		if deltaCol >= 0 && deltaCol < len(row) {
			deltas = append(deltas, row[deltaCol])
		} else {
			deltas = append(deltas, math.NaN())
		}
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Muted)).
		Headers(columns...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == deltaCol && row >= 0 && row < len(deltas) && !math.IsNaN(deltas[row]) {
				return theme.severity(deltas[row]).Padding(0, 1)
			}
			return cell
		})
	return t.Render()
}

func elide(rows [][]float64, maxRows int) ([][]float64, int) {
	if maxRows <= 0 || len(rows) <= maxRows {
		return rows, 0
	}
	head := (maxRows + 1) / 2
	tail := maxRows - head
	visible := make([][]float64, 0, maxRows)
	visible = append(visible, rows[:head]...)
	visible = append(visible, rows[len(rows)-tail:]...)
	return visible, len(rows) - maxRows
}

// RenderMetrics lists metrics as "name value" lines sorted by name.
func RenderMetrics(theme Theme, metrics map[string]float64) string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(theme.label().Render(fmt.Sprintf("%-16s", name)))
		b.WriteString(theme.value().Render(FormatValue(metrics[name])))
		b.WriteString("\n")
	}
	return b.String()
}

// SparklineChart renders a one-line sparkline of values.
func SparklineChart(theme Theme, values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		b.WriteRune(chars[idx])
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(b.String())
}
