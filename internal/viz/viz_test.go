package viz

import (
	"io"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/sirupsen/logrus"
)

func newTestRunner() *experiment.Runner {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return experiment.NewRunner(experiment.NewRegistry()).WithLogger(logger)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Explorer, keys ...string) Explorer {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		m = updated.(Explorer)
	}
	return m
}

func odeConfig() experiment.Config {
	return experiment.Config{
		Kind: experiment.KindODE, Method: "euler", Function: "linear",
		A: 0, B: 2, Step: 0.25,
	}
}

func TestExplorer_StepKeys(t *testing.T) {
	m := NewExplorer(newTestRunner(), odeConfig())
	if m.Err() != nil {
		t.Fatalf("initial run failed: %v", m.Err())
	}
	first := m.Result().Metrics["max_abs_error"]

	m = press(t, m, "-")
	if m.Config().Step != 0.125 {
		t.Errorf("expected step 0.125, got %v", m.Config().Step)
	}
	if got := m.Result().Metrics["max_abs_error"]; got >= first {
		t.Errorf("halving the step should shrink the error: %v >= %v", got, first)
	}

	m = press(t, m, "+", "+")
	if m.Config().Step != 0.5 {
		t.Errorf("expected step 0.5, got %v", m.Config().Step)
	}
}

func TestExplorer_CycleMethodAndFunction(t *testing.T) {
	m := NewExplorer(newTestRunner(), odeConfig())

	m = press(t, m, "m")
	if m.Config().Method != "rk4" {
		t.Errorf("expected rk4 after euler, got %s", m.Config().Method)
	}
	m = press(t, m, "m", "m")
	if m.Config().Method != "euler" {
		t.Errorf("expected wrap to euler, got %s", m.Config().Method)
	}

	before := m.Config().Function
	m = press(t, m, "f")
	if m.Config().Function == before {
		t.Error("function did not change")
	}
}

func TestExplorer_InterpolationNodes(t *testing.T) {
	cfg := experiment.Config{
		Kind: experiment.KindInterpolation, Method: "newton", Function: "sin-cos2",
		A: 0, B: 1, Nodes: 4,
	}
	m := NewExplorer(newTestRunner(), cfg)

	m = press(t, m, "-")
	if m.Config().Nodes != 8 {
		t.Errorf("expected 8 nodes, got %d", m.Config().Nodes)
	}
	m = press(t, m, "+", "+", "+", "+")
	if m.Config().Nodes != 1 {
		t.Errorf("expected nodes to stop at 1, got %d", m.Config().Nodes)
	}
}

func TestExplorer_ErrorIsShown(t *testing.T) {
	cfg := odeConfig()
	cfg.B = -1
	m := NewExplorer(newTestRunner(), cfg)
	if m.Err() == nil {
		t.Fatal("expected an error for a reversed range")
	}
	if !strings.Contains(m.View(), "invalid integration range") {
		t.Error("view does not show the error")
	}
}

func TestExplorer_Quit(t *testing.T) {
	m := NewExplorer(newTestRunner(), odeConfig())
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestExplorer_View(t *testing.T) {
	m := NewExplorer(newTestRunner(), odeConfig())
	m = press(t, m, "-", "t")
	view := m.View()

	for _, want := range []string{"euler", "linear", "approx_y", "max_abs_error", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.Theme().Name != "retro" {
		t.Errorf("expected retro theme, got %s", m.Theme().Name)
	}
}

func TestNext(t *testing.T) {
	names := []string{"a", "b", "c"}
	tests := []struct{ cur, want string }{
		{"a", "b"},
		{"c", "a"},
		{"zzz", "a"},
	}
	for _, tt := range tests {
		if got := next(names, tt.cur); got != tt.want {
			t.Errorf("next(%q) = %q, want %q", tt.cur, got, tt.want)
		}
	}
	if got := next(nil, "x"); got != "x" {
		t.Errorf("next on empty list = %q, want x", got)
	}
}

func TestRenderTable(t *testing.T) {
	rows := make([][]float64, 20)
	for i := range rows {
		rows[i] = []float64{float64(i), 1, 1, 0}
	}
	out := RenderTable(ThemeTerminal, []string{"x", "f(x)", "P_n(x)", "delta"}, rows, 6)

	if !strings.Contains(out, "P_n(x)") {
		t.Error("header missing")
	}
	if !strings.Contains(out, "14 more") {
		t.Errorf("expected elision marker, got:\n%s", out)
	}
	if !strings.Contains(out, "19.000000") {
		t.Error("last row should stay visible")
	}
	if strings.Contains(out, "10.000000") {
		t.Error("middle rows should be elided")
	}
}

func TestElide(t *testing.T) {
	rows := [][]float64{{0}, {1}, {2}, {3}, {4}}

	got, n := elide(rows, 0)
	if len(got) != 5 || n != 0 {
		t.Errorf("maxRows 0 should keep all rows")
	}
	got, n = elide(rows, 3)
	if n != 2 || len(got) != 3 || got[0][0] != 0 || got[1][0] != 1 || got[2][0] != 4 {
		t.Errorf("unexpected elision %v (%d hidden)", got, n)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.000000"},
		{1.5, "1.500000"},
		{-0.25, "-0.250000"},
		{2.5e-7, "2.500000e-07"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPlotSeries(t *testing.T) {
	if _, err := PlotSeries("empty", 40, 5); err == nil {
		t.Error("expected error with no series")
	}
	if _, err := PlotSeries("empty", 40, 5, []float64{}); err == nil {
		t.Error("expected error with an empty series")
	}

	xs := make([]float64, 50)
	ys := make([]float64, 50)
	for i := range xs {
		xs[i] = math.Sin(float64(i) / 5)
		ys[i] = math.Cos(float64(i) / 5)
	}
	out, err := PlotSeries("sine", 40, 5, xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "sine") {
		t.Error("caption missing")
	}
}

func TestColumn(t *testing.T) {
	rows := [][]float64{{1, 2}, {3}, {5, 6}}
	got := Column(rows, 1)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Errorf("Column = %v", got)
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("expected fallback to the first theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
