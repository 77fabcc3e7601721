package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/numlab/internal/experiment"
)

const (
	explorerRows   = 12
	historyLimit   = 64
	plotWidth      = 60
	plotHeight     = 10
	sparklineWidth = 30
)

// Explorer reruns an experiment on every key press so the effect of the
// step, method and function can be seen directly.
type Explorer struct {
	runner    *experiment.Runner
	cfg       experiment.Config
	methods   []string
	functions []string
	theme     int

	result  *experiment.Result
	err     error
	history []float64
	width   int
}

func NewExplorer(runner *experiment.Runner, cfg experiment.Config) Explorer {
	reg := runner.Registry()
	m := Explorer{
		runner:    runner,
		cfg:       cfg,
		methods:   reg.Methods(cfg.Kind),
		functions: reg.Functions(cfg.Kind),
		width:     80,
	}
	m.rerun()
	return m
}

func (m Explorer) Config() experiment.Config  { return m.cfg }
func (m Explorer) Result() *experiment.Result { return m.result }
func (m Explorer) Err() error                 { return m.err }
func (m Explorer) Theme() Theme               { return Themes[m.theme] }

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "-", "_":
		m.refine()
	case "+", "=":
		m.coarsen()
	case "m":
		m.cfg.Method = next(m.methods, m.cfg.Method)
	case "f":
		m.cfg.Function = next(m.functions, m.cfg.Function)
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		return m, nil
	default:
		return m, nil
	}
	m.rerun()
	return m, nil
}

func (m *Explorer) refine() {
	if m.cfg.Kind == experiment.KindInterpolation {
		m.cfg.Nodes *= 2
		if m.cfg.Points > 0 {
			m.cfg.Points *= 2
		}
		return
	}
	m.cfg.Step /= 2
}

func (m *Explorer) coarsen() {
	if m.cfg.Kind == experiment.KindInterpolation {
		if m.cfg.Nodes > 1 {
			m.cfg.Nodes /= 2
			m.cfg.Points /= 2
		}
		return
	}
	m.cfg.Step *= 2
}

func (m *Explorer) rerun() {
	m.result, m.err = m.runner.Run(context.Background(), m.cfg)
	if m.err != nil {
		return
	}
	m.history = append(m.history, m.result.Metrics["max_abs_error"])
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// next returns the entry after cur in names, wrapping around.
func next(names []string, cur string) string {
	if len(names) == 0 {
		return cur
	}
	for i, n := range names {
		if n == cur {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (m Explorer) View() string {
	theme := m.Theme()
	var b strings.Builder

	b.WriteString(theme.title().Render("numlab explorer"))
	b.WriteString("  ")
	b.WriteString(theme.value().Render(fmt.Sprintf("%s / %s / %s", m.cfg.Kind, m.cfg.Method, m.cfg.Function)))
	b.WriteString("\n")
	b.WriteString(theme.label().Render(m.describe()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(theme.severity(1).Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.result != nil {
		b.WriteString(RenderTable(theme, m.result.Columns, m.result.Rows, explorerRows))
		b.WriteString("\n\n")
		b.WriteString(RenderMetrics(theme, m.result.Metrics))

		if len(m.result.Rows) > 1 {
			graph, err := PlotSeries("approximation vs reference", min(plotWidth, m.width-10), plotHeight,
				Column(m.result.Rows, 1), Column(m.result.Rows, 2))
			if err == nil {
				b.WriteString("\n")
				b.WriteString(graph)
				b.WriteString("\n")
			}
		}
	}

	if len(m.history) > 1 {
		b.WriteString("\n")
		b.WriteString(theme.label().Render("error history "))
		b.WriteString(SparklineChart(theme, m.history, sparklineWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.keyHint().Render("-/+ step  m method  f function  t theme  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Explorer) describe() string {
	if m.cfg.Kind == experiment.KindInterpolation {
		return fmt.Sprintf("[%g, %g]  nodes=%d", m.cfg.A, m.cfg.B, m.cfg.Nodes)
	}
	return fmt.Sprintf("[%g, %g]  step=%g", m.cfg.A, m.cfg.B, m.cfg.Step)
}

// RunExplorer starts the explorer on the terminal.
func RunExplorer(runner *experiment.Runner, cfg experiment.Config) error {
	p := tea.NewProgram(NewExplorer(runner, cfg))
	_, err := p.Run()
	return err
}
