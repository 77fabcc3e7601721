package automation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/numlab/internal/experiment"
	"github.com/sirupsen/logrus"
)

func quiet() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRunner() *experiment.Runner {
	return experiment.NewRunner(experiment.NewRegistry()).WithLogger(quiet())
}

const scenarioYAML = `
name: drivers
description: the three classic driver programs
steps:
  - kind: integral
    function: sin
    step: 0.001
  - kind: ode
    method: euler
  - kind: interpolation
    nodes: 6
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Name != "drivers" || len(s.Steps) != 3 {
		t.Fatalf("unexpected scenario %+v", s)
	}

	ode := s.Steps[1]
	if ode.Method != "euler" || ode.Function != "linear" || ode.B != 2 || ode.Step != 0.25 {
		t.Errorf("ode step should keep kind defaults, got %+v", ode)
	}
	interp := s.Steps[2]
	if interp.Nodes != 6 || interp.Method != "newton" {
		t.Errorf("unexpected interpolation step %+v", interp)
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadScenario(writeScenario(t, "steps: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestRunScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}

	results, err := RunScenario(context.Background(), s, newRunner(), quiet())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if got := len(results[1].Rows); got != 9 {
		t.Errorf("expected 9 ODE rows, got %d", got)
	}
	if got := len(results[2].Rows); got != 19 {
		t.Errorf("expected 3N+1 = 19 interpolation rows, got %d", got)
	}
}

func TestRunScenario_StopsAtFailure(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, `
steps:
  - kind: integral
  - kind: ode
    a: 3
  - kind: integral
`))
	if err != nil {
		t.Fatal(err)
	}

	results, err := RunScenario(context.Background(), s, newRunner(), quiet())
	if err == nil || !strings.Contains(err.Error(), "step 2") {
		t.Fatalf("expected step 2 failure, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 completed result, got %d", len(results))
	}
}

func TestRunSweep_Step(t *testing.T) {
	sweep := &Sweep{
		Base: experiment.Config{
			Kind: experiment.KindODE, Method: "runge_kutta", Function: "linear", A: 0, B: 2,
		},
		Param:    "step",
		Min:      0.125,
		Max:      0.5,
		NumSteps: 4,
		Workers:  2,
	}

	results, err := RunSweep(context.Background(), sweep, newRunner())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if results[0].ParamValue != 0.125 || results[3].ParamValue != 0.5 {
		t.Errorf("unexpected parameter values %v .. %v", results[0].ParamValue, results[3].ParamValue)
	}
	if results[0].MaxAbsError >= results[3].MaxAbsError {
		t.Errorf("a smaller step should give a smaller error: %v >= %v", results[0].MaxAbsError, results[3].MaxAbsError)
	}
}

func TestRunSweep_Nodes(t *testing.T) {
	sweep := &Sweep{
		Base: experiment.Config{
			Kind: experiment.KindInterpolation, Method: "lagrange", Function: "sin-cos2", A: 0, B: 1,
		},
		Param:    "nodes",
		Min:      2,
		Max:      8,
		NumSteps: 4,
	}

	results, err := RunSweep(context.Background(), sweep, newRunner())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i, want := range []int{7, 13, 19, 25} {
		if results[i].Rows != want {
			t.Errorf("nodes=%v: expected %d rows, got %d", results[i].ParamValue, want, results[i].Rows)
		}
	}
}

func TestRunSweep_Errors(t *testing.T) {
	base := experiment.Config{Kind: experiment.KindODE, Method: "euler", Function: "linear", A: 0, B: 2, Step: 0.1}

	tests := []struct {
		name  string
		sweep Sweep
	}{
		{"too few values", Sweep{Base: base, Param: "step", Min: 0.1, Max: 0.2, NumSteps: 1}},
		{"unknown parameter", Sweep{Base: base, Param: "theta", Min: 0, Max: 1, NumSteps: 3}},
		{"failing run", Sweep{Base: base, Param: "b", Min: -1, Max: 1, NumSteps: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunSweep(context.Background(), &tt.sweep, newRunner()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
