package automation

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of runs.
type Scenario struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Steps       []config.Config `yaml:"steps"`
}

// LoadScenario loads a scenario from a YAML file. Fields a step omits
// take the defaults of its kind.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Name        string      `yaml:"name"`
		Description string      `yaml:"description"`
		Steps       []yaml.Node `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	scenario := &Scenario{Name: raw.Name, Description: raw.Description}
	for i, node := range raw.Steps {
		var head struct {
			Kind string `yaml:"kind"`
		}
		if err := node.Decode(&head); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		step := config.DefaultFor(head.Kind)
		if err := node.Decode(step); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		scenario.Steps = append(scenario.Steps, *step)
	}
	return scenario, nil
}

// RunScenario executes the steps in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, runner *experiment.Runner, logger logrus.FieldLogger) ([]*experiment.Result, error) {
	results := make([]*experiment.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Infof("running step %d/%d: %s %s on %s", i+1, len(scenario.Steps), step.Kind, step.Method, step.Function)

		if err := step.Validate(); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		result, err := runner.Run(ctx, step.Experiment())
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// Sweep varies one run parameter linearly over [Min, Max].
type Sweep struct {
	Base     experiment.Config
	Param    string
	Min, Max float64
	NumSteps int
	// Workers bounds concurrent runs; <= 0 means one per value.
	Workers int
}

// SweepParams lists the parameters a sweep can vary.
var SweepParams = []string{"step", "nodes", "b", "y0"}

type SweepResult struct {
	ParamValue  float64
	MaxAbsError float64
	RMSError    float64
	Rows        int
}

// RunSweep executes the sweep concurrently; results are ordered by
// parameter value.
func RunSweep(ctx context.Context, sweep *Sweep, runner *experiment.Runner) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 values, got %d", sweep.NumSteps)
	}
	if _, err := apply(sweep.Base, sweep.Param, sweep.Min); err != nil {
		return nil, err
	}

	paramStep := (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	results := make([]SweepResult, sweep.NumSteps)

	g, ctx := errgroup.WithContext(ctx)
	if sweep.Workers > 0 {
		g.SetLimit(sweep.Workers)
	}
	for i := 0; i < sweep.NumSteps; i++ {
		value := sweep.Min + float64(i)*paramStep
		g.Go(func() error {
			cfg, err := apply(sweep.Base, sweep.Param, value)
			if err != nil {
				return err
			}
			result, err := runner.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", sweep.Param, value, err)
			}
			results[i] = SweepResult{
				ParamValue:  value,
				MaxAbsError: result.Metrics["max_abs_error"],
				RMSError:    result.Metrics["rms_error"],
				Rows:        len(result.Rows),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func apply(cfg experiment.Config, param string, value float64) (experiment.Config, error) {
	switch param {
	case "step":
		cfg.Step = value
	case "nodes":
		cfg.Nodes = int(math.Round(value))
	case "b":
		cfg.B = value
	case "y0":
		cfg.Y0 = value
	default:
		return cfg, fmt.Errorf("unknown sweep parameter: %s (available: %v)", param, SweepParams)
	}
	return cfg, nil
}
