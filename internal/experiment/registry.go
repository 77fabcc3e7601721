package experiment

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/numlab/internal/integrators"
	"github.com/san-kum/numlab/internal/interp"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
)

// Integrand is a test function with a closed-form antiderivative.
type Integrand struct {
	Name           string
	F              func(x float64) float64
	Antiderivative func(x float64) float64
}

// Exact returns the definite integral over [a, b].
func (i Integrand) Exact(a, b float64) float64 {
	return i.Antiderivative(b) - i.Antiderivative(a)
}

// Problem is a Cauchy problem with a known solution.
type Problem struct {
	Name string
	F    numeric.ODEFunc[float64]
	// Exact is the solution through (a, y0) evaluated at x.
	Exact func(x, a, y0 float64) float64
}

// Target is a function sampled for interpolation.
type Target struct {
	Name string
	F    func(x float64) float64
}

// InterpolatorFactory builds an evaluator over validated samples.
type InterpolatorFactory func(x, y []float64) (func(float64) float64, error)

type Registry struct {
	integrands    map[string]Integrand
	problems      map[string]Problem
	targets       map[string]Target
	rules         map[string]quadrature.Rule[float64]
	solvers       map[string]integrators.Solver[float64]
	interpolators map[string]InterpolatorFactory
}

func NewRegistry() *Registry {
	r := &Registry{
		integrands:    make(map[string]Integrand),
		problems:      make(map[string]Problem),
		targets:       make(map[string]Target),
		rules:         make(map[string]quadrature.Rule[float64]),
		solvers:       make(map[string]integrators.Solver[float64]),
		interpolators: make(map[string]InterpolatorFactory),
	}

	r.addIntegrand("sin", math.Sin, func(x float64) float64 { return -math.Cos(x) })
	r.addIntegrand("cos", math.Cos, math.Sin)
	r.addIntegrand("exp", math.Exp, math.Exp)
	r.addIntegrand("x^2", func(x float64) float64 { return x * x }, func(x float64) float64 { return x * x * x / 3 })
	r.addIntegrand("x^3", func(x float64) float64 { return x * x * x }, func(x float64) float64 { return x * x * x * x / 4 })
	r.addIntegrand("1/(1+x^2)", func(x float64) float64 { return 1 / (1 + x*x) }, math.Atan)
	r.addIntegrand("sin*cos", func(x float64) float64 { return math.Sin(x) * math.Cos(x) }, func(x float64) float64 {
		s := math.Sin(x)
		return s * s / 2
	})

	r.problems["linear"] = Problem{
		Name: "linear",
		F:    func(y, x float64) float64 { return 0.5*y + x },
		Exact: func(x, a, y0 float64) float64 {
			c := (y0 + 2*a + 4) * math.Exp(-0.5*a)
			return c*math.Exp(0.5*x) - 2*x - 4
		},
	}
	r.problems["decay"] = Problem{
		Name: "decay",
		F:    func(y, x float64) float64 { return -y },
		Exact: func(x, a, y0 float64) float64 {
			return y0 * math.Exp(-(x - a))
		},
	}
	r.problems["growth"] = Problem{
		Name: "growth",
		F:    func(y, x float64) float64 { return x * y },
		Exact: func(x, a, y0 float64) float64 {
			return y0 * math.Exp((x*x-a*a)/2)
		},
	}
	r.problems["logistic"] = Problem{
		Name: "logistic",
		F:    func(y, x float64) float64 { return y * (1 - y) },
		Exact: func(x, a, y0 float64) float64 {
			return y0 / (y0 + (1-y0)*math.Exp(-(x-a)))
		},
	}

	r.targets["sin-cos2"] = Target{Name: "sin-cos2", F: func(x float64) float64 { return math.Sin(x) * math.Cos(x*x) }}
	r.targets["runge"] = Target{Name: "runge", F: func(x float64) float64 { return 1 / (1 + 25*x*x) }}
	r.targets["cubic"] = Target{Name: "cubic", F: func(x float64) float64 { return 2*x*x*x - 5*x + 1 }}
	r.targets["exp"] = Target{Name: "exp", F: math.Exp}

	r.rules["left_rectangle"] = quadrature.LeftRectangle[float64]
	r.rules["trapezoidal"] = quadrature.Trapezoidal[float64]
	r.rules["simpson"] = quadrature.Simpson[float64]

	r.solvers["euler"] = integrators.EulerMethod[float64]
	r.solvers["runge_kutta"] = integrators.RungeKutta[float64]
	r.solvers["rk4"] = integrators.RungeKutta4[float64]

	r.interpolators["lagrange"] = func(x, y []float64) (func(float64) float64, error) {
		if err := interp.Validate(x, y); err != nil {
			return nil, err
		}
		return func(p float64) float64 { return interp.Lagrange(x, y, p) }, nil
	}
	r.interpolators["newton"] = func(x, y []float64) (func(float64) float64, error) {
		if err := interp.Validate(x, y); err != nil {
			return nil, err
		}
		return func(p float64) float64 { return interp.Newton(x, y, p) }, nil
	}
	r.interpolators["polynomial"] = func(x, y []float64) (func(float64) float64, error) {
		p, err := interp.NewPolynomial(x, y)
		if err != nil {
			return nil, err
		}
		return p.Eval, nil
	}

	return r
}

func (r *Registry) addIntegrand(name string, f, antiderivative func(float64) float64) {
	r.integrands[name] = Integrand{Name: name, F: f, Antiderivative: antiderivative}
}

func (r *Registry) GetIntegrand(name string) (Integrand, error) {
	in, ok := r.integrands[name]
	if !ok {
		return Integrand{}, fmt.Errorf("unknown integrand: %s", name)
	}
	return in, nil
}

func (r *Registry) GetProblem(name string) (Problem, error) {
	p, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return p, nil
}

func (r *Registry) GetTarget(name string) (Target, error) {
	t, ok := r.targets[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown interpolation target: %s", name)
	}
	return t, nil
}

func (r *Registry) GetRule(name string) (quadrature.Rule[float64], error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown quadrature rule: %s", name)
	}
	return rule, nil
}

func (r *Registry) GetSolver(name string) (integrators.Solver[float64], error) {
	s, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
	return s, nil
}

func (r *Registry) GetInterpolator(name string) (InterpolatorFactory, error) {
	f, ok := r.interpolators[name]
	if !ok {
		return nil, fmt.Errorf("unknown interpolator: %s", name)
	}
	return f, nil
}

// Functions lists the function names usable with kind, sorted.
func (r *Registry) Functions(kind Kind) []string {
	switch kind {
	case KindIntegral:
		return sortedKeys(r.integrands)
	case KindODE:
		return sortedKeys(r.problems)
	case KindInterpolation:
		return sortedKeys(r.targets)
	}
	return nil
}

// Methods lists the method names usable with kind, sorted.
func (r *Registry) Methods(kind Kind) []string {
	switch kind {
	case KindIntegral:
		return sortedKeys(r.rules)
	case KindODE:
		return sortedKeys(r.solvers)
	case KindInterpolation:
		return sortedKeys(r.interpolators)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
