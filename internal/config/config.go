package config

import (
	"fmt"
	"os"

	"github.com/san-kum/numlab/internal/experiment"
	"gopkg.in/yaml.v3"
)

const (
	DefaultKind     = "integral"
	DefaultMethod   = "simpson"
	DefaultFunction = "sin"
	DefaultA        = 0.0
	DefaultB        = 1.5707963267948966 // π/2
	DefaultStep     = 0.01
	DefaultNodes    = 10
)

type Config struct {
	Kind     string  `yaml:"kind"`
	Method   string  `yaml:"method"`
	Function string  `yaml:"function"`
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`
	Step     float64 `yaml:"step"`
	Y0       float64 `yaml:"y0"`
	Nodes    int     `yaml:"nodes"`
	Points   int     `yaml:"points,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind:     DefaultKind,
		Method:   DefaultMethod,
		Function: DefaultFunction,
		A:        DefaultA,
		B:        DefaultB,
		Step:     DefaultStep,
		Nodes:    DefaultNodes,
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over a copy of base; keys missing from the file keep
// base's values. base itself is not modified.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultFor returns the defaults for a kind: the classic driver setup
// for ODEs and interpolation, DefaultConfig otherwise.
func DefaultFor(kind string) *Config {
	cfg := DefaultConfig()
	switch kind {
	case "ode":
		cfg.Kind = kind
		cfg.Method = "runge_kutta"
		cfg.Function = "linear"
		cfg.A, cfg.B = 0, 2
		cfg.Step = 0.25
	case "interpolation":
		cfg.Kind = kind
		cfg.Method = "newton"
		cfg.Function = "sin-cos2"
		cfg.A, cfg.B = 0, 1
	}
	return cfg
}

// Validate checks the fields the runner cannot default. Step and range
// errors are left to the numerical routines.
func (c *Config) Validate() error {
	if c.Method == "" {
		return fmt.Errorf("config: method is required")
	}
	if c.Function == "" {
		return fmt.Errorf("config: function is required")
	}
	return c.Experiment().Validate()
}

func (c *Config) Experiment() experiment.Config {
	return experiment.Config{
		Kind:     experiment.Kind(c.Kind),
		Method:   c.Method,
		Function: c.Function,
		A:        c.A,
		B:        c.B,
		Step:     c.Step,
		Y0:       c.Y0,
		Nodes:    c.Nodes,
		Points:   c.Points,
	}
}

// Clone returns a copy safe to modify without touching a preset.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
