package config

import (
	"math"
	"sort"
)

var Presets = map[string]map[string]*Config{
	"integral": {
		"sine": {
			Kind: "integral", Method: "simpson", Function: "sin",
			A: 0, B: math.Pi / 2, Step: 0.001,
		},
		"coarse": {
			Kind: "integral", Method: "trapezoidal", Function: "sin",
			A: 0, B: math.Pi / 2, Step: math.Pi / 16,
		},
		"arctan": {
			Kind: "integral", Method: "simpson", Function: "1/(1+x^2)",
			A: 0, B: 1, Step: 0.01,
		},
	},
	"ode": {
		"linear": {
			Kind: "ode", Method: "runge_kutta", Function: "linear",
			A: 0, B: 2, Step: 0.25, Y0: 0,
		},
		"euler": {
			Kind: "ode", Method: "euler", Function: "linear",
			A: 0, B: 2, Step: 0.25, Y0: 0,
		},
		"logistic": {
			Kind: "ode", Method: "rk4", Function: "logistic",
			A: 0, B: 10, Step: 0.1, Y0: 0.01,
		},
	},
	"interpolation": {
		"sin-cos2": {
			Kind: "interpolation", Method: "newton", Function: "sin-cos2",
			A: 0, B: 1, Nodes: 10, Points: 30,
		},
		"runge": {
			Kind: "interpolation", Method: "lagrange", Function: "runge",
			A: -1, B: 1, Nodes: 10, Points: 30,
		},
	},
}

func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
