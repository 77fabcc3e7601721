package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/numlab/internal/experiment"
)

type ExportData struct {
	Kind     string             `json:"kind"`
	Method   string             `json:"method"`
	Function string             `json:"function"`
	A        float64            `json:"a"`
	B        float64            `json:"b"`
	Step     float64            `json:"step,omitempty"`
	Y0       float64            `json:"y0,omitempty"`
	Nodes    int                `json:"nodes,omitempty"`
	Columns  []string           `json:"columns"`
	Rows     [][]Number         `json:"rows"`
	Metrics  map[string]Number  `json:"metrics"`
}

func newExportData(res *experiment.Result) ExportData {
	cfg := res.Config
	return ExportData{
		Kind:     string(cfg.Kind),
		Method:   cfg.Method,
		Function: cfg.Function,
		A:        cfg.A,
		B:        cfg.B,
		Step:     cfg.Step,
		Y0:       cfg.Y0,
		Nodes:    cfg.Nodes,
		Columns:  res.Columns,
		Rows:     numberRows(res.Rows),
		Metrics:  toNumbers(res.Metrics),
	}
}

// ExportJSON writes res to path; an empty path or "-" means stdout.
func ExportJSON(path string, res *experiment.Result) error {
	if path == "" || path == "-" {
		return EncodeJSON(os.Stdout, res)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeJSON(file, res); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func EncodeJSON(w io.Writer, res *experiment.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(res))
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
