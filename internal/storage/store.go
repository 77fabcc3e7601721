package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/numlab/internal/experiment"
	"github.com/sirupsen/logrus"
)

const (
	metadataFile = "metadata.json"
	tableFile    = "table.csv"
)

type Store struct {
	baseDir string
	logger  logrus.FieldLogger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, logger: logrus.StandardLogger()}
}

func (s *Store) WithLogger(logger logrus.FieldLogger) *Store {
	s.logger = logger
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Method    string             `json:"method"`
	Function  string             `json:"function"`
	Timestamp time.Time          `json:"timestamp"`
	A         float64            `json:"a"`
	B         float64            `json:"b"`
	Step      float64            `json:"step,omitempty"`
	Y0        float64            `json:"y0,omitempty"`
	Nodes     int                `json:"nodes,omitempty"`
	Points    int                `json:"points,omitempty"`
	Rows      int                `json:"rows"`
	ElapsedMS float64            `json:"elapsed_ms"`
	Metrics   map[string]Number  `json:"metrics"`
}

// Table is a stored comparison table.
type Table struct {
	Columns []string
	Rows    [][]float64
}

func newMetadata(id string, now time.Time, res *experiment.Result) RunMetadata {
	cfg := res.Config
	return RunMetadata{
		ID:        id,
		Kind:      string(cfg.Kind),
		Method:    cfg.Method,
		Function:  cfg.Function,
		Timestamp: now,
		A:         cfg.A,
		B:         cfg.B,
		Step:      cfg.Step,
		Y0:        cfg.Y0,
		Nodes:     cfg.Nodes,
		Points:    cfg.Points,
		Rows:      len(res.Rows),
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
		Metrics:   toNumbers(res.Metrics),
	}
}

// Save writes res under <kind>_<method>_<unix>, adding a numeric suffix
// when a run with that ID already exists.
func (s *Store) Save(res *experiment.Result) (string, error) {
	now := time.Now()
	base := fmt.Sprintf("%s_%s_%d", res.Config.Kind, res.Config.Method, now.Unix())

	runID, runDir, err := s.mkRunDir(base)
	if err != nil {
		return "", err
	}

	if err := writeRun(runDir, newMetadata(runID, now, res), res); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			s.logger.WithError(rmErr).WithField("run", runID).Warn("failed to remove partial run")
		}
		return "", fmt.Errorf("save run %s: %w", runID, err)
	}

	s.logger.WithField("run", runID).Debugf("saved %d rows to %s", len(res.Rows), runDir)
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, res *experiment.Result) error {
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, tableFile))
	if err != nil {
		return err
	}
	if err := WriteCSV(csvFile, res.Columns, res.Rows); err != nil {
		csvFile.Close()
		return err
	}
	return csvFile.Close()
}

func (s *Store) mkRunDir(base string) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	id := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

// WriteCSV writes a header row followed by rows in the shortest form
// that parses back to the same float64. Every row must be as wide as
// the header.
func WriteCSV(out io.Writer, columns []string, rows [][]float64) error {
	w := csv.NewWriter(out)
	if err := w.Write(columns); err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row %d has %d values, want %d", i+1, len(row), len(columns))
		}
		record := make([]string, len(row))
		for j, val := range row {
			record[j] = strconv.FormatFloat(val, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.WithError(err).WithField("dir", entry.Name()).Debug("skipping run")
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadTable(runID string) (*Table, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, tableFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	table := &Table{
		Columns: records[0],
		Rows:    make([][]float64, 0, len(records)-1),
	}
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s row %d: %w", runID, i+1, err)
			}
			row[j] = val
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// LoadResult rebuilds a result from the stored metadata and table.
func (s *Store) LoadResult(runID string) (*experiment.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	table, err := s.LoadTable(runID)
	if err != nil {
		return nil, err
	}

	return &experiment.Result{
		Config: experiment.Config{
			Kind:     experiment.Kind(meta.Kind),
			Method:   meta.Method,
			Function: meta.Function,
			A:        meta.A,
			B:        meta.B,
			Step:     meta.Step,
			Y0:       meta.Y0,
			Nodes:    meta.Nodes,
			Points:   meta.Points,
		},
		Columns: table.Columns,
		Rows:    table.Rows,
		Metrics: fromNumbers(meta.Metrics),
		Elapsed: time.Duration(meta.ElapsedMS * float64(time.Millisecond)),
	}, nil
}

func (s *Store) RunDir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}
