package metrics

import "math"

// Metric accumulates a statistic over (approximation, reference) pairs.
type Metric interface {
	Name() string
	Observe(approx, exact float64)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the error metrics reported for a run.
func Defaults() []Metric {
	return []Metric{
		NewMaxAbsError(),
		NewMeanAbsError(),
		NewRMSError(),
	}
}

type MaxAbsError struct {
	name string
	max  float64
}

func NewMaxAbsError() *MaxAbsError {
	return &MaxAbsError{name: "max_abs_error"}
}

func (m *MaxAbsError) Name() string { return m.name }

// Observe records |approx - exact|. A NaN difference makes the metric NaN
// for good; math.Max alone would keep it.
func (m *MaxAbsError) Observe(approx, exact float64) {
	d := math.Abs(approx - exact)
	if math.IsNaN(d) || math.IsNaN(m.max) {
		m.max = math.NaN()
		return
	}
	m.max = math.Max(m.max, d)
}

func (m *MaxAbsError) Value() float64 { return m.max }

func (m *MaxAbsError) Reset() { m.max = 0 }

type MeanAbsError struct {
	name    string
	sum     float64
	samples int
}

func NewMeanAbsError() *MeanAbsError {
	return &MeanAbsError{name: "mean_abs_error"}
}

func (m *MeanAbsError) Name() string { return m.name }

func (m *MeanAbsError) Observe(approx, exact float64) {
	m.sum += math.Abs(approx - exact)
	m.samples++
}

func (m *MeanAbsError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanAbsError) Reset() {
	m.sum = 0
	m.samples = 0
}

type RMSError struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMSError() *RMSError {
	return &RMSError{name: "rms_error"}
}

func (r *RMSError) Name() string { return r.name }

func (r *RMSError) Observe(approx, exact float64) {
	d := approx - exact
	r.sumSq += d * d
	r.samples++
}

func (r *RMSError) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSError) Reset() {
	r.sumSq = 0
	r.samples = 0
}
