package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ColumnStats is the descriptive summary of one numeric column.
type ColumnStats struct {
	Mean   float64
	Median float64
	Std    float64 // population standard deviation
	Min    float64
	Max    float64
	Q1     float64
	Q3     float64
}

// SummaryStats maps numeric column names to their statistics. It is
// populated in one shot by Describe-ing every column; re-running replaces
// entries wholesale.
type SummaryStats map[string]ColumnStats

// StatNames lists the statistics in report order.
var StatNames = []string{"Mean", "Median", "Std", "Min", "Max", "Q1", "Q3"}

// Get returns the named statistic from s.
func (s ColumnStats) Get(name string) float64 {
	switch name {
	case "Mean":
		return s.Mean
	case "Median":
		return s.Median
	case "Std":
		return s.Std
	case "Min":
		return s.Min
	case "Max":
		return s.Max
	case "Q1":
		return s.Q1
	case "Q3":
		return s.Q3
	}
	return math.NaN()
}

// Describe computes the summary statistics of values. Quartiles use the
// linear-interpolation percentile method.
func Describe(values []float64) ColumnStats {
	if len(values) == 0 {
		return ColumnStats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return ColumnStats{
		Mean:   stat.Mean(values, nil),
		Median: quantile(sorted, 0.5),
		Std:    stat.PopStdDev(values, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     quantile(sorted, 0.25),
		Q3:     quantile(sorted, 0.75),
	}
}

// quantile interpolates linearly between adjacent ranks of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
