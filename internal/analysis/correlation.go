package analysis

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric
// columns. The diagonal is 1 by construction.
type CorrMatrix struct {
	Columns []string
	values  *mat.SymDense
}

// PairCorr is a simple correlation pair summary.
type PairCorr struct {
	A, B string
	R    float64
}

// Correlate builds the pairwise Pearson correlation matrix of the given
// columns. Every series must have the same length; columns and series are
// parallel slices.
func Correlate(columns []string, series [][]float64) *CorrMatrix {
	if len(columns) == 0 || len(series) == 0 {
		return &CorrMatrix{}
	}
	n := len(series[0])
	data := mat.NewDense(n, len(columns), nil)
	for j, col := range series {
		for i, v := range col {
			data.Set(i, j, v)
		}
	}
	var sym mat.SymDense
	stat.CorrelationMatrix(&sym, data, nil)
	return &CorrMatrix{Columns: columns, values: &sym}
}

// Dim returns the number of columns in the matrix.
func (m *CorrMatrix) Dim() int { return len(m.Columns) }

// At returns the correlation between columns i and j.
func (m *CorrMatrix) At(i, j int) float64 { return m.values.At(i, j) }

// StrongPairs returns every unordered pair (i<j) whose absolute correlation
// exceeds threshold, in column order.
func (m *CorrMatrix) StrongPairs(threshold float64) []PairCorr {
	var pairs []PairCorr
	for i := 0; i < m.Dim(); i++ {
		for j := i + 1; j < m.Dim(); j++ {
			r := m.At(i, j)
			if math.Abs(r) > threshold {
				pairs = append(pairs, PairCorr{A: m.Columns[i], B: m.Columns[j], R: r})
			}
		}
	}
	return pairs
}
