package analysis

import "gonum.org/v1/gonum/stat"

// Trend direction labels. Ties classify as decreasing: the comparison
// between the last and first smoothed values is strict greater-than.
const (
	TrendIncreasing = "Increasing"
	TrendDecreasing = "Decreasing"
)

// TrendReport summarizes the smoothed sales series.
type TrendReport struct {
	Window     int
	Direction  string
	MeanSales  float64 // mean of the raw series
	Volatility float64 // population std of the raw series
	Smoothed   []float64
}

// MovingAverage computes the mean of every full trailing window of the given
// size. The output has len(values)-window+1 entries; positions without a
// full window are omitted rather than padded.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || window > len(values) {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	for i := window - 1; i < len(values); i++ {
		var sum float64
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out = append(out, sum/float64(window))
	}
	return out
}

// AnalyzeTrend smooths sales with the given window and classifies the
// overall direction by comparing the last smoothed value against the first.
func AnalyzeTrend(sales []float64, window int) TrendReport {
	ma := MovingAverage(sales, window)
	dir := TrendDecreasing
	if len(ma) > 0 && ma[len(ma)-1] > ma[0] {
		dir = TrendIncreasing
	}
	return TrendReport{
		Window:     window,
		Direction:  dir,
		MeanSales:  stat.Mean(sales, nil),
		Volatility: stat.PopStdDev(sales, nil),
		Smoothed:   ma,
	}
}
