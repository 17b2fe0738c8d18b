package calculator

import (
	"errors"
	"math"
)

// RSISeries computes the relative strength index over a rolling mean of gains
// and losses. The result has one value per close. Positions where the rolling
// window is incomplete, or where the loss average is zero, are undefined and
// back-filled from the nearest subsequent valid value; anything still
// undefined defaults to the neutral 50.
func RSISeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	n := len(closes)
	rsi := make([]float64, n)
	for i := range rsi {
		rsi[i] = math.NaN()
	}

	// First delta sits at index 1, so the first complete window ends at
	// index period.
	for i := period; i < n; i++ {
		var gains, losses float64
		for j := i - period + 1; j <= i; j++ {
			change := closes[j] - closes[j-1]
			if change > 0 {
				gains += change
			} else {
				losses -= change
			}
		}
		avgGain := gains / float64(period)
		avgLoss := losses / float64(period)
		if avgLoss == 0 {
			continue // undefined, not infinity
		}
		rs := avgGain / avgLoss
		rsi[i] = 100.0 - 100.0/(1.0+rs)
	}

	// Back-fill undefined values from the next valid one.
	next := math.NaN()
	for i := n - 1; i >= 0; i-- {
		if math.IsNaN(rsi[i]) {
			rsi[i] = next
		} else {
			next = rsi[i]
		}
	}
	for i := range rsi {
		if math.IsNaN(rsi[i]) {
			rsi[i] = 50.0
		}
	}
	return rsi, nil
}

// LatestRSI returns the final value of the RSI series.
func LatestRSI(closes []float64, period int) (float64, error) {
	series, err := RSISeries(closes, period)
	if err != nil {
		return 0, err
	}
	if len(series) == 0 {
		return 0, errors.New("no closes provided")
	}
	return series[len(series)-1], nil
}
