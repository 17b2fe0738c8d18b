package calculator

import (
	"errors"

	"HalalRadar/internal/model"
)

// PercentChange returns the latest close's percentage move versus the
// previous close.
func PercentChange(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, errors.New("need at least two closes")
	}
	prev := closes[len(closes)-2]
	if prev == 0 {
		return 0, errors.New("previous close is zero")
	}
	return (closes[len(closes)-1]/prev - 1) * 100, nil
}

// VolumeRatio compares the latest bar's volume against the mean of all
// earlier bars in the window. A zero average is substituted with 1.
func VolumeRatio(volumes []float64) (float64, error) {
	if len(volumes) < 2 {
		return 0, errors.New("need at least two volume bars")
	}
	sum := 0.0
	for _, v := range volumes[:len(volumes)-1] {
		sum += v
	}
	avg := sum / float64(len(volumes)-1)
	if avg == 0 {
		avg = 1
	}
	return volumes[len(volumes)-1] / avg, nil
}

// ExtractCloses pulls the close column out of a bar window.
func ExtractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// ExtractVolumes pulls the volume column out of a bar window.
func ExtractVolumes(bars []model.OHLCV) []float64 {
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		volumes[i] = b.Volume
	}
	return volumes
}
