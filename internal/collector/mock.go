package collector

import (
	"context"
	"time"

	"HalalRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Data map[string][]model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHourlyBars(_ context.Context, tickers []string, _ int) (map[string][]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make(map[string][]model.OHLCV, len(tickers))
	for _, ticker := range tickers {
		if bars, ok := m.Data[ticker]; ok {
			result[ticker] = bars
		}
	}
	return result, nil
}

// GenerateBars builds a synthetic hourly bar series drifting from basePrice.
func GenerateBars(basePrice, volume float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().Add(-time.Duration(count-i) * time.Hour),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: volume,
		}
	}
	return bars
}
