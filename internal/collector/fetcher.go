package collector

import (
	"context"

	"HalalRadar/internal/model"
)

// Fetcher retrieves recent hourly price history for a batch of tickers.
// Tickers with no available data are simply absent from the result map;
// only a wholesale transport failure is returned as an error.
type Fetcher interface {
	FetchHourlyBars(ctx context.Context, tickers []string, days int) (map[string][]model.OHLCV, error)
	Name() string
}
