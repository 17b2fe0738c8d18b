// Package signal turns recent price history into ranked buy candidates.
package signal

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"HalalRadar/internal/calculator"
	"HalalRadar/internal/collector"
	"HalalRadar/internal/model"
	"HalalRadar/internal/screener"
)

const (
	// DefaultMaxSignals caps a generated batch.
	DefaultMaxSignals = 5

	historyDays  = 5
	lookbackBars = 40
	minBars      = 15
	rsiPeriod    = 14
)

// Engine generates trading signals for screened stocks.
type Engine struct {
	screener *screener.Screener
	fetcher  collector.Fetcher
}

// NewEngine creates a signal engine over the given universe and data source.
func NewEngine(scr *screener.Screener, fetcher collector.Fetcher) *Engine {
	return &Engine{screener: scr, fetcher: fetcher}
}

// Generate fetches recent hourly history for the requested tickers in one
// batch and returns up to maxSignals candidates ranked by momentum-volume
// score. Tickers outside the universe, without data, or with too few bars are
// skipped silently; only a wholesale fetch failure is an error.
func (e *Engine) Generate(ctx context.Context, tickers []string, maxSignals int) ([]model.Signal, error) {
	if maxSignals <= 0 {
		maxSignals = DefaultMaxSignals
	}
	upper := make([]string, 0, len(tickers))
	for _, t := range tickers {
		upper = append(upper, strings.ToUpper(t))
	}
	if len(upper) == 0 {
		return nil, nil
	}

	data, err := e.fetcher.FetchHourlyBars(ctx, upper, historyDays)
	if err != nil {
		return nil, fmt.Errorf("fetch price history: %w", err)
	}

	signals := make([]model.Signal, 0, len(upper))
	for _, ticker := range upper {
		stock, ok := e.screener.Get(ticker)
		if !ok {
			continue
		}
		bars, ok := data[ticker]
		if !ok || len(bars) == 0 {
			continue
		}
		sig, err := e.buildSignal(stock, bars)
		if err != nil {
			log.Debug().Str("ticker", ticker).Err(err).Msg("ticker excluded from batch")
			continue
		}
		signals = append(signals, sig)
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].PercentChange*signals[i].VolumeRatio >
			signals[j].PercentChange*signals[j].VolumeRatio
	})
	if len(signals) > maxSignals {
		signals = signals[:maxSignals]
	}
	return signals, nil
}

func (e *Engine) buildSignal(stock model.Stock, bars []model.OHLCV) (model.Signal, error) {
	if len(bars) > lookbackBars {
		bars = bars[len(bars)-lookbackBars:]
	}
	closes := calculator.ExtractCloses(bars)
	if len(closes) < minBars {
		return model.Signal{}, fmt.Errorf("insufficient data: %d bars", len(closes))
	}

	percentChange, err := calculator.PercentChange(closes)
	if err != nil {
		return model.Signal{}, err
	}
	volumeRatio, err := calculator.VolumeRatio(calculator.ExtractVolumes(bars))
	if err != nil {
		return model.Signal{}, err
	}
	rsi, err := calculator.LatestRSI(closes, rsiPeriod)
	if err != nil {
		return model.Signal{}, err
	}
	high, low, err := calculator.CalculateRange(bars)
	if err != nil {
		return model.Signal{}, err
	}

	currentPrice := closes[len(closes)-1]
	assumedMove := percentChange
	if assumedMove < 2 {
		assumedMove = 2
	}

	return model.Signal{
		Ticker:          stock.Ticker,
		Exchange:        stock.Exchange,
		Name:            stock.Name,
		EntryPrice:      closes[len(closes)-2],
		CurrentPrice:    currentPrice,
		RecentHigh:      high,
		RecentLow:       low,
		PercentChange:   percentChange,
		RSI:             rsi,
		Volume:          bars[len(bars)-1].Volume,
		VolumeRatio:     volumeRatio,
		Reason:          buildReason(percentChange, volumeRatio, rsi),
		ProjectedTarget: currentPrice * (1 + assumedMove/100*0.7),
		Timestamp:       time.Now().UTC(),
	}, nil
}

func buildReason(percentChange, volumeRatio, rsi float64) string {
	var parts []string

	switch {
	case percentChange > 3:
		parts = append(parts, "strong intraday breakout")
	case percentChange > 1.5:
		parts = append(parts, "steady bullish move")
	default:
		parts = append(parts, "early momentum build-up")
	}

	switch {
	case volumeRatio > 2:
		parts = append(parts, "unusual volume inflow")
	case volumeRatio > 1.2:
		parts = append(parts, "volume above average")
	}

	switch {
	case rsi < 30:
		parts = append(parts, "oversold reversal potential")
	case rsi > 70:
		parts = append(parts, "overbought strength")
	}

	return strings.Join(parts, ", ")
}
