// Package screener loads and serves the halal-screened stock universe.
package screener

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"HalalRadar/internal/model"
)

// ErrTickerFileNotFound is returned when the configured universe CSV is absent.
var ErrTickerFileNotFound = errors.New("halal ticker file not found")

// Screener holds the loaded universe. Read-only after Load.
type Screener struct {
	stocks   map[string]model.Stock
	order    []string // tickers in first-seen CSV order
	defaults []string
}

// Load reads the universe CSV. A missing file is a fatal startup error.
// Rows without a ticker are skipped; duplicate tickers keep their original
// position but take the values of the last row seen.
func Load(path string, defaultTickers []string) (*Screener, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTickerFileNotFound, path)
		}
		return nil, fmt.Errorf("open ticker file: %w", err)
	}
	defer f.Close()

	var rows []model.Stock
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse ticker file: %w", err)
	}

	s := &Screener{
		stocks:   make(map[string]model.Stock, len(rows)),
		defaults: append([]string(nil), defaultTickers...),
	}
	skipped := 0
	for _, row := range rows {
		ticker := strings.ToUpper(strings.TrimSpace(row.Ticker))
		if ticker == "" {
			skipped++
			continue
		}
		row.Ticker = ticker
		if _, seen := s.stocks[ticker]; !seen {
			s.order = append(s.order, ticker)
		}
		s.stocks[ticker] = row
	}
	if skipped > 0 {
		log.Warn().Int("rows", skipped).Msg("skipped ticker rows without a ticker column")
	}
	log.Info().Int("stocks", len(s.stocks)).Str("file", path).Msg("halal universe loaded")
	return s, nil
}

// Stocks returns the universe in CSV order.
func (s *Screener) Stocks() []model.Stock {
	out := make([]model.Stock, 0, len(s.order))
	for _, ticker := range s.order {
		out = append(out, s.stocks[ticker])
	}
	return out
}

// Get looks up a ticker case-insensitively.
func (s *Screener) Get(ticker string) (model.Stock, bool) {
	stock, ok := s.stocks[strings.ToUpper(ticker)]
	return stock, ok
}

// DefaultWatchlist returns the configured default tickers that passed
// screening, preserving configured order.
func (s *Screener) DefaultWatchlist() []string {
	var out []string
	for _, ticker := range s.defaults {
		upper := strings.ToUpper(ticker)
		if _, ok := s.stocks[upper]; ok {
			out = append(out, upper)
		}
	}
	return out
}
