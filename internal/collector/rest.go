package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"HalalRadar/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted bar REST API, for
// deployments that cannot reach Yahoo directly.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bar API.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// FetchHourlyBars fetches hourly bars per ticker; tickers that fail are
// omitted rather than failing the batch.
func (f *RestFetcher) FetchHourlyBars(ctx context.Context, tickers []string, days int) (map[string][]model.OHLCV, error) {
	result := make(map[string][]model.OHLCV, len(tickers))
	for _, ticker := range tickers {
		endpoint := fmt.Sprintf("%s/api/v1/bars/hourly?symbol=%s&limit=%d",
			f.BaseURL, url.QueryEscape(ticker), days*24)
		bars, err := f.fetchBars(ctx, endpoint)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Warn().Str("ticker", ticker).Err(err).Msg("hourly bars unavailable")
			continue
		}
		if len(bars) == 0 {
			continue
		}
		result[ticker] = bars
	}
	return result, nil
}

func (f *RestFetcher) fetchBars(ctx context.Context, endpoint string) ([]model.OHLCV, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw []restBar
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}

	bars := make([]model.OHLCV, 0, len(raw))
	for _, b := range raw {
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
