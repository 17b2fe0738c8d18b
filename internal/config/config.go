package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"HalalRadar/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"` // optional; enables scheduled broadcasts
	} `yaml:"telegram"`
	Universe struct {
		TickersFile    string   `yaml:"tickers_file"`
		DefaultTickers []string `yaml:"default_tickers"`
	} `yaml:"universe"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty selects the Yahoo fetcher
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Signals struct {
		RefreshMinutes int `yaml:"refresh_minutes"`
		MaxSignals     int `yaml:"max_signals"`
	} `yaml:"signals"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Logging logging.Config `yaml:"logging"`
	Proxy   string         `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HALAL_TICKERS_FILE"); v != "" {
		cfg.Universe.TickersFile = v
	}
	if v := os.Getenv("DEFAULT_TICKERS"); v != "" {
		cfg.Universe.DefaultTickers = splitList(v)
	}
	if v := os.Getenv("SIGNAL_REFRESH_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Signals.RefreshMinutes = n
		}
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Universe.TickersFile == "" {
		cfg.Universe.TickersFile = "data/halal_tickers.csv"
	}
	if len(cfg.Universe.DefaultTickers) == 0 {
		cfg.Universe.DefaultTickers = []string{"AAPL", "MSFT", "GOOGL", "NVDA", "ADBE", "INTC"}
	}
	if cfg.Signals.RefreshMinutes == 0 {
		cfg.Signals.RefreshMinutes = 15
	}
	if cfg.Signals.MaxSignals == 0 {
		cfg.Signals.MaxSignals = 5
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Universe.TickersFile == "" {
		return fmt.Errorf("universe.tickers_file is required")
	}
	if c.Signals.RefreshMinutes < 1 {
		return fmt.Errorf("signals.refresh_minutes must be at least 1")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
