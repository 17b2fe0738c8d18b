package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsAndValidate(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be fatal: %v", err)
	}
	if cfg.Signals.RefreshMinutes != 15 || cfg.Signals.MaxSignals != 5 {
		t.Errorf("unexpected signal defaults: %+v", cfg.Signals)
	}
	if len(cfg.Universe.DefaultTickers) == 0 {
		t.Error("expected default tickers")
	}
	if err := cfg.Validate(); err == nil {
		t.Error("validation must fail without a bot token")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DEFAULT_TICKERS", "AAPL, MSFT ,TSM")
	t.Setenv("SIGNAL_REFRESH_MINUTES", "5")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("token override lost: %q", cfg.Telegram.BotToken)
	}
	want := []string{"AAPL", "MSFT", "TSM"}
	for i, w := range want {
		if cfg.Universe.DefaultTickers[i] != w {
			t.Errorf("ticker[%d] = %q, want %q", i, cfg.Universe.DefaultTickers[i], w)
		}
	}
	if cfg.Signals.RefreshMinutes != 5 {
		t.Errorf("refresh minutes = %d, want 5", cfg.Signals.RefreshMinutes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation should pass: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `telegram:
  bot_token: "999:zzz"
  chat_id: "-100200300"
universe:
  tickers_file: data/custom.csv
signals:
  refresh_minutes: 30
  max_signals: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.ChatID != "-100200300" {
		t.Errorf("chat id = %q", cfg.Telegram.ChatID)
	}
	if cfg.Universe.TickersFile != "data/custom.csv" {
		t.Errorf("tickers file = %q", cfg.Universe.TickersFile)
	}
	if cfg.Signals.RefreshMinutes != 30 || cfg.Signals.MaxSignals != 3 {
		t.Errorf("signals = %+v", cfg.Signals)
	}
}
