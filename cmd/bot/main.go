package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"HalalRadar/internal/bot"
	"HalalRadar/internal/collector"
	"HalalRadar/internal/config"
	"HalalRadar/internal/logging"
	"HalalRadar/internal/market"
	"HalalRadar/internal/notifier"
	"HalalRadar/internal/recorder"
	"HalalRadar/internal/scheduler"
	"HalalRadar/internal/screener"
	sig "HalalRadar/internal/signal"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logging.Setup(logging.Config{})
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.Logging)
	log.Info().Msg("HalalRadar starting...")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Load halal universe
	scr, err := screener.Load(cfg.Universe.TickersFile, cfg.Universe.DefaultTickers)
	if err != nil {
		log.Fatal().Err(err).Msg("load halal universe")
	}

	// Init market calendar
	markets, err := market.DefaultMarkets()
	if err != nil {
		log.Fatal().Err(err).Msg("init market calendar")
	}
	marketSvc := market.NewService(markets)

	// Init signal engine
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")
	engine := sig.NewEngine(scr, fetcher)

	// Init journal
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite journal failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bot.New(ctx, scr, engine, marketSvc, rec, cfg.Universe.DefaultTickers, cfg.Signals.MaxSignals)
	log.Info().Strs("watchlist", b.Watchlist()).Msg("watchlist ready")

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Broadcast scheduler needs a destination chat
	if cfg.Telegram.ChatID != "" {
		sched := scheduler.NewScheduler(ctx, b, tn)
		if err := sched.Register(cfg.Signals.RefreshMinutes); err != nil {
			log.Fatal().Err(err).Msg("register refresh task")
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Info().Msg("RUN_ON_START enabled, refreshing signals now")
			go sched.RunNow()
		}
	} else {
		log.Info().Msg("no broadcast chat configured, polling-only mode")
	}

	// Start Telegram polling
	go tn.StartPolling(ctx, b.HandleCommand)
	log.Info().Msg("telegram polling started")

	log.Info().Msg("HalalRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	log.Info().Msg("HalalRadar stopped")
}
