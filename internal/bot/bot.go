// Package bot implements the chat command surface.
package bot

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"HalalRadar/internal/market"
	"HalalRadar/internal/model"
	"HalalRadar/internal/notifier"
	"HalalRadar/internal/recorder"
	"HalalRadar/internal/screener"
	"HalalRadar/internal/signal"
)

// Bot holds the shared state behind every command handler. The watchlist is
// read-only after construction; the signal cache carries the only mutable
// state.
type Bot struct {
	screener   *screener.Screener
	engine     *signal.Engine
	markets    *market.Service
	cache      *signal.Cache
	recorder   recorder.Recorder
	watchlist  []string
	maxSignals int
	ctx        context.Context
}

// New wires the bot state. The watchlist falls back to the configured
// defaults when none of them passed screening.
func New(ctx context.Context, scr *screener.Screener, engine *signal.Engine, markets *market.Service, rec recorder.Recorder, defaultTickers []string, maxSignals int) *Bot {
	watchlist := scr.DefaultWatchlist()
	if len(watchlist) == 0 {
		for _, t := range defaultTickers {
			watchlist = append(watchlist, strings.ToUpper(t))
		}
	}
	return &Bot{
		screener:   scr,
		engine:     engine,
		markets:    markets,
		cache:      signal.NewCache(),
		recorder:   rec,
		watchlist:  watchlist,
		maxSignals: maxSignals,
		ctx:        ctx,
	}
}

// Watchlist returns the tickers scanned for signals.
func (b *Bot) Watchlist() []string { return b.watchlist }

// HandleCommand dispatches one inbound chat command and returns the reply.
func (b *Bot) HandleCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return b.usage()
	}
	cmd := strings.ToLower(fields[0])
	// strip the @botname suffix used in group chats
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}

	if err := b.recorder.RecordCommand(&recorder.CommandEvent{Command: cmd}); err != nil {
		log.Error().Err(err).Msg("record command")
	}

	switch cmd {
	case "/start":
		return notifier.FormatGreeting()
	case "/halal":
		return notifier.FormatUniverse(b.screener.Stocks())
	case "/open":
		return notifier.FormatMarketSnapshot(b.markets.Snapshot(time.Now().UTC()))
	case "/signals":
		signals, _ := b.Refresh("command")
		return notifier.FormatSignalReport(signals)
	case "/info":
		return b.info(fields[1:])
	default:
		return b.usage()
	}
}

func (b *Bot) info(args []string) string {
	if len(args) == 0 {
		return "Usage: /info TICKER"
	}
	ticker := strings.ToUpper(args[0])
	stock, ok := b.screener.Get(ticker)
	if !ok {
		return "Ticker not found in the halal universe."
	}
	signals, _ := b.Refresh("command")
	for i := range signals {
		if signals[i].Ticker == ticker {
			return notifier.FormatSignal(&signals[i])
		}
	}
	return notifier.FormatStockIdle(stock)
}

// Refresh regenerates the signal batch through the cache guard and journals
// the run. Data-provider trouble degrades to the previous (possibly empty)
// batch, never to a user-visible failure.
func (b *Bot) Refresh(trigger string) ([]model.Signal, bool) {
	started := time.Now()
	signals, refreshed, err := b.cache.MaybeRefresh(b.ctx, func(ctx context.Context) ([]model.Signal, error) {
		return b.engine.Generate(ctx, b.watchlist, b.maxSignals)
	})
	if err != nil {
		log.Error().Err(err).Str("trigger", trigger).Msg("signal refresh failed, serving previous batch")
		return signals, false
	}
	if refreshed {
		run := &recorder.RefreshRun{
			Trigger:    trigger,
			Universe:   len(b.watchlist),
			Candidates: len(signals),
			Duration:   time.Since(started),
		}
		if err := b.recorder.RecordRefresh(run); err != nil {
			log.Error().Err(err).Msg("record refresh run")
		}
		log.Info().Str("trigger", trigger).Int("candidates", len(signals)).
			Dur("took", run.Duration).Msg("signal batch refreshed")
	}
	return signals, refreshed
}

func (b *Bot) usage() string {
	return "Commands:\n/start – welcome\n/halal – browse the universe\n/open – market hours\n/signals – fresh ideas\n/info TICKER – one stock"
}
