// Package scheduler runs the periodic signal refresh and broadcast.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"HalalRadar/internal/bot"
	"HalalRadar/internal/notifier"
)

// Scheduler regenerates signals on a fixed cadence and pushes the radar
// report to the configured broadcast chat when candidates exist.
type Scheduler struct {
	Cron     *cron.Cron
	Bot      *bot.Bot
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, b *bot.Bot, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(),
		Bot:      b,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register schedules the refresh task at the configured interval in minutes.
func (s *Scheduler) Register(refreshMinutes int) error {
	spec := fmt.Sprintf("@every %dm", refreshMinutes)
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	signals, refreshed := s.Bot.Refresh("scheduled")
	if !refreshed || len(signals) == 0 {
		return
	}
	report := notifier.FormatSignalReport(signals)
	if err := s.Notifier.SendWithRetry(s.Ctx, report, 3); err != nil {
		log.Error().Err(err).Msg("broadcast radar report")
	}
}
