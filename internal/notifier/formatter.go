package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"HalalRadar/internal/market"
	"HalalRadar/internal/model"
)

const timeLayout = "2006-01-02 15:04 MST"

// universeLimit caps how many rows the universe listing shows.
const universeLimit = 40

// FormatGreeting renders the /start welcome message.
func FormatGreeting() string {
	return "👋 Assalamu alaikum! I monitor global halal stock opportunities 24/7.\n" +
		"Use /signals for fresh ideas, /open for market hours, or /halal to browse the universe."
}

// FormatSignal renders one signal as a summary block.
func FormatSignal(s *model.Signal) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>%s</b> (%s)\n", s.Ticker, s.Exchange))
	b.WriteString(fmt.Sprintf("Entry: $%s | Last: $%s\n",
		humanize.CommafWithDigits(s.EntryPrice, 2), humanize.CommafWithDigits(s.CurrentPrice, 2)))
	b.WriteString(fmt.Sprintf("High/Low (5d): $%s / $%s\n",
		humanize.CommafWithDigits(s.RecentHigh, 2), humanize.CommafWithDigits(s.RecentLow, 2)))
	b.WriteString(fmt.Sprintf("Change: %.2f%% | RSI(14): %.1f\n", s.PercentChange, s.RSI))
	b.WriteString(fmt.Sprintf("Volume: %s (%.1f× avg)\n", humanize.CommafWithDigits(s.Volume, 0), s.VolumeRatio))
	b.WriteString(fmt.Sprintf("Reason: %s\n", s.Reason))
	b.WriteString(fmt.Sprintf("Target (7d): $%s", humanize.CommafWithDigits(s.ProjectedTarget, 2)))
	return b.String()
}

// FormatSignalReport renders the full radar report for a batch.
func FormatSignalReport(signals []model.Signal) string {
	if len(signals) == 0 {
		return "No strong halal momentum setups right now. Check back soon!"
	}
	blocks := make([]string, 0, len(signals))
	for i := range signals {
		blocks = append(blocks, FormatSignal(&signals[i]))
	}
	return "🌙 <b>Halal momentum radar</b>\n\n" + strings.Join(blocks, "\n\n")
}

// FormatMarketSnapshot renders the open/close status of every market.
func FormatMarketSnapshot(snapshots []market.Snapshot) string {
	blocks := make([]string, 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.Err != nil {
			blocks = append(blocks, fmt.Sprintf("⚠️ %s: misconfigured (%v)", snap.Market, snap.Err))
			continue
		}
		emoji, state := "🔴", "Closed"
		if snap.Status.IsOpen {
			emoji, state = "🟢", "Open"
		}
		blocks = append(blocks, fmt.Sprintf("%s <b>%s</b>: %s\nNext open: %s\nNext close: %s",
			emoji, snap.Market, state,
			snap.Status.NextOpen.Format(timeLayout),
			snap.Status.NextClose.Format(timeLayout)))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatUniverse renders the halal universe listing, capped to the first rows.
func FormatUniverse(stocks []model.Stock) string {
	var b strings.Builder
	b.WriteString("📜 <b>Halal universe:</b>\n")
	for i, stock := range stocks {
		if i >= universeLimit {
			b.WriteString(fmt.Sprintf("… and %d more", len(stocks)-universeLimit))
			break
		}
		b.WriteString(fmt.Sprintf("%s – %s (%s)\n", stock.Ticker, stock.Name, stock.Exchange))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatStockIdle renders the reply for a screened stock with no live signal.
func FormatStockIdle(stock model.Stock) string {
	return fmt.Sprintf("%s (%s) is halal-screened but not triggering signals now.", stock.Ticker, stock.Exchange)
}
