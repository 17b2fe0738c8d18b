// Package recorder journals operational events. Signal contents are never
// persisted, only run metadata.
package recorder

import "time"

// RefreshRun describes one completed signal regeneration.
type RefreshRun struct {
	Trigger    string // "command", "scheduled", "startup"
	Universe   int    // watchlist size scanned
	Candidates int    // signals produced
	Duration   time.Duration
}

// CommandEvent records one received chat command.
type CommandEvent struct {
	Command string
}

// Recorder persists operational events for later inspection.
type Recorder interface {
	RecordRefresh(run *RefreshRun) error
	RecordCommand(evt *CommandEvent) error
	Close() error
}
