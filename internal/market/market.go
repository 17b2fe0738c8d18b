// Package market reports open/close status for exchange trading sessions.
package market

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoTradingDays indicates a session whose weekend set covers every weekday.
var ErrNoTradingDays = errors.New("market has no trading days")

// TimeOfDay is a wall-clock time within a trading day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Market represents one exchange's daily trading schedule in local time.
type Market struct {
	Name     string
	Location *time.Location
	Open     TimeOfDay
	Close    TimeOfDay
	Weekend  []time.Weekday
}

// Status is the derived open/close state relative to a reference instant.
// NextOpen and NextClose are expressed in the market's local time zone.
type Status struct {
	IsOpen    bool
	NextOpen  time.Time
	NextClose time.Time
}

func (m *Market) isWeekend(d time.Weekday) bool {
	for _, w := range m.Weekend {
		if w == d {
			return true
		}
	}
	return false
}

// at anchors a wall-clock time onto the date of t, in the market's zone.
func (m *Market) at(t time.Time, tod TimeOfDay) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), tod.Hour, tod.Minute, 0, 0, m.Location)
}

// Status computes the session state for the given instant. The open and close
// boundary instants both count as open. A weekend set covering all seven days
// is a configuration error, not an infinite search.
func (m *Market) Status(now time.Time) (Status, error) {
	days := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if m.isWeekend(d) {
			days++
		}
	}
	if days >= 7 {
		return Status{}, fmt.Errorf("%w: %s", ErrNoTradingDays, m.Name)
	}

	local := now.In(m.Location)
	openToday := m.at(local, m.Open)
	closeToday := m.at(local, m.Close)

	if m.isWeekend(local.Weekday()) || local.Before(openToday) {
		st := Status{IsOpen: false, NextOpen: m.nextOpen(local)}
		if local.Before(openToday) {
			// Before today's open the open instant doubles as the next
			// close boundary, weekend days included.
			st.NextClose = openToday
		} else {
			st.NextClose = m.nextClose(local)
		}
		return st, nil
	}

	if !local.After(closeToday) {
		return Status{IsOpen: true, NextOpen: m.nextOpen(local), NextClose: closeToday}, nil
	}

	// after close on a trading day
	return Status{IsOpen: false, NextOpen: m.nextOpen(local), NextClose: m.nextClose(local)}, nil
}

// nextOpen finds the nearest future open instant on a trading day. Bounded:
// the weekend set is weekly-periodic and Status rejects degenerate sets.
func (m *Market) nextOpen(local time.Time) time.Time {
	for ahead := 0; ahead < 8; ahead++ {
		candidate := m.at(local.AddDate(0, 0, ahead), m.Open)
		if !m.isWeekend(candidate.Weekday()) && candidate.After(local) {
			return candidate
		}
	}
	return time.Time{}
}

// nextClose finds the nearest future close instant on a trading day.
func (m *Market) nextClose(local time.Time) time.Time {
	if candidate := m.at(local, m.Close); candidate.After(local) && !m.isWeekend(local.Weekday()) {
		return candidate
	}
	for ahead := 1; ahead < 8; ahead++ {
		future := local.AddDate(0, 0, ahead)
		if !m.isWeekend(future.Weekday()) {
			return m.at(future, m.Close)
		}
	}
	return time.Time{}
}
