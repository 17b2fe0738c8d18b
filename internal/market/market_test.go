package market

import (
	"errors"
	"testing"
	"time"
)

func newYorkMarket(t *testing.T) Market {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return Market{
		Name:     "NYSE",
		Location: loc,
		Open:     TimeOfDay{9, 30},
		Close:    TimeOfDay{16, 0},
		Weekend:  []time.Weekday{time.Saturday, time.Sunday},
	}
}

func TestStatus_OpenMidday(t *testing.T) {
	m := newYorkMarket(t)
	// Wednesday 2024-01-10 12:00 local
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, m.Location)

	st, err := m.Status(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.IsOpen {
		t.Error("expected market open at midday on a trading day")
	}
	wantClose := time.Date(2024, 1, 10, 16, 0, 0, 0, m.Location)
	if !st.NextClose.Equal(wantClose) {
		t.Errorf("next close = %v, want %v", st.NextClose, wantClose)
	}
}

func TestStatus_FridayEvening(t *testing.T) {
	m := newYorkMarket(t)
	// Friday 2024-01-12 20:00 local
	now := time.Date(2024, 1, 12, 20, 0, 0, 0, m.Location)

	st, err := m.Status(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.IsOpen {
		t.Error("expected market closed on Friday evening")
	}
	wantOpen := time.Date(2024, 1, 15, 9, 30, 0, 0, m.Location) // Monday
	if !st.NextOpen.Equal(wantOpen) {
		t.Errorf("next open = %v, want %v", st.NextOpen, wantOpen)
	}
	wantClose := time.Date(2024, 1, 15, 16, 0, 0, 0, m.Location)
	if !st.NextClose.Equal(wantClose) {
		t.Errorf("next close = %v, want %v", st.NextClose, wantClose)
	}
}

func TestStatus_BeforeOpenUsesOpenAsNextClose(t *testing.T) {
	m := newYorkMarket(t)
	// Saturday 2024-01-13 08:00 local, before the (non-trading) open time
	now := time.Date(2024, 1, 13, 8, 0, 0, 0, m.Location)

	st, err := m.Status(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.IsOpen {
		t.Error("expected market closed on Saturday")
	}
	wantClose := time.Date(2024, 1, 13, 9, 30, 0, 0, m.Location)
	if !st.NextClose.Equal(wantClose) {
		t.Errorf("next close = %v, want today's open instant %v", st.NextClose, wantClose)
	}
	wantOpen := time.Date(2024, 1, 15, 9, 30, 0, 0, m.Location)
	if !st.NextOpen.Equal(wantOpen) {
		t.Errorf("next open = %v, want %v", st.NextOpen, wantOpen)
	}
}

func TestStatus_Boundaries(t *testing.T) {
	m := newYorkMarket(t)
	tests := []struct {
		name string
		now  time.Time
		open bool
	}{
		{"exact open", time.Date(2024, 1, 10, 9, 30, 0, 0, m.Location), true},
		{"exact close", time.Date(2024, 1, 10, 16, 0, 0, 0, m.Location), true},
		{"minute before open", time.Date(2024, 1, 10, 9, 29, 0, 0, m.Location), false},
		{"minute after close", time.Date(2024, 1, 10, 16, 1, 0, 0, m.Location), false},
	}
	for _, tt := range tests {
		st, err := m.Status(tt.now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if st.IsOpen != tt.open {
			t.Errorf("%s: is_open = %v, want %v", tt.name, st.IsOpen, tt.open)
		}
	}
}

func TestStatus_TransitionsStrictlyFuture(t *testing.T) {
	m := newYorkMarket(t)
	// Sweep a full week at 3-hour steps
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, m.Location)
	for i := 0; i < 7*8; i++ {
		now := start.Add(time.Duration(i) * 3 * time.Hour)
		st, err := m.Status(now)
		if err != nil {
			t.Fatalf("unexpected error at %v: %v", now, err)
		}
		if !st.NextOpen.After(now) {
			t.Errorf("next open %v not after reference %v", st.NextOpen, now)
		}
		if !st.IsOpen && !st.NextClose.After(now) {
			t.Errorf("next close %v not after reference %v", st.NextClose, now)
		}
	}
}

func TestStatus_DubaiWeekend(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	m := Market{
		Name:     "DFM",
		Location: loc,
		Open:     TimeOfDay{10, 0},
		Close:    TimeOfDay{14, 0},
		Weekend:  []time.Weekday{time.Friday, time.Saturday},
	}
	// Friday 2024-01-12 11:00 local is inside trading hours but a weekend day
	st, err := m.Status(time.Date(2024, 1, 12, 11, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.IsOpen {
		t.Error("expected DFM closed on Friday")
	}
	// Sunday 2024-01-14 11:00 local is a trading day for DFM
	st, err = m.Status(time.Date(2024, 1, 14, 11, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.IsOpen {
		t.Error("expected DFM open on Sunday morning")
	}
}

func TestStatus_DegenerateWeekend(t *testing.T) {
	m := newYorkMarket(t)
	m.Weekend = []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
	_, err := m.Status(time.Date(2024, 1, 10, 12, 0, 0, 0, m.Location))
	if !errors.Is(err, ErrNoTradingDays) {
		t.Fatalf("expected ErrNoTradingDays, got %v", err)
	}
}

func TestSnapshot_OrderAndCoverage(t *testing.T) {
	markets, err := DefaultMarkets()
	if err != nil {
		t.Fatalf("default markets: %v", err)
	}
	if len(markets) != 7 {
		t.Fatalf("expected 7 default markets, got %d", len(markets))
	}
	svc := NewService(markets)
	snaps := svc.Snapshot(time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC))
	if len(snaps) != len(markets) {
		t.Fatalf("expected %d snapshots, got %d", len(markets), len(snaps))
	}
	for i, snap := range snaps {
		if snap.Market != markets[i].Name {
			t.Errorf("snapshot %d: got %s, want %s", i, snap.Market, markets[i].Name)
		}
		if snap.Err != nil {
			t.Errorf("market %s: unexpected error %v", snap.Market, snap.Err)
		}
	}
}
