package market

import (
	"fmt"
	"time"
)

// Snapshot is the status of one market at a point in time.
type Snapshot struct {
	Market string
	Status Status
	Err    error
}

// Service evaluates a fixed set of markets.
type Service struct {
	markets []Market
}

// NewService creates a Service over the given markets. Order is preserved in
// every snapshot.
func NewService(markets []Market) *Service {
	return &Service{markets: markets}
}

// Snapshot reports the status of every market relative to now. A misconfigured
// market carries its error in its entry rather than failing the whole set.
func (s *Service) Snapshot(now time.Time) []Snapshot {
	out := make([]Snapshot, 0, len(s.markets))
	for i := range s.markets {
		st, err := s.markets[i].Status(now)
		out = append(out, Snapshot{Market: s.markets[i].Name, Status: st, Err: err})
	}
	return out
}

// DefaultMarkets returns the built-in exchange schedules.
func DefaultMarkets() ([]Market, error) {
	specs := []struct {
		name        string
		tz          string
		open, close TimeOfDay
		weekend     []time.Weekday
	}{
		{"NYSE", "America/New_York", TimeOfDay{9, 30}, TimeOfDay{16, 0}, nil},
		{"NASDAQ", "America/New_York", TimeOfDay{9, 30}, TimeOfDay{16, 0}, nil},
		{"LSE", "Europe/London", TimeOfDay{8, 0}, TimeOfDay{16, 30}, nil},
		{"TSX", "America/Toronto", TimeOfDay{9, 30}, TimeOfDay{16, 0}, nil},
		{"TSE", "Asia/Tokyo", TimeOfDay{9, 0}, TimeOfDay{15, 0}, nil},
		{"BSE", "Asia/Kolkata", TimeOfDay{9, 15}, TimeOfDay{15, 30}, nil},
		{"DFM", "Asia/Dubai", TimeOfDay{10, 0}, TimeOfDay{14, 0}, []time.Weekday{time.Friday, time.Saturday}},
	}

	markets := make([]Market, 0, len(specs))
	for _, sp := range specs {
		loc, err := time.LoadLocation(sp.tz)
		if err != nil {
			return nil, fmt.Errorf("load timezone %s: %w", sp.tz, err)
		}
		weekend := sp.weekend
		if weekend == nil {
			weekend = []time.Weekday{time.Saturday, time.Sunday}
		}
		markets = append(markets, Market{
			Name:     sp.name,
			Location: loc,
			Open:     sp.open,
			Close:    sp.close,
			Weekend:  weekend,
		})
	}
	return markets, nil
}
