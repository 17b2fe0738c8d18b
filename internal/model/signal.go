package model

import "time"

// Signal is a single candidate buy setup produced by the signal engine.
// Immutable once built; a batch of these is replaced wholesale on refresh.
type Signal struct {
	Ticker          string
	Exchange        string
	Name            string
	EntryPrice      float64 // second-to-last close
	CurrentPrice    float64 // latest close
	RecentHigh      float64 // max high over the lookback window
	RecentLow       float64 // min low over the lookback window
	PercentChange   float64 // latest vs previous close, in percent
	RSI             float64 // rolling-mean RSI(14)
	Volume          float64 // latest bar volume
	VolumeRatio     float64 // latest volume vs trailing average
	Reason          string
	ProjectedTarget float64 // 7-day projection
	Timestamp       time.Time
}
