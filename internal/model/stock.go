package model

// Stock is one entry of the halal-screened universe. Immutable after load.
type Stock struct {
	Ticker   string `csv:"ticker"`
	Exchange string `csv:"exchange"`
	Name     string `csv:"name"`
	Source   string `csv:"source"`
}
