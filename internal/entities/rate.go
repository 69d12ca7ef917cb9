package entities

import "time"

const (
	FidelityLive      = "live"
	FidelitySynthetic = "synthetic"
)

// RateSnapshot holds all rates relative to Base as of FetchedAt.
// The base currency itself is conceptually 1.0 and may not be stored.
type RateSnapshot struct {
	Rates     map[string]float64
	Base      string
	FetchedAt time.Time
}

type HistoryPoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// RateHistory is an ascending-by-date series. Fidelity marks whether the
// points came from the time-series provider or were synthesized locally.
type RateHistory struct {
	Points   []HistoryPoint
	Fidelity string
}

type Conversion struct {
	From       string
	To         string
	Amount     float64
	Result     float64
	Rate       float64
	LastUpdate time.Time
	History    RateHistory
}

func NewSnapshot(base string, rates map[string]float64, fetchedAt time.Time) *RateSnapshot {
	return &RateSnapshot{
		Rates:     rates,
		Base:      base,
		FetchedAt: fetchedAt,
	}
}
