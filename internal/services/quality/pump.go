package quality

import (
	"CardPulse/internal/services/stats"
)

// Pump-detection thresholds. Empirically chosen; kept as named defaults
// to preserve observable behavior.
const (
	DefaultPumpWindow = 30

	// pumpRatioThreshold: the window maximum must exceed double the
	// window mean (max/mean - 1 > 1.0).
	pumpRatioThreshold = 1.0

	// pumpMinDaysSincePeak: the spike must sit more than this many
	// points before the window end, i.e. price has since receded.
	pumpMinDaysSincePeak = 3
)

// PumpReport describes a detected pump-and-correction pattern.
type PumpReport struct {
	IsPump        bool    `json:"isPump"`
	MagnitudePct  float64 `json:"magnitudePct"`
	DaysSincePeak int     `json:"daysSincePeak"`
	PeakPrice     float64 `json:"peakPrice"`
}

// DetectPump scans the most recent window of the series for a local
// maximum that towers over the rolling average and has already receded.
// Series shorter than 2 points, or with a non-positive mean, never pump.
func DetectPump(prices []float64, window int) PumpReport {
	if window <= 0 {
		window = DefaultPumpWindow
	}
	if len(prices) < 2 {
		return PumpReport{}
	}
	if len(prices) > window {
		prices = prices[len(prices)-window:]
	}

	maxIdx := 0
	for i, v := range prices {
		if v > prices[maxIdx] {
			maxIdx = i
		}
	}
	peak := prices[maxIdx]
	mean := stats.Mean(prices)
	if mean <= 0 {
		return PumpReport{}
	}

	ratio := peak/mean - 1
	daysSince := len(prices) - 1 - maxIdx

	return PumpReport{
		IsPump:        ratio > pumpRatioThreshold && daysSince > pumpMinDaysSincePeak,
		MagnitudePct:  ratio * 100,
		DaysSincePeak: daysSince,
		PeakPrice:     peak,
	}
}
