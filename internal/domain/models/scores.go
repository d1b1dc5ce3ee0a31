package models

import "time"

// MACDResult holds the three MACD components.
type MACDResult struct {
	MACDLine   float64 `json:"macdLine"`
	SignalLine float64 `json:"signalLine"`
	Histogram  float64 `json:"histogram"`
}

// TechnicalIndicators is the per-request technical snapshot a rebound
// score is derived from. Ephemeral; recomputed on every call.
type TechnicalIndicators struct {
	RSI14          float64    `json:"rsi14"`
	MACD           MACDResult `json:"macd"`
	VolumeRatio    float64    `json:"volumeRatio"`
	IsOversold     bool       `json:"isOversold"`
	IsVolumeSpike  bool       `json:"isVolumeSpiking"`
	IsMACDBullish  bool       `json:"isMACDBullish"`
	MLScore        float64    `json:"mlScore,omitempty"`
	HasMLScore     bool       `json:"-"`
}

// DimensionScore is one dimension's contribution to the speculation score.
// Value is always clamped to [0,100]; SubMetrics carries the diagnostic
// intermediates that produced it.
type DimensionScore struct {
	Value      float64            `json:"value"`
	SubMetrics map[string]float64 `json:"subMetrics,omitempty"`
}

// SpeculationScore is the weighted aggregate of the five dimensions.
type SpeculationScore struct {
	Total      float64        `json:"total"`
	Volatility DimensionScore `json:"volatility"` // D1
	Growth     DimensionScore `json:"growth"`     // D2
	Scarcity   DimensionScore `json:"scarcity"`   // D3
	Sentiment  DimensionScore `json:"sentiment"`  // D4
	Macro      DimensionScore `json:"macro"`      // D5
	Computed   time.Time      `json:"computedAt"`
	// Errors records provider failures that were degraded to neutral
	// defaults; dashboards must always render something.
	Errors map[string]string `json:"errors,omitempty"`
}

// ReboundAction is the technical-score recommendation band.
type ReboundAction string

const (
	ReboundStrongBuy  ReboundAction = "strong_buy"
	ReboundBuy        ReboundAction = "buy"
	ReboundHold       ReboundAction = "hold"
	ReboundSell       ReboundAction = "sell"
	ReboundStrongSell ReboundAction = "strong_sell"
)

// ReboundSignals explains which technical signals fired.
type ReboundSignals struct {
	RSI    string `json:"rsi"`
	MACD   string `json:"macd"`
	Volume string `json:"volume"`
	ML     string `json:"ml,omitempty"`
}

// ReboundScore is the technical "rebond" score: an accumulation of
// oversold/momentum/volume signals, optionally blended with an external
// ML score.
type ReboundScore struct {
	Score          float64        `json:"score"`
	Confidence     float64        `json:"confidence"`
	Signals        ReboundSignals `json:"signals"`
	Recommendation ReboundAction  `json:"recommendation"`
}

// Recommendation is the final hybrid verdict label.
type Recommendation string

const (
	RecStrongBuy  Recommendation = "STRONG_BUY"
	RecBuy        Recommendation = "BUY"
	RecHold       Recommendation = "HOLD"
	RecSell       Recommendation = "SELL"
	RecStrongSell Recommendation = "STRONG_SELL"
)

// RiskLevel is derived from the volatility dimension alone. A high D1
// score means low volatility, hence low risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// HybridRecommendation fuses speculation, rebound and the optional
// external verdict into one actionable label.
type HybridRecommendation struct {
	HybridScore    float64        `json:"hybridScore"`
	Recommendation Recommendation `json:"recommendation"`
	RiskLevel      RiskLevel      `json:"riskLevel"`
	Confidence     float64        `json:"confidence"`
	BullishVotes   int            `json:"bullishVotes"`
	BearishVotes   int            `json:"bearishVotes"`
}
