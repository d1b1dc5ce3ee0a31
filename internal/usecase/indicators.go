package usecase

import (
	"CardPulse/internal/domain/models"
	"CardPulse/internal/services/stats"
)

// Signal gate thresholds for the technical layer.
const (
	rsiOversold   = 30.0
	rsiWeak       = 40.0
	rsiOverbought = 70.0

	volumeSpikeRatio = 2.0
	volumeLowRatio   = 0.5
)

// CalculateIndicators derives the per-request technical snapshot from a
// price history and optional volume data. Short series fall back to the
// indicators' documented neutral values.
func CalculateIndicators(prices []float64, currentVolume float64, historicalVolumes []float64, mlScore *float64) models.TechnicalIndicators {
	rsi := stats.RSI(prices, stats.DefaultRSIPeriod)
	macd := stats.MACD(prices)
	volRatio := stats.VolumeRatio(currentVolume, historicalVolumes)

	ind := models.TechnicalIndicators{
		RSI14:         rsi,
		MACD:          macd,
		VolumeRatio:   volRatio,
		IsOversold:    rsi < rsiOversold,
		IsVolumeSpike: volRatio > volumeSpikeRatio,
		IsMACDBullish: macd.Histogram > 0 && macd.MACDLine > macd.SignalLine,
	}
	if mlScore != nil {
		ind.MLScore = *mlScore
		ind.HasMLScore = true
	}
	return ind
}
