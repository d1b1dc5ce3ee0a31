package usecase

import (
	"CardPulse/internal/domain/models"
)

// Rebound signal contributions. Points accumulate from independent
// technical signals; confidence accumulates alongside and is clamped to
// [0,1] at the end.
const (
	reboundOversoldPts   = 35.0
	reboundOversoldConf  = 0.30
	reboundWeakPts       = 20.0
	reboundWeakConf      = 0.15
	reboundOverboughtPts = -15.0

	reboundMACDBullPts  = 35.0
	reboundMACDBullConf = 0.35
	reboundMACDBearPts  = -10.0

	reboundVolumeSpikePts  = 30.0
	reboundVolumeSpikeConf = 0.25

	// ML blend: technical carries 0.7, the external model 0.3. When both
	// agree on direction the confidence gets a bonus.
	reboundTechWeight    = 0.7
	reboundMLWeight      = 0.3
	reboundAgreementConf = 0.15
	reboundBullishLevel  = 60.0
	reboundBearishLevel  = 40.0
)

// CalculateRebound accumulates oversold, momentum and volume signals
// from a technical snapshot into the rebound score, optionally blended
// with an external ML score.
func CalculateRebound(ind models.TechnicalIndicators) models.ReboundScore {
	var score, confidence float64
	signals := models.ReboundSignals{RSI: "neutral", MACD: "neutral", Volume: "normal"}

	switch {
	case ind.RSI14 < rsiOversold:
		score += reboundOversoldPts
		confidence += reboundOversoldConf
		signals.RSI = "oversold"
	case ind.RSI14 < rsiWeak:
		score += reboundWeakPts
		confidence += reboundWeakConf
		signals.RSI = "weak"
	case ind.RSI14 > rsiOverbought:
		score += reboundOverboughtPts
		signals.RSI = "overbought"
	}

	macd := ind.MACD
	if macd.Histogram > 0 && macd.MACDLine > macd.SignalLine {
		score += reboundMACDBullPts
		confidence += reboundMACDBullConf
		signals.MACD = "bullish"
	} else if macd.Histogram < 0 && macd.MACDLine < macd.SignalLine {
		score += reboundMACDBearPts
		signals.MACD = "bearish"
	}

	if ind.VolumeRatio > volumeSpikeRatio {
		score += reboundVolumeSpikePts
		confidence += reboundVolumeSpikeConf
		signals.Volume = "spiking"
	} else if ind.VolumeRatio < volumeLowRatio {
		signals.Volume = "low" // flagged only; no score change
	}

	technical := clampScore(score)
	final := technical

	if ind.HasMLScore {
		final = reboundTechWeight*technical + reboundMLWeight*ind.MLScore
		switch {
		case ind.MLScore > reboundBullishLevel:
			signals.ML = "bullish"
		case ind.MLScore < reboundBearishLevel:
			signals.ML = "bearish"
		default:
			signals.ML = "neutral"
		}
		agreeBull := technical > reboundBullishLevel && ind.MLScore > reboundBullishLevel
		agreeBear := technical < reboundBearishLevel && ind.MLScore < reboundBearishLevel
		if agreeBull || agreeBear {
			confidence += reboundAgreementConf
		}
	}

	if confidence > 1 {
		confidence = 1
	}

	return models.ReboundScore{
		Score:          clampScore(final),
		Confidence:     confidence,
		Signals:        signals,
		Recommendation: reboundAction(clampScore(final)),
	}
}

func reboundAction(score float64) models.ReboundAction {
	switch {
	case score >= 80:
		return models.ReboundStrongBuy
	case score >= 60:
		return models.ReboundBuy
	case score >= 40:
		return models.ReboundHold
	case score >= 20:
		return models.ReboundSell
	default:
		return models.ReboundStrongSell
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
