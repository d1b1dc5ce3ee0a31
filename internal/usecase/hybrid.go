package usecase

import (
	"CardPulse/internal/domain/models"
)

// Hybrid signal-voting thresholds and confidence components.
const (
	hybridSpecStrong  = 70.0
	hybridSpecBullish = 50.0
	hybridSpecBearish = 30.0

	hybridMomentumPct = 10.0

	hybridReboundBull = 70.0
	hybridReboundBear = 30.0

	hybridStrongVotes = 5
	hybridLabelVotes  = 3

	// hybrid score blend of the two numeric inputs
	hybridSpecWeight    = 0.6
	hybridReboundWeight = 0.4

	confidenceBase       = 50.0
	confidenceAIBonus    = 25.0
	confidenceTechBonus  = 15.0
	confidencePriceBonus = 10.0
	reboundNeutralScore  = 50.0
)

// HybridInput bundles the already-computed signals the final
// recommendation votes over.
type HybridInput struct {
	Speculation models.SpeculationScore
	Rebound     models.ReboundScore
	MomentumPct float64 // price change over the scored window, percent
	LastPrice   float64
	Verdict     models.Verdict
	HasVerdict  bool
	HasMLScore  bool
}

// CombineHybrid fuses the speculation score, the rebound score, price
// momentum and the optional external verdict through a signal-voting
// scheme into the final recommendation.
func CombineHybrid(in HybridInput) models.HybridRecommendation {
	var bullish, bearish int

	switch {
	case in.Speculation.Total >= hybridSpecStrong:
		bullish += 2
	case in.Speculation.Total >= hybridSpecBullish:
		bullish++
	case in.Speculation.Total <= hybridSpecBearish:
		bearish += 2
	}

	if in.MomentumPct >= hybridMomentumPct {
		bullish++
	} else if in.MomentumPct <= -hybridMomentumPct {
		bearish++
	}

	if in.Rebound.Score >= hybridReboundBull {
		bullish += 2
	} else if in.Rebound.Score <= hybridReboundBear {
		bearish++
	}

	if in.HasVerdict {
		switch in.Verdict {
		case models.VerdictBuy:
			bullish += 2
		case models.VerdictSell:
			bearish += 2
		}
	}

	return models.HybridRecommendation{
		HybridScore:    clampScore(hybridSpecWeight*in.Speculation.Total + hybridReboundWeight*in.Rebound.Score),
		Recommendation: voteLabel(bullish, bearish),
		RiskLevel:      riskFromVolatility(in.Speculation.Volatility.Value),
		Confidence:     hybridConfidence(in),
		BullishVotes:   bullish,
		BearishVotes:   bearish,
	}
}

func voteLabel(bullish, bearish int) models.Recommendation {
	switch {
	case bullish >= hybridStrongVotes:
		return models.RecStrongBuy
	case bullish >= hybridLabelVotes:
		return models.RecBuy
	case bearish >= hybridStrongVotes:
		return models.RecStrongSell
	case bearish >= hybridLabelVotes:
		return models.RecSell
	default:
		return models.RecHold
	}
}

// riskFromVolatility derives risk solely from D1. A high volatility
// score means a stable price, hence low risk.
func riskFromVolatility(d1 float64) models.RiskLevel {
	switch {
	case d1 >= 70:
		return models.RiskLow
	case d1 >= 40:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}

func hybridConfidence(in HybridInput) float64 {
	conf := confidenceBase
	if in.HasMLScore {
		conf += confidenceAIBonus
	}
	if in.Rebound.Score != reboundNeutralScore {
		conf += confidenceTechBonus
	}
	if in.LastPrice > 0 {
		conf += confidencePriceBonus
	}
	if conf > 100 {
		conf = 100
	}
	return conf
}
