package usecase

import (
	"testing"

	"CardPulse/internal/domain/models"
)

func hybridFixture(specTotal, d1, reboundScore, momentum float64) HybridInput {
	return HybridInput{
		Speculation: models.SpeculationScore{
			Total:      specTotal,
			Volatility: models.DimensionScore{Value: d1},
		},
		Rebound:     models.ReboundScore{Score: reboundScore},
		MomentumPct: momentum,
		LastPrice:   100,
	}
}

func TestCombineHybridStrongBuy(t *testing.T) {
	in := hybridFixture(85, 80, 75, 15)
	in.Verdict = models.VerdictBuy
	in.HasVerdict = true

	got := CombineHybrid(in)
	// 2 speculation + 1 momentum + 2 rebound + 2 verdict = 7 bullish
	if got.BullishVotes != 7 {
		t.Fatalf("expected 7 bullish votes, got %d", got.BullishVotes)
	}
	if got.Recommendation != models.RecStrongBuy {
		t.Fatalf("expected STRONG_BUY, got %v", got.Recommendation)
	}
	if got.RiskLevel != models.RiskLow {
		t.Fatalf("d1=80 should be low risk, got %v", got.RiskLevel)
	}
}

func TestCombineHybridStrongSell(t *testing.T) {
	in := hybridFixture(20, 30, 25, -15)
	in.Verdict = models.VerdictSell
	in.HasVerdict = true

	got := CombineHybrid(in)
	// 2 speculation + 1 momentum + 1 rebound + 2 verdict = 6 bearish
	if got.BearishVotes != 6 {
		t.Fatalf("expected 6 bearish votes, got %d", got.BearishVotes)
	}
	if got.Recommendation != models.RecStrongSell {
		t.Fatalf("expected STRONG_SELL, got %v", got.Recommendation)
	}
	if got.RiskLevel != models.RiskHigh {
		t.Fatalf("d1=30 should be high risk, got %v", got.RiskLevel)
	}
}

func TestCombineHybridHold(t *testing.T) {
	got := CombineHybrid(hybridFixture(55, 50, 50, 2))
	// 1 bullish vote only
	if got.Recommendation != models.RecHold {
		t.Fatalf("expected HOLD, got %v (bull=%d bear=%d)", got.Recommendation, got.BullishVotes, got.BearishVotes)
	}
	if got.RiskLevel != models.RiskModerate {
		t.Fatalf("d1=50 should be moderate risk, got %v", got.RiskLevel)
	}
}

func TestCombineHybridBuyThreshold(t *testing.T) {
	// 2 votes from speculation >= 70, 1 from momentum: exactly 3 -> BUY
	got := CombineHybrid(hybridFixture(72, 50, 50, 12))
	if got.BullishVotes != 3 {
		t.Fatalf("expected 3 bullish votes, got %d", got.BullishVotes)
	}
	if got.Recommendation != models.RecBuy {
		t.Fatalf("expected BUY, got %v", got.Recommendation)
	}
}

func TestHybridConfidence(t *testing.T) {
	in := hybridFixture(55, 50, 50, 0)
	// base 50 + price bonus 10; rebound at neutral 50 adds nothing
	if got := CombineHybrid(in); got.Confidence != 60 {
		t.Fatalf("expected 60, got %v", got.Confidence)
	}

	in.Rebound.Score = 65
	in.HasMLScore = true
	// 50 + 25 ml + 15 rebound + 10 price = 100
	if got := CombineHybrid(in); got.Confidence != 100 {
		t.Fatalf("expected 100, got %v", got.Confidence)
	}

	in.LastPrice = 0
	if got := CombineHybrid(in); got.Confidence != 90 {
		t.Fatalf("expected 90 without price bonus, got %v", got.Confidence)
	}
}

func TestHybridScoreBlendInRange(t *testing.T) {
	got := CombineHybrid(hybridFixture(80, 50, 60, 0))
	// 0.6*80 + 0.4*60
	if got.HybridScore != 72 {
		t.Fatalf("expected 72, got %v", got.HybridScore)
	}
}
