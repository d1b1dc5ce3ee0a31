package usecase

import (
	"math"
	"testing"

	"CardPulse/internal/domain/models"
)

func TestCalculateReboundOversoldBullish(t *testing.T) {
	ind := models.TechnicalIndicators{
		RSI14:       25,
		MACD:        models.MACDResult{MACDLine: 1.5, SignalLine: 1.0, Histogram: 0.5},
		VolumeRatio: 2.5,
	}
	got := CalculateRebound(ind)

	// 35 oversold + 35 macd + 30 volume
	if got.Score != 100 {
		t.Fatalf("expected 100, got %v", got.Score)
	}
	if got.Recommendation != models.ReboundStrongBuy {
		t.Fatalf("expected strong_buy, got %v", got.Recommendation)
	}
	// 0.3 + 0.35 + 0.25
	if math.Abs(got.Confidence-0.9) > 1e-9 {
		t.Fatalf("expected confidence 0.9, got %v", got.Confidence)
	}
	if got.Signals.RSI != "oversold" || got.Signals.MACD != "bullish" || got.Signals.Volume != "spiking" {
		t.Fatalf("unexpected signals %+v", got.Signals)
	}
}

func TestCalculateReboundOverboughtBearish(t *testing.T) {
	ind := models.TechnicalIndicators{
		RSI14:       80,
		MACD:        models.MACDResult{MACDLine: -1.5, SignalLine: -1.0, Histogram: -0.5},
		VolumeRatio: 0.3,
	}
	got := CalculateRebound(ind)

	// -15 rsi - 10 macd, clamped at 0
	if got.Score != 0 {
		t.Fatalf("expected clamp at 0, got %v", got.Score)
	}
	if got.Recommendation != models.ReboundStrongSell {
		t.Fatalf("expected strong_sell, got %v", got.Recommendation)
	}
	if got.Signals.Volume != "low" {
		t.Fatalf("low volume should be flagged, got %+v", got.Signals)
	}
}

func TestCalculateReboundWeakRSI(t *testing.T) {
	got := CalculateRebound(models.TechnicalIndicators{RSI14: 35, VolumeRatio: 1})
	if got.Score != 20 {
		t.Fatalf("expected 20, got %v", got.Score)
	}
	if got.Signals.RSI != "weak" {
		t.Fatalf("expected weak rsi signal, got %+v", got.Signals)
	}
	if got.Recommendation != models.ReboundSell {
		t.Fatalf("score 20 should band to sell, got %v", got.Recommendation)
	}
}

func TestCalculateReboundMLBlend(t *testing.T) {
	ind := models.TechnicalIndicators{
		RSI14:       25,
		MACD:        models.MACDResult{MACDLine: 1, SignalLine: 0.5, Histogram: 0.5},
		VolumeRatio: 1,
		MLScore:     90,
		HasMLScore:  true,
	}
	got := CalculateRebound(ind)

	// technical 70, blended 0.7*70 + 0.3*90 = 76
	if got.Score != 76 {
		t.Fatalf("expected 76, got %v", got.Score)
	}
	// 0.3 + 0.35 + 0.15 agreement (both above 60)
	if math.Abs(got.Confidence-0.8) > 1e-9 {
		t.Fatalf("expected confidence 0.8, got %v", got.Confidence)
	}
	if got.Signals.ML != "bullish" {
		t.Fatalf("expected bullish ml signal, got %+v", got.Signals)
	}
}

func TestCalculateReboundConfidenceClamped(t *testing.T) {
	ind := models.TechnicalIndicators{
		RSI14:       25,
		MACD:        models.MACDResult{MACDLine: 1, SignalLine: 0.5, Histogram: 0.5},
		VolumeRatio: 3,
		MLScore:     95,
		HasMLScore:  true,
	}
	got := CalculateRebound(ind)
	if got.Confidence != 1 {
		t.Fatalf("confidence must clamp to 1, got %v", got.Confidence)
	}
}

func TestCalculateIndicatorsFlags(t *testing.T) {
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 100 - float64(i) // steady decline
	}
	ind := CalculateIndicators(prices, 50, []float64{10, 10, 10}, nil)

	if !ind.IsOversold {
		t.Fatalf("steady decline should be oversold, rsi=%v", ind.RSI14)
	}
	if !ind.IsVolumeSpike {
		t.Fatalf("5x volume should spike, ratio=%v", ind.VolumeRatio)
	}
	if ind.IsMACDBullish {
		t.Fatalf("downtrend should not be macd bullish, macd=%+v", ind.MACD)
	}
	if ind.HasMLScore {
		t.Fatal("no ml score supplied")
	}
}
