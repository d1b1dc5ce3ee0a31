package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"CardPulse/internal/domain/models"
	"CardPulse/internal/services/scoring"
)

type stubPopulation struct {
	report models.PopulationReport
	err    error
}

func (s stubPopulation) Population(context.Context, string, string) (models.PopulationReport, error) {
	return s.report, s.err
}

type stubSentiment struct {
	in  models.SentimentInput
	err error
}

func (s stubSentiment) Sentiment(context.Context, string) (models.SentimentInput, error) {
	return s.in, s.err
}

type stubMacro struct {
	snap models.MacroSnapshot
	err  error
}

func (s stubMacro) Snapshot(context.Context) (models.MacroSnapshot, error) {
	return s.snap, s.err
}

type stubVerdict struct {
	v   models.Verdict
	err error
}

func (s stubVerdict) Verdict(context.Context, string, string) (models.Verdict, error) {
	return s.v, s.err
}

type stubMetrics struct {
	scores     map[string]float64
	providers  map[string]int
	operations map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{
		scores:     map[string]float64{},
		providers:  map[string]int{},
		operations: map[string]int{},
	}
}

func (m *stubMetrics) RecordScore(kind, _ string, value float64) { m.scores[kind] = value }
func (m *stubMetrics) RecordProviderError(provider string)       { m.providers[provider]++ }
func (m *stubMetrics) RecordLatency(op string, _ float64)        { m.operations[op]++ }

func pricePoints(values ...float64) []models.PricePoint {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.PricePoint, len(values))
	for i, v := range values {
		out[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Value: v}
	}
	return out
}

func newTestAggregator(pop stubPopulation, soc stubSentiment, mac stubMacro, ver stubVerdict) *ScoreAggregator {
	return NewScoreAggregator(scoring.DefaultConfig(), pop, soc, mac, ver)
}

func TestSpeculationWeightedTotal(t *testing.T) {
	agg := newTestAggregator(
		stubPopulation{report: models.PopulationReport{PSA10Count: 50, TotalGraded: 400}},
		stubSentiment{in: models.SentimentInput{Mentions: models.SocialMentions{Reddit: 300}, PokemonName: "pikachu"}},
		stubMacro{snap: models.MacroSnapshot{BTCChange30d: 10, FearGreedIndex: 50, VIX: 18}},
		stubVerdict{v: models.VerdictNeutral},
	)

	req := models.SpeculationRequest{
		Card:   "Pikachu",
		SetID:  "base1",
		Prices: pricePoints(100, 101, 99, 100, 100, 101),
	}
	got := agg.Speculation(context.Background(), req)

	w := scoring.DefaultConfig().Weights
	want := got.Volatility.Value*w.Volatility +
		got.Growth.Value*w.Growth +
		got.Scarcity.Value*w.Scarcity +
		got.Sentiment.Value*w.Sentiment +
		got.Macro.Value*w.Macro
	if got.Total != want {
		t.Fatalf("total %v does not match weighted sum %v", got.Total, want)
	}
	if got.Total < 0 || got.Total > 100 {
		t.Fatalf("total out of range: %v", got.Total)
	}
	if got.Errors != nil {
		t.Fatalf("no provider failed, got errors %v", got.Errors)
	}
}

func TestSpeculationDegradesOnProviderFailure(t *testing.T) {
	agg := newTestAggregator(
		stubPopulation{err: errors.New("psa down")},
		stubSentiment{err: errors.New("reddit down")},
		stubMacro{err: errors.New("coingecko down")},
		stubVerdict{},
	)

	got := agg.Speculation(context.Background(), models.SpeculationRequest{
		Card:   "Charizard",
		SetID:  "base1",
		Prices: pricePoints(100, 102, 104),
	})

	if got.Scarcity.Value != 50 || got.Sentiment.Value != 50 || got.Macro.Value != 50 {
		t.Fatalf("failed providers should degrade to neutral, got %+v", got)
	}
	if len(got.Errors) != 3 {
		t.Fatalf("expected 3 recorded errors, got %v", got.Errors)
	}
	if got.Total < 0 || got.Total > 100 {
		t.Fatalf("degraded total out of range: %v", got.Total)
	}
}

func TestAggregatorRecordsMetrics(t *testing.T) {
	agg := newTestAggregator(
		stubPopulation{err: errors.New("psa down")},
		stubSentiment{},
		stubMacro{},
		stubVerdict{},
	)
	rec := newStubMetrics()
	agg.SetMetrics(rec)

	_, _, _ = agg.Hybrid(context.Background(), models.HybridRequest{
		Card:   "Mewtwo",
		SetID:  "base1",
		Prices: pricePoints(100, 101, 102),
	})

	if rec.providers["population"] != 1 {
		t.Fatalf("population failure not recorded: %v", rec.providers)
	}
	if _, ok := rec.scores["speculation"]; !ok {
		t.Fatalf("speculation score not recorded: %v", rec.scores)
	}
	if _, ok := rec.scores["hybrid"]; !ok {
		t.Fatalf("hybrid score not recorded: %v", rec.scores)
	}
	if rec.operations["speculation"] != 1 || rec.operations["hybrid"] != 1 {
		t.Fatalf("operation latency not recorded: %v", rec.operations)
	}
}

func TestHybridUsesInlineAnalysisOverProvider(t *testing.T) {
	agg := newTestAggregator(
		stubPopulation{report: models.PopulationReport{PSA10Count: 50, TotalGraded: 400}},
		stubSentiment{in: models.SentimentInput{PokemonName: "charizard"}},
		stubMacro{snap: models.MacroSnapshot{BTCChange30d: 60, FearGreedIndex: 85, VIX: 12}},
		stubVerdict{v: models.VerdictSell}, // must be ignored when text is supplied
	)

	req := models.HybridRequest{
		Card:     "Charizard",
		SetID:    "base1",
		Prices:   pricePoints(100, 110, 120, 130, 140, 150),
		Analysis: "Strong momentum, clear buy signal on this card",
	}
	hybrid, spec, rebound := agg.Hybrid(context.Background(), req)

	if spec.Total < 0 || spec.Total > 100 {
		t.Fatalf("speculation out of range: %v", spec.Total)
	}
	if rebound.Score < 0 || rebound.Score > 100 {
		t.Fatalf("rebound out of range: %v", rebound.Score)
	}
	// inline "buy" verdict contributes 2 bullish votes
	if hybrid.BullishVotes < 2 {
		t.Fatalf("expected verdict votes counted, got %+v", hybrid)
	}
}

func TestHybridVerdictProviderFailureIsNeutral(t *testing.T) {
	agg := newTestAggregator(
		stubPopulation{report: models.PopulationReport{PSA10Count: 50, TotalGraded: 400}},
		stubSentiment{},
		stubMacro{},
		stubVerdict{err: errors.New("gemini down")},
	)

	req := models.HybridRequest{
		Card:   "Mew",
		SetID:  "base1",
		Prices: pricePoints(100, 100, 100),
	}
	hybrid, _, _ := agg.Hybrid(context.Background(), req)
	if hybrid.Recommendation == "" {
		t.Fatal("expected a recommendation even with verdict provider down")
	}
}

func TestParseVerdictWholeWords(t *testing.T) {
	cases := []struct {
		text string
		want models.Verdict
	}{
		{"clear buy opportunity", models.VerdictBuy},
		{"bon moment pour un achat", models.VerdictBuy},
		{"recommend to sell now", models.VerdictSell},
		{"vente conseillée", models.VerdictSell},
		{"holding pattern expected", models.VerdictNeutral},
		// substrings must not fire
		{"the buyer market is sellers-driven", models.VerdictNeutral},
		{"", models.VerdictNeutral},
	}
	for _, c := range cases {
		if got := models.ParseVerdict(c.text); got != c.want {
			t.Fatalf("ParseVerdict(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
