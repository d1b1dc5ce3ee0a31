package usecase

import (
	"context"
	"time"

	"CardPulse/internal/domain/models"
	domsvc "CardPulse/internal/domain/service"
	"CardPulse/internal/services/scoring"
	"CardPulse/internal/services/stats"
)

// ScoreAggregator composes the five dimension scorers and the external
// data providers into the speculation, rebound and hybrid scores. All
// scoring is pure; the aggregator only resolves provider inputs first.
type ScoreAggregator struct {
	cfg        *scoring.Config
	volatility *scoring.VolatilityScorer
	growth     *scoring.GrowthScorer
	scarcity   *scoring.ScarcityScorer
	sentiment  *scoring.SentimentScorer
	macro      *scoring.MacroScorer

	population domsvc.PopulationProvider
	social     domsvc.SentimentProvider
	macroData  domsvc.MacroProvider
	verdicts   domsvc.VerdictProvider

	metrics domsvc.Metrics
}

func NewScoreAggregator(
	cfg *scoring.Config,
	population domsvc.PopulationProvider,
	social domsvc.SentimentProvider,
	macroData domsvc.MacroProvider,
	verdicts domsvc.VerdictProvider,
) *ScoreAggregator {
	if cfg == nil {
		cfg = scoring.DefaultConfig()
	}
	return &ScoreAggregator{
		cfg:        cfg,
		volatility: scoring.NewVolatilityScorer(cfg),
		growth:     scoring.NewGrowthScorer(cfg),
		scarcity:   scoring.NewScarcityScorer(cfg),
		sentiment:  scoring.NewSentimentScorer(cfg),
		macro:      scoring.NewMacroScorer(cfg),
		population: population,
		social:     social,
		macroData:  macroData,
		verdicts:   verdicts,
	}
}

// SetMetrics injects a metrics recorder.
func (a *ScoreAggregator) SetMetrics(m domsvc.Metrics) { a.metrics = m }

func (a *ScoreAggregator) recordProviderError(provider string) {
	if a.metrics != nil {
		a.metrics.RecordProviderError(provider)
	}
}

func (a *ScoreAggregator) recordScore(kind, card string, value float64) {
	if a.metrics != nil {
		a.metrics.RecordScore(kind, card, value)
	}
}

func (a *ScoreAggregator) recordLatency(op string, started time.Time) {
	if a.metrics != nil {
		a.metrics.RecordLatency(op, time.Since(started).Seconds())
	}
}

// Speculation resolves the provider inputs for a card and combines the
// five dimensions into the weighted total. Provider failures degrade to
// neutral defaults and are reported in the Errors map; the worst-case
// outcome is a neutral score, never an empty dashboard.
func (a *ScoreAggregator) Speculation(ctx context.Context, req models.SpeculationRequest) models.SpeculationScore {
	defer a.recordLatency("speculation", time.Now())

	closes := models.Closes(req.Prices)
	errs := map[string]string{}

	d1 := a.volatility.Score(closes)
	d2 := a.growth.Score(closes)

	var d3 models.DimensionScore
	if report, err := a.population.Population(ctx, req.Card, req.SetID); err != nil {
		errs["population"] = err.Error()
		a.recordProviderError("population")
		d3 = models.DimensionScore{Value: 50}
	} else {
		d3 = a.scarcity.Score(report).Score
	}

	var d4 models.DimensionScore
	if in, err := a.social.Sentiment(ctx, req.Card); err != nil {
		errs["sentiment"] = err.Error()
		a.recordProviderError("sentiment")
		d4 = models.DimensionScore{Value: 50}
	} else {
		d4 = a.sentiment.Score(in)
	}

	var d5 models.DimensionScore
	if snap, err := a.macroData.Snapshot(ctx); err != nil {
		errs["macro"] = err.Error()
		a.recordProviderError("macro")
		d5 = models.DimensionScore{Value: 50}
	} else {
		d5 = a.macro.Score(snap)
	}

	if len(errs) == 0 {
		errs = nil
	}

	w := a.cfg.Weights
	total := d1.Value*w.Volatility +
		d2.Value*w.Growth +
		d3.Value*w.Scarcity +
		d4.Value*w.Sentiment +
		d5.Value*w.Macro

	a.recordScore("speculation", req.Card, clampScore(total))

	return models.SpeculationScore{
		Total:      clampScore(total),
		Volatility: d1,
		Growth:     d2,
		Scarcity:   d3,
		Sentiment:  d4,
		Macro:      d5,
		Computed:   time.Now(),
		Errors:     errs,
	}
}

// Scarcity exposes the scarcity dimension with its rating, resolving the
// population report from the provider.
func (a *ScoreAggregator) Scarcity(ctx context.Context, cardName, setID string) (scoring.ScarcityResult, error) {
	report, err := a.population.Population(ctx, cardName, setID)
	if err != nil {
		return scoring.ScarcityResult{}, err
	}
	return a.scarcity.Score(report), nil
}

// Rebound computes the technical snapshot and its rebound score.
func (a *ScoreAggregator) Rebound(req models.ReboundRequest) (models.TechnicalIndicators, models.ReboundScore) {
	ind := CalculateIndicators(req.Prices, req.CurrentVolume, req.HistoricalVolumes, req.MLScore)
	return ind, CalculateRebound(ind)
}

// Hybrid computes everything and fuses it into the final recommendation.
// The external verdict text, if any, is mapped to its enum here; when
// absent the verdict provider is consulted instead.
func (a *ScoreAggregator) Hybrid(ctx context.Context, req models.HybridRequest) (models.HybridRecommendation, models.SpeculationScore, models.ReboundScore) {
	defer a.recordLatency("hybrid", time.Now())

	spec := a.Speculation(ctx, models.SpeculationRequest{
		Card:              req.Card,
		SetID:             req.SetID,
		Prices:            req.Prices,
		CurrentVolume:     req.CurrentVolume,
		HistoricalVolumes: req.HistoricalVolumes,
	})

	closes := models.Closes(req.Prices)
	_, rebound := a.Rebound(models.ReboundRequest{
		Prices:            closes,
		CurrentVolume:     req.CurrentVolume,
		HistoricalVolumes: req.HistoricalVolumes,
		MLScore:           req.MLScore,
	})

	verdict, hasVerdict := a.resolveVerdict(ctx, req)

	lastPrice := 0.0
	if len(closes) > 0 {
		lastPrice = closes[len(closes)-1]
	}

	hybrid := CombineHybrid(HybridInput{
		Speculation: spec,
		Rebound:     rebound,
		MomentumPct: stats.PercentChange(closes),
		LastPrice:   lastPrice,
		Verdict:     verdict,
		HasVerdict:  hasVerdict,
		HasMLScore:  req.MLScore != nil,
	})
	a.recordScore("hybrid", req.Card, hybrid.HybridScore)
	return hybrid, spec, rebound
}

func (a *ScoreAggregator) resolveVerdict(ctx context.Context, req models.HybridRequest) (models.Verdict, bool) {
	if req.Analysis != "" {
		return models.ParseVerdict(req.Analysis), true
	}
	if a.verdicts == nil {
		return models.VerdictNeutral, false
	}
	v, err := a.verdicts.Verdict(ctx, req.Card, req.SetID)
	if err != nil {
		return models.VerdictNeutral, false
	}
	return v, true
}
