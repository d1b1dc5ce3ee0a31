package scoring

import (
	"CardPulse/internal/domain/models"
)

// MacroScorer translates the macro environment (BTC momentum, crowd
// sentiment, equity volatility) into a risk-on/risk-off score for
// collectible speculation.
type MacroScorer struct {
	cfg *Config
}

func NewMacroScorer(cfg *Config) *MacroScorer {
	return &MacroScorer{cfg: cfg}
}

// Score sums the three banded contributions and clamps once at the end;
// a hostile environment can push intermediates well below zero.
func (s *MacroScorer) Score(snap models.MacroSnapshot) models.DimensionScore {
	bands := s.cfg.Macro
	if bands.BTCStrongAdd == 0 {
		bands = DefaultConfig().Macro
	}

	var btc float64
	switch {
	case snap.BTCChange30d > bands.BTCStrongPct:
		btc = bands.BTCStrongAdd
	case snap.BTCChange30d > bands.BTCModeratePct:
		btc = bands.BTCModerateAdd
	case snap.BTCChange30d > 0:
		btc = bands.BTCPositiveAdd
	case snap.BTCChange30d < bands.BTCCrashPct:
		btc = -bands.BTCCrashSub
	}

	var fg float64
	switch {
	case snap.FearGreedIndex > bands.FGEuphoric:
		fg = bands.FGEuphoricAdd
	case snap.FearGreedIndex > bands.FGGreedy:
		fg = bands.FGGreedyAdd
	case snap.FearGreedIndex > bands.FGNeutral:
		fg = bands.FGNeutralAdd
	case snap.FearGreedIndex < bands.FGFearful:
		fg = -bands.FGFearfulSub
	}

	var vix float64
	switch {
	case snap.VIX > 0 && snap.VIX < bands.VIXCalm:
		vix = bands.VIXCalmAdd // risk-on
	case snap.VIX > 0 && snap.VIX < bands.VIXNormal:
		vix = bands.VIXNormalAdd
	case snap.VIX > bands.VIXStressed:
		vix = -bands.VIXStressedSub // risk-off
	}

	value := clamp(btc + fg + vix)
	return models.DimensionScore{
		Value: value,
		SubMetrics: map[string]float64{
			"btcContribution":       btc,
			"fearGreedContribution": fg,
			"vixContribution":       vix,
		},
	}
}
