package scoring

import (
	"CardPulse/internal/domain/models"
	"CardPulse/internal/services/stats"
)

// GrowthScorer measures the price trend against a flat baseline.
type GrowthScorer struct {
	cfg *Config
}

func NewGrowthScorer(cfg *Config) *GrowthScorer {
	return &GrowthScorer{cfg: cfg}
}

// Score maps the total percent change of the series onto [0,100] around
// the neutral band. Fewer than 2 points cannot express a trend and
// return the neutral default.
func (s *GrowthScorer) Score(prices []float64) models.DimensionScore {
	neutral := s.cfg.Growth.Neutral
	if neutral == 0 {
		neutral = DefaultConfig().Growth.Neutral
	}
	if len(prices) < 2 {
		return models.DimensionScore{
			Value:      neutral,
			SubMetrics: map[string]float64{"totalChangePct": 0},
		}
	}

	slope := s.cfg.Growth.Slope
	if slope == 0 {
		slope = DefaultConfig().Growth.Slope
	}

	change := stats.PercentChange(prices)
	value := clamp(neutral + change*slope)
	return models.DimensionScore{
		Value: value,
		SubMetrics: map[string]float64{
			"totalChangePct": change,
			"first":          prices[0],
			"last":           prices[len(prices)-1],
		},
	}
}
