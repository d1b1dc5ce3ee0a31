package scoring

import (
	"CardPulse/internal/domain/models"
	"CardPulse/internal/services/stats"
)

// VolatilityScorer maps price stability to a score: a calm series is
// investable and scores high, an erratic one scores low.
type VolatilityScorer struct {
	cfg *Config
}

func NewVolatilityScorer(cfg *Config) *VolatilityScorer {
	return &VolatilityScorer{cfg: cfg}
}

// Score inverts the coefficient of variation into [0,100]. An empty
// series scores 0, a single point is the neutral 50.
func (s *VolatilityScorer) Score(prices []float64) models.DimensionScore {
	if len(prices) == 0 {
		return models.DimensionScore{Value: 0}
	}
	if len(prices) == 1 {
		return models.DimensionScore{
			Value:      50,
			SubMetrics: map[string]float64{"cv": 0},
		}
	}

	cv := stats.CoefficientOfVariation(prices)
	maxCV := s.cfg.Volatility.MaxCV
	if maxCV <= 0 {
		maxCV = DefaultConfig().Volatility.MaxCV
	}

	value := clamp(100 - cv*(100/maxCV))
	return models.DimensionScore{
		Value: value,
		SubMetrics: map[string]float64{
			"cv":     cv,
			"stddev": stats.StdDev(prices),
			"mean":   stats.Mean(prices),
		},
	}
}
