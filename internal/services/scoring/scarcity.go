package scoring

import (
	"CardPulse/internal/domain/models"
)

// ScarcityScorer converts grading-population data into a scarcity score.
// Lower values mean scarcer, more investable cards; the score bands are
// anchored on the PSA10 population count.
type ScarcityScorer struct {
	cfg *Config
}

// ScarcityResult is the scarcity dimension plus its human-readable rating.
type ScarcityResult struct {
	Population int                   `json:"population"`
	Rating     string                `json:"scarcityRating"`
	Score      models.DimensionScore `json:"score"`
}

func NewScarcityScorer(cfg *Config) *ScarcityScorer {
	return &ScarcityScorer{cfg: cfg}
}

// Score bands the PSA10 population, then adjusts for the PSA10 share of
// all graded copies and for vintage sets. A missing report (zero total)
// returns the neutral 50.
func (s *ScarcityScorer) Score(report models.PopulationReport) ScarcityResult {
	bands := s.cfg.Scarcity
	if len(bands.PopulationBands) == 0 {
		bands = DefaultConfig().Scarcity
	}

	if report.TotalGraded <= 0 {
		return ScarcityResult{
			Population: report.PSA10Count,
			Rating:     "unknown",
			Score:      models.DimensionScore{Value: 50},
		}
	}

	value := bands.DefaultScore
	for _, b := range bands.PopulationBands {
		if report.PSA10Count < b.MaxPop {
			value = b.Score
			break
		}
	}

	sharePct := float64(report.PSA10Count) / float64(report.TotalGraded) * 100
	if sharePct > bands.HighSharePct {
		value += bands.HighSharePenalty
	} else if sharePct < bands.LowSharePct {
		value -= bands.LowShareBonus
	}

	if report.IsVintage {
		value -= bands.VintageOffset
	}

	value = clamp(value)
	return ScarcityResult{
		Population: report.PSA10Count,
		Rating:     scarcityRating(value),
		Score: models.DimensionScore{
			Value: value,
			SubMetrics: map[string]float64{
				"psa10Count":    float64(report.PSA10Count),
				"totalGraded":   float64(report.TotalGraded),
				"psa10SharePct": sharePct,
			},
		},
	}
}

func scarcityRating(value float64) string {
	switch {
	case value < 10:
		return "grail"
	case value < 25:
		return "very_scarce"
	case value < 45:
		return "scarce"
	case value < 70:
		return "common"
	default:
		return "abundant"
	}
}
