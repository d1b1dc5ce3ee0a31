package scoring

import (
	"testing"

	"CardPulse/internal/domain/models"
)

func TestVolatilityScoreDefaults(t *testing.T) {
	s := NewVolatilityScorer(DefaultConfig())

	if got := s.Score(nil).Value; got != 0 {
		t.Fatalf("empty series: expected 0, got %v", got)
	}
	if got := s.Score([]float64{42}).Value; got != 50 {
		t.Fatalf("single point: expected 50, got %v", got)
	}
}

func TestVolatilityScoreBands(t *testing.T) {
	s := NewVolatilityScorer(DefaultConfig())

	calm := s.Score([]float64{100, 101, 99, 100, 100, 101}).Value
	if calm <= 70 {
		t.Fatalf("near-flat series should score above 70, got %v", calm)
	}

	erratic := s.Score([]float64{10, 50, 5, 80, 12}).Value
	if erratic >= 40 {
		t.Fatalf("erratic series should score below 40, got %v", erratic)
	}
	if erratic >= calm {
		t.Fatalf("score must decrease with volatility: %v vs %v", erratic, calm)
	}
}

func TestGrowthScoreBands(t *testing.T) {
	s := NewGrowthScorer(DefaultConfig())

	decline := s.Score([]float64{100, 90, 80, 70, 60, 50}).Value
	if decline >= 30 {
		t.Fatalf("clear decline should score below 30, got %v", decline)
	}

	growth := s.Score([]float64{100, 120, 140, 160, 180, 200}).Value
	if growth <= 70 {
		t.Fatalf("strong growth should score above 70, got %v", growth)
	}

	flat := s.Score([]float64{100, 100, 100, 100, 100, 100}).Value
	if flat < 45 || flat > 55 {
		t.Fatalf("flat series should land in the neutral band, got %v", flat)
	}
}

func TestGrowthScoreInsufficientData(t *testing.T) {
	s := NewGrowthScorer(DefaultConfig())
	if got := s.Score([]float64{100}).Value; got != 50 {
		t.Fatalf("single point: expected neutral 50, got %v", got)
	}
}

func TestScarcityPopulationBands(t *testing.T) {
	s := NewScarcityScorer(DefaultConfig())

	cases := []struct {
		psa10, total int
		want         float64
	}{
		{50, 400, 5},
		{300, 2500, 15},
		{1500, 12000, 30},
		{8000, 60000, 60},
		{25000, 180000, 85},
	}
	for _, c := range cases {
		got := s.Score(models.PopulationReport{PSA10Count: c.psa10, TotalGraded: c.total})
		if got.Score.Value != c.want {
			t.Fatalf("pop %d: expected %v, got %v", c.psa10, c.want, got.Score.Value)
		}
	}
}

func TestScarcityAdjustments(t *testing.T) {
	s := NewScarcityScorer(DefaultConfig())

	// share 40% adds the high-share penalty
	high := s.Score(models.PopulationReport{PSA10Count: 400, TotalGraded: 1000})
	if high.Score.Value != 25 {
		t.Fatalf("high share: expected 15+10=25, got %v", high.Score.Value)
	}

	// share 4% subtracts the low-share bonus
	low := s.Score(models.PopulationReport{PSA10Count: 400, TotalGraded: 10000})
	if low.Score.Value != 5 {
		t.Fatalf("low share: expected 15-10=5, got %v", low.Score.Value)
	}

	// vintage subtracts further; final score is clamped at 0
	vintage := s.Score(models.PopulationReport{PSA10Count: 40, TotalGraded: 1500, IsVintage: true})
	if vintage.Score.Value != 0 {
		t.Fatalf("vintage grail: expected clamp at 0, got %v", vintage.Score.Value)
	}
}

func TestScarcityMissingReport(t *testing.T) {
	s := NewScarcityScorer(DefaultConfig())
	got := s.Score(models.PopulationReport{})
	if got.Score.Value != 50 || got.Rating != "unknown" {
		t.Fatalf("missing report should be neutral, got %+v", got)
	}
}

func TestSentimentChannelWeights(t *testing.T) {
	s := NewSentimentScorer(DefaultConfig())

	// 100 YouTube mentions weigh more than 100 Discord mentions.
	yt := s.Score(models.SentimentInput{Mentions: models.SocialMentions{YouTube: 100}})
	dc := s.Score(models.SentimentInput{Mentions: models.SocialMentions{Discord: 100}})
	if yt.SubMetrics["weightedMentions"] <= dc.SubMetrics["weightedMentions"] {
		t.Fatalf("youtube should outweigh discord: %v vs %v",
			yt.SubMetrics["weightedMentions"], dc.SubMetrics["weightedMentions"])
	}
}

func TestSentimentBuzzBands(t *testing.T) {
	s := NewSentimentScorer(DefaultConfig())

	cases := []struct {
		reddit int
		want   float64
	}{
		{5, 10},
		{30, 25},
		{150, 50},
		{900, 75},
		{2000, 100},
	}
	for _, c := range cases {
		got := s.Score(models.SentimentInput{Mentions: models.SocialMentions{Reddit: c.reddit}})
		if got.SubMetrics["socialBuzz"] != c.want {
			t.Fatalf("%d mentions: expected buzz %v, got %v", c.reddit, c.want, got.SubMetrics["socialBuzz"])
		}
	}
}

func TestSentimentHypeAndPopularity(t *testing.T) {
	s := NewSentimentScorer(DefaultConfig())

	in := models.SentimentInput{
		Mentions:           models.SocialMentions{Reddit: 300, Twitter: 100},
		BuyOrders:          40,
		SellOrders:         10,
		SearchVolumeChange: 25,
		PokemonName:        "Charizard",
		Rarity:             "Secret Rare",
		IsGraded:           true,
		GradedScore:        10,
	}
	got := s.Score(in)
	if got.SubMetrics["popularity"] != 100 {
		t.Fatalf("charizard should hit the top tier, got %v", got.SubMetrics["popularity"])
	}
	// 50 + 25 search + 15 graded + 10 rarity
	if got.SubMetrics["hypeIndex"] != 100 {
		t.Fatalf("expected hype 100, got %v", got.SubMetrics["hypeIndex"])
	}
	if got.Value < 0 || got.Value > 100 {
		t.Fatalf("value out of range: %v", got.Value)
	}

	unknown := s.Score(models.SentimentInput{PokemonName: "Bidoof"})
	if unknown.SubMetrics["popularity"] != 40 {
		t.Fatalf("unknown name should fall back to default, got %v", unknown.SubMetrics["popularity"])
	}
}

func TestMacroScoreBands(t *testing.T) {
	s := NewMacroScorer(DefaultConfig())

	bull := s.Score(models.MacroSnapshot{BTCChange30d: 60, FearGreedIndex: 85, VIX: 12})
	if bull.Value != 100 {
		t.Fatalf("full risk-on should clamp at 100, got %v", bull.Value)
	}

	bear := s.Score(models.MacroSnapshot{BTCChange30d: -30, FearGreedIndex: 10, VIX: 40})
	if bear.Value != 0 {
		t.Fatalf("full risk-off should clamp at 0, got %v", bear.Value)
	}

	mid := s.Score(models.MacroSnapshot{BTCChange30d: 10, FearGreedIndex: 50, VIX: 18})
	// 10 + 10 + 15
	if mid.Value != 35 {
		t.Fatalf("expected 35, got %v", mid.Value)
	}
}

func TestMacroNegativeIntermediates(t *testing.T) {
	s := NewMacroScorer(DefaultConfig())
	got := s.Score(models.MacroSnapshot{BTCChange30d: -30, FearGreedIndex: 85, VIX: 40})
	// -15 + 40 - 20 = 5; negative terms are legal before the final clamp
	if got.Value != 5 {
		t.Fatalf("expected 5, got %v", got.Value)
	}
	if got.SubMetrics["btcContribution"] != -15 {
		t.Fatalf("expected btc contribution -15, got %v", got.SubMetrics["btcContribution"])
	}
}
