package scoring

import (
	"strings"

	"CardPulse/internal/domain/models"
)

// SentimentScorer fuses social buzz, order-book pressure, search hype and
// name popularity into the sentiment dimension.
type SentimentScorer struct {
	cfg *Config
}

func NewSentimentScorer(cfg *Config) *SentimentScorer {
	return &SentimentScorer{cfg: cfg}
}

// Score combines four independently banded sub-terms. Each sub-term is
// left unclamped; only the weighted sum is bounded at the end.
func (s *SentimentScorer) Score(in models.SentimentInput) models.DimensionScore {
	bands := s.cfg.Sentiment
	if len(bands.BuzzBands) == 0 {
		bands = DefaultConfig().Sentiment
	}

	weighted := float64(in.Mentions.Reddit)*bands.RedditWeight +
		float64(in.Mentions.Twitter)*bands.TwitterWeight +
		float64(in.Mentions.YouTube)*bands.YouTubeWeight +
		float64(in.Mentions.Discord)*bands.DiscordWeight

	buzz := bands.BuzzMaxScore
	for _, b := range bands.BuzzBands {
		if weighted < b.MaxMentions {
			buzz = b.Score
			break
		}
	}

	ratio := buyerSellerScore(in.BuyOrders, in.SellOrders)
	hype := s.hypeIndex(in, bands)
	popularity := s.popularity(in.PokemonName, bands)

	value := clamp(bands.BuzzTermWeight*buzz +
		bands.RatioTermWeight*ratio +
		bands.HypeTermWeight*hype +
		bands.PopularityTermWeight*popularity)

	return models.DimensionScore{
		Value: value,
		SubMetrics: map[string]float64{
			"weightedMentions": weighted,
			"socialBuzz":       buzz,
			"buyerSellerScore": ratio,
			"hypeIndex":        hype,
			"popularity":       popularity,
		},
	}
}

// buyerSellerScore bands the buy/sell order ratio. With no sell orders
// the denominator is floored at one so heavy one-sided demand still
// resolves to the top band.
func buyerSellerScore(buyOrders, sellOrders int) float64 {
	den := sellOrders
	if den < 1 {
		den = 1
	}
	ratio := float64(buyOrders) / float64(den)
	switch {
	case ratio > 2:
		return 90
	case ratio > 1.5:
		return 75
	case ratio > 1:
		return 60
	case ratio > 0.5:
		return 40
	default:
		return 20
	}
}

// hypeIndex starts from the search-volume trend and adds influencer
// bonuses for high-grade slabs and chase rarities.
func (s *SentimentScorer) hypeIndex(in models.SentimentInput, bands SentimentBands) float64 {
	hype := 50 + in.SearchVolumeChange
	if in.IsGraded && in.GradedScore >= bands.GradedScoreFloor {
		hype += bands.GradedHypeBonus
	}
	if isChaseRarity(in.Rarity) {
		hype += bands.RareHypeBonus
	}
	return hype
}

func (s *SentimentScorer) popularity(name string, bands SentimentBands) float64 {
	if tier, ok := bands.PopularityTiers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tier
	}
	return bands.DefaultPopularity
}

func isChaseRarity(rarity string) bool {
	r := strings.ToLower(rarity)
	return strings.Contains(r, "secret") ||
		strings.Contains(r, "alt art") ||
		strings.Contains(r, "special illustration") ||
		strings.Contains(r, "hyper")
}
