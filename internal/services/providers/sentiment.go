package providers

import (
	"context"
	"fmt"

	"CardPulse/internal/domain/models"
	domsvc "CardPulse/internal/domain/service"
	"CardPulse/pkg/config"
)

// HTTPSentimentProvider fetches social mention counts and order-book
// activity from the sentiment service (Reddit/Twitter/YouTube/Discord
// counters plus marketplace order data).
type HTTPSentimentProvider struct{ base *HTTPServiceBase }

func NewHTTPSentimentProvider(cfg *config.Config) *HTTPSentimentProvider {
	return &HTTPSentimentProvider{base: NewHTTPServiceBase(cfg, cfg.Providers.SentimentURL)}
}

type sentimentResp struct {
	Reddit             int     `json:"reddit"`
	Twitter            int     `json:"twitter"`
	YouTube            int     `json:"youtube"`
	Discord            int     `json:"discord"`
	BuyOrders          int     `json:"buy_orders"`
	SellOrders         int     `json:"sell_orders"`
	SearchVolumeChange float64 `json:"search_volume_change"`
	PokemonName        string  `json:"pokemon_name"`
	Rarity             string  `json:"rarity"`
	IsGraded           bool    `json:"is_graded"`
	GradedScore        float64 `json:"graded_score"`
}

func (p *HTTPSentimentProvider) Sentiment(ctx context.Context, cardName string) (models.SentimentInput, error) {
	var sr sentimentResp
	err := p.base.GetJSON(ctx, "/mentions", map[string][]string{
		"card": {cardName},
	}, &sr)
	if err != nil {
		return models.SentimentInput{}, fmt.Errorf("sentiment lookup: %w", err)
	}
	return models.SentimentInput{
		Mentions: models.SocialMentions{
			Reddit:  sr.Reddit,
			Twitter: sr.Twitter,
			YouTube: sr.YouTube,
			Discord: sr.Discord,
		},
		BuyOrders:          sr.BuyOrders,
		SellOrders:         sr.SellOrders,
		SearchVolumeChange: sr.SearchVolumeChange,
		PokemonName:        sr.PokemonName,
		Rarity:             sr.Rarity,
		IsGraded:           sr.IsGraded,
		GradedScore:        sr.GradedScore,
	}, nil
}

var _ domsvc.SentimentProvider = (*HTTPSentimentProvider)(nil)
