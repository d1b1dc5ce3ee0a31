package providers

import (
	"context"
	"fmt"

	"CardPulse/internal/domain/models"
	domsvc "CardPulse/internal/domain/service"
	"CardPulse/pkg/config"
)

// HTTPPopulationProvider fetches grading-population reports from the
// population service (a proxy over PSA pop report data).
type HTTPPopulationProvider struct{ base *HTTPServiceBase }

func NewHTTPPopulationProvider(cfg *config.Config) *HTTPPopulationProvider {
	return &HTTPPopulationProvider{base: NewHTTPServiceBase(cfg, cfg.Providers.PopulationURL)}
}

type populationResp struct {
	CardName    string `json:"card_name"`
	SetID       string `json:"set_id"`
	PSA10       int    `json:"psa10"`
	TotalGraded int    `json:"total_graded"`
	Rarity      string `json:"rarity"`
	IsVintage   bool   `json:"is_vintage"`
}

func (p *HTTPPopulationProvider) Population(ctx context.Context, cardName, setID string) (models.PopulationReport, error) {
	var pr populationResp
	err := p.base.GetJSONWithRetry(ctx, "/population", map[string][]string{
		"card": {cardName},
		"set":  {setID},
	}, &pr, 3)
	if err != nil {
		return models.PopulationReport{}, fmt.Errorf("population lookup: %w", err)
	}
	return models.PopulationReport{
		CardName:    pr.CardName,
		SetID:       pr.SetID,
		PSA10Count:  pr.PSA10,
		TotalGraded: pr.TotalGraded,
		Rarity:      pr.Rarity,
		IsVintage:   pr.IsVintage,
	}, nil
}

var _ domsvc.PopulationProvider = (*HTTPPopulationProvider)(nil)
