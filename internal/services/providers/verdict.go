package providers

import (
	"context"
	"fmt"

	"CardPulse/internal/domain/models"
	domsvc "CardPulse/internal/domain/service"
	"CardPulse/pkg/config"
)

// HTTPVerdictProvider fetches a free-text qualitative analysis from the
// AI verdict service and maps it to a models.Verdict at this boundary.
// Downstream code only ever sees the enum.
type HTTPVerdictProvider struct{ base *HTTPServiceBase }

func NewHTTPVerdictProvider(cfg *config.Config) *HTTPVerdictProvider {
	return &HTTPVerdictProvider{base: NewHTTPServiceBase(cfg, cfg.Providers.VerdictURL)}
}

type verdictResp struct {
	Analysis string `json:"analysis"`
}

func (p *HTTPVerdictProvider) Verdict(ctx context.Context, cardName, setID string) (models.Verdict, error) {
	var vr verdictResp
	err := p.base.GetJSON(ctx, "/analysis", map[string][]string{
		"card": {cardName},
		"set":  {setID},
	}, &vr)
	if err != nil {
		return models.VerdictNeutral, fmt.Errorf("verdict lookup: %w", err)
	}
	return models.ParseVerdict(vr.Analysis), nil
}

var _ domsvc.VerdictProvider = (*HTTPVerdictProvider)(nil)
