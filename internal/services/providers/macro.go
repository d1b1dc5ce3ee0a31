package providers

import (
	"context"
	"fmt"

	"CardPulse/internal/domain/models"
	domsvc "CardPulse/internal/domain/service"
	"CardPulse/pkg/config"
)

// HTTPMacroProvider snapshots the macro indicators from the macro
// service (CoinGecko BTC momentum, Fear & Greed index, VIX).
type HTTPMacroProvider struct{ base *HTTPServiceBase }

func NewHTTPMacroProvider(cfg *config.Config) *HTTPMacroProvider {
	return &HTTPMacroProvider{base: NewHTTPServiceBase(cfg, cfg.Providers.MacroURL)}
}

type macroResp struct {
	BTCChange30d float64 `json:"btc_change_30d"`
	FearGreed    float64 `json:"fear_greed"`
	VIX          float64 `json:"vix"`
}

func (p *HTTPMacroProvider) Snapshot(ctx context.Context) (models.MacroSnapshot, error) {
	var mr macroResp
	if err := p.base.GetJSONWithRetry(ctx, "/snapshot", nil, &mr, 3); err != nil {
		return models.MacroSnapshot{}, fmt.Errorf("macro snapshot: %w", err)
	}
	return models.MacroSnapshot{
		BTCChange30d:   mr.BTCChange30d,
		FearGreedIndex: mr.FearGreed,
		VIX:            mr.VIX,
	}, nil
}

var _ domsvc.MacroProvider = (*HTTPMacroProvider)(nil)
