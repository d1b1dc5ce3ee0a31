package providers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"CardPulse/internal/domain/models"
	domsvc "CardPulse/internal/domain/service"
	"CardPulse/pkg/cache"
	"CardPulse/pkg/logger"
)

// Provider responses change slowly relative to price data, so every
// adapter is wrapped in a read-through cache decorator. Values are
// stored as JSON strings so the same decorator works against the
// memory, redis and layered backends. A miss or a cache error falls
// through to the underlying provider.

func cacheGet(ctx context.Context, c cache.Service, log *logger.Logger, key string, dest interface{}) bool {
	var raw string
	err := c.Get(ctx, key, &raw)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) && log != nil {
			log.Warn("provider cache read failed", logger.String("key", key), logger.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

func cacheSet(ctx context.Context, c cache.Service, log *logger.Logger, key string, v interface{}, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.Set(ctx, key, string(b), ttl); err != nil && log != nil {
		log.Warn("provider cache write failed", logger.String("key", key), logger.Error(err))
	}
}

// CachedPopulationProvider caches population reports per card/set.
type CachedPopulationProvider struct {
	next  domsvc.PopulationProvider
	cache cache.Service
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedPopulationProvider(next domsvc.PopulationProvider, c cache.Service, ttl time.Duration, log *logger.Logger) *CachedPopulationProvider {
	return &CachedPopulationProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *CachedPopulationProvider) Population(ctx context.Context, cardName, setID string) (models.PopulationReport, error) {
	key := cache.GenerateKeyWithParams("provider:population", cardName, setID)
	var cached models.PopulationReport
	if cacheGet(ctx, p.cache, p.log, key, &cached) {
		return cached, nil
	}

	report, err := p.next.Population(ctx, cardName, setID)
	if err != nil {
		return models.PopulationReport{}, err
	}
	cacheSet(ctx, p.cache, p.log, key, report, p.ttl)
	return report, nil
}

// CachedSentimentProvider caches sentiment inputs per card.
type CachedSentimentProvider struct {
	next  domsvc.SentimentProvider
	cache cache.Service
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedSentimentProvider(next domsvc.SentimentProvider, c cache.Service, ttl time.Duration, log *logger.Logger) *CachedSentimentProvider {
	return &CachedSentimentProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *CachedSentimentProvider) Sentiment(ctx context.Context, cardName string) (models.SentimentInput, error) {
	key := cache.GenerateKey("provider:sentiment", cardName)
	var cached models.SentimentInput
	if cacheGet(ctx, p.cache, p.log, key, &cached) {
		return cached, nil
	}

	input, err := p.next.Sentiment(ctx, cardName)
	if err != nil {
		return models.SentimentInput{}, err
	}
	cacheSet(ctx, p.cache, p.log, key, input, p.ttl)
	return input, nil
}

// CachedMacroProvider caches the macro snapshot; the snapshot is global
// so a single key is enough.
type CachedMacroProvider struct {
	next  domsvc.MacroProvider
	cache cache.Service
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedMacroProvider(next domsvc.MacroProvider, c cache.Service, ttl time.Duration, log *logger.Logger) *CachedMacroProvider {
	return &CachedMacroProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *CachedMacroProvider) Snapshot(ctx context.Context) (models.MacroSnapshot, error) {
	const key = "provider:macro:snapshot"
	var cached models.MacroSnapshot
	if cacheGet(ctx, p.cache, p.log, key, &cached) {
		return cached, nil
	}

	snap, err := p.next.Snapshot(ctx)
	if err != nil {
		return models.MacroSnapshot{}, err
	}
	cacheSet(ctx, p.cache, p.log, key, snap, p.ttl)
	return snap, nil
}

// CachedVerdictProvider caches the enumerated verdict per card/set.
type CachedVerdictProvider struct {
	next  domsvc.VerdictProvider
	cache cache.Service
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedVerdictProvider(next domsvc.VerdictProvider, c cache.Service, ttl time.Duration, log *logger.Logger) *CachedVerdictProvider {
	return &CachedVerdictProvider{next: next, cache: c, ttl: ttl, log: log}
}

func (p *CachedVerdictProvider) Verdict(ctx context.Context, cardName, setID string) (models.Verdict, error) {
	key := cache.GenerateKeyWithParams("provider:verdict", cardName, setID)
	var cached models.Verdict
	if cacheGet(ctx, p.cache, p.log, key, &cached) {
		return cached, nil
	}

	verdict, err := p.next.Verdict(ctx, cardName, setID)
	if err != nil {
		return models.VerdictNeutral, err
	}
	cacheSet(ctx, p.cache, p.log, key, verdict, p.ttl)
	return verdict, nil
}

var (
	_ domsvc.PopulationProvider = (*CachedPopulationProvider)(nil)
	_ domsvc.SentimentProvider  = (*CachedSentimentProvider)(nil)
	_ domsvc.MacroProvider      = (*CachedMacroProvider)(nil)
	_ domsvc.VerdictProvider    = (*CachedVerdictProvider)(nil)
)
