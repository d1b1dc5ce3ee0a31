package di

import (
	"fmt"
	"io"

	domsvc "CardPulse/internal/domain/service"
	"CardPulse/internal/handler/api"
	icache "CardPulse/internal/service/cache"
	"CardPulse/internal/services/providers"
	"CardPulse/internal/usecase"
	pkgcache "CardPulse/pkg/cache"
	"CardPulse/pkg/config"
	xhttp "CardPulse/pkg/http"
	applogger "CardPulse/pkg/logger"
	"CardPulse/pkg/metrics"
	"CardPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domsvc.Metrics {
	return metrics.New()
}

// ProvideProviderCache creates the cache backing the provider decorators.
// Redis-backed layered cache when configured, in-process otherwise.
func ProvideProviderCache(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache(
			pkgcache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize),
		), nil
	}
	redis, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
		pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		pkgcache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(redis,
		pkgcache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize),
	), nil
}

// ProvidePopulationProvider creates the cached population adapter.
func ProvidePopulationProvider(cfg *config.Config, c pkgcache.Service, l *applogger.Logger) domsvc.PopulationProvider {
	return providers.NewCachedPopulationProvider(
		providers.NewHTTPPopulationProvider(cfg), c, cfg.Providers.CacheTTL.Population, l,
	)
}

// ProvideSentimentProvider creates the cached sentiment adapter.
func ProvideSentimentProvider(cfg *config.Config, c pkgcache.Service, l *applogger.Logger) domsvc.SentimentProvider {
	return providers.NewCachedSentimentProvider(
		providers.NewHTTPSentimentProvider(cfg), c, cfg.Providers.CacheTTL.Sentiment, l,
	)
}

// ProvideMacroProvider creates the cached macro adapter.
func ProvideMacroProvider(cfg *config.Config, c pkgcache.Service, l *applogger.Logger) domsvc.MacroProvider {
	return providers.NewCachedMacroProvider(
		providers.NewHTTPMacroProvider(cfg), c, cfg.Providers.CacheTTL.Macro, l,
	)
}

// ProvideVerdictProvider creates the cached verdict adapter.
func ProvideVerdictProvider(cfg *config.Config, c pkgcache.Service, l *applogger.Logger) domsvc.VerdictProvider {
	return providers.NewCachedVerdictProvider(
		providers.NewHTTPVerdictProvider(cfg), c, cfg.Providers.CacheTTL.Verdict, l,
	)
}

// ProvideScoreAggregator creates the scoring use case.
func ProvideScoreAggregator(
	cfg *config.Config,
	m domsvc.Metrics,
	population domsvc.PopulationProvider,
	social domsvc.SentimentProvider,
	macro domsvc.MacroProvider,
	verdicts domsvc.VerdictProvider,
) *usecase.ScoreAggregator {
	agg := usecase.NewScoreAggregator(&cfg.Scoring, population, social, macro, verdicts)
	agg.SetMetrics(m)
	return agg
}

// ProvideResponseCache creates the handler's response cache. Redis keeps
// responses shared across replicas; otherwise in-process TTL.
func ProvideResponseCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     fmt.Sprintf("%s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *applogger.Logger, agg *usecase.ScoreAggregator, rc icache.BytesCache) xhttp.Handler {
	h := api.NewScoresEchoHandler(l, agg)
	h.SetCache(rc)
	return h
}

// ProvideApp creates the application server and takes ownership of the
// cache backends for shutdown.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, c pkgcache.Service, rc icache.BytesCache) *server.App {
	app := server.New(cfg, l, h)
	app.AddCloser(c.Close)
	if closer, ok := rc.(io.Closer); ok {
		app.AddCloser(closer.Close)
	}
	return app
}
