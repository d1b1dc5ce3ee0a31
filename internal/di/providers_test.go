package di

import (
	"io"
	"testing"

	icache "CardPulse/internal/service/cache"
	"CardPulse/pkg/config"
)

func TestResponseCacheBackendSelection(t *testing.T) {
	cfg := &config.Config{}
	if _, ok := ProvideResponseCache(cfg).(*icache.TTLCache); !ok {
		t.Fatal("redis disabled should fall back to the in-process TTL cache")
	}

	cfg.Cache.Redis.Enabled = true
	cfg.Cache.Redis.Host = "localhost"
	cfg.Cache.Redis.Port = 6379
	rc := ProvideResponseCache(cfg)
	closer, ok := rc.(io.Closer)
	if !ok {
		t.Fatal("redis response cache must be closable for shutdown")
	}
	_ = closer.Close()
}
