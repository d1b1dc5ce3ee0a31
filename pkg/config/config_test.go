package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Server.Port)
	}
	w := cfg.Scoring.Weights
	sum := w.Volatility + w.Growth + w.Scarcity + w.Sentiment + w.Macro
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("expected default weights to sum to 1, got %v", sum)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	path := writeConfig(t, `environment: test
scoring:
  weights:
    volatility: 0.5
    growth: 0.5
    scarcity: 0.5
    sentiment: 0.0
    macro: 0.0
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected weight validation error")
	}
}

func TestLoadWithEnvOverridesProviderURL(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	t.Setenv("POPULATION_URL", "http://pop.example")
	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Providers.PopulationURL != "http://pop.example" {
		t.Fatalf("expected env override, got %q", cfg.Providers.PopulationURL)
	}
}
