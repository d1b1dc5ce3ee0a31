package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"CardPulse/internal/services/scoring"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Providers struct {
		PopulationURL string        `yaml:"population_url"`
		SentimentURL  string        `yaml:"sentiment_url"`
		MacroURL      string        `yaml:"macro_url"`
		VerdictURL    string        `yaml:"verdict_url"`
		Timeout       time.Duration `yaml:"timeout"`
		CacheTTL      struct {
			Population time.Duration `yaml:"population"`
			Sentiment  time.Duration `yaml:"sentiment"`
			Macro      time.Duration `yaml:"macro"`
			Verdict    time.Duration `yaml:"verdict"`
		} `yaml:"cache_ttl"`
	} `yaml:"providers"`
	Cache struct {
		ResponseTTL   time.Duration `yaml:"response_ttl"`
		MemoryMaxSize int           `yaml:"memory_max_size"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Scoring scoring.Config `yaml:"scoring"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("POPULATION_URL"); v != "" {
		c.Providers.PopulationURL = v
	}
	if v := os.Getenv("SENTIMENT_URL"); v != "" {
		c.Providers.SentimentURL = v
	}
	if v := os.Getenv("MACRO_URL"); v != "" {
		c.Providers.MacroURL = v
	}
	if v := os.Getenv("VERDICT_URL"); v != "" {
		c.Providers.VerdictURL = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
		c.Cache.Redis.Enabled = true
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Providers.Timeout <= 0 {
		c.Providers.Timeout = 3 * time.Second
	}
	if c.Providers.CacheTTL.Population <= 0 {
		c.Providers.CacheTTL.Population = 6 * time.Hour
	}
	if c.Providers.CacheTTL.Sentiment <= 0 {
		c.Providers.CacheTTL.Sentiment = 10 * time.Minute
	}
	if c.Providers.CacheTTL.Macro <= 0 {
		c.Providers.CacheTTL.Macro = 15 * time.Minute
	}
	if c.Providers.CacheTTL.Verdict <= 0 {
		c.Providers.CacheTTL.Verdict = time.Hour
	}
	if c.Cache.ResponseTTL <= 0 {
		c.Cache.ResponseTTL = 30 * time.Second
	}
	if c.Cache.MemoryMaxSize == 0 {
		c.Cache.MemoryMaxSize = 1000
	}

	// An absent scoring section means the production defaults.
	w := c.Scoring.Weights
	if w.Volatility+w.Growth+w.Scarcity+w.Sentiment+w.Macro == 0 {
		c.Scoring = *scoring.DefaultConfig()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	w := c.Scoring.Weights
	sum := w.Volatility + w.Growth + w.Scarcity + w.Sentiment + w.Macro
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring.weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}
