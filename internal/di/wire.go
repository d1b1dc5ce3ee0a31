//go:build wireinject
// +build wireinject

package di

import (
	"CardPulse/pkg/config"
	"CardPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideProviderCache,

		// External data providers (cached)
		ProvidePopulationProvider,
		ProvideSentimentProvider,
		ProvideMacroProvider,
		ProvideVerdictProvider,

		// Use cases
		ProvideScoreAggregator,

		// HTTP
		ProvideResponseCache,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
