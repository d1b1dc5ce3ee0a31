package service

import (
	"context"

	"CardPulse/internal/domain/models"
)

// PopulationProvider looks up grading-population data for a card.
// Population acquisition is an external collaborator; only the scoring
// math over the returned report lives in this repo.
type PopulationProvider interface {
	Population(ctx context.Context, cardName, setID string) (models.PopulationReport, error)
}

// SentimentProvider counts social mentions and order-book activity
// for a card across the tracked channels.
type SentimentProvider interface {
	Sentiment(ctx context.Context, cardName string) (models.SentimentInput, error)
}

// MacroProvider snapshots the macro indicators (BTC momentum,
// Fear & Greed, VIX) consumed by the macro dimension.
type MacroProvider interface {
	Snapshot(ctx context.Context) (models.MacroSnapshot, error)
}

// Metrics records scoring outcomes for observability. Implementations
// must be safe for concurrent use.
type Metrics interface {
	RecordScore(kind, card string, value float64)
	RecordProviderError(provider string)
	RecordLatency(op string, seconds float64)
}

// VerdictProvider fetches an external qualitative analysis for a card.
// Implementations return the already-enumerated verdict; free text is
// mapped at the adapter boundary.
type VerdictProvider interface {
	Verdict(ctx context.Context, cardName, setID string) (models.Verdict, error)
}
