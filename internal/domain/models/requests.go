package models

// Requests for scoring HTTP endpoints. Defined in domain for consistency and reuse.

type SpeculationRequest struct {
	Card              string       `json:"card" validate:"required"`
	SetID             string       `json:"setId" validate:"required"`
	Prices            []PricePoint `json:"prices" validate:"required,min=1"`
	CurrentVolume     float64      `json:"currentVolume" validate:"gte=0"`
	HistoricalVolumes []float64    `json:"historicalVolumes"`
}

type IndicatorsRequest struct {
	Prices            []float64 `json:"prices" validate:"required,min=1"`
	CurrentVolume     float64   `json:"currentVolume" validate:"gte=0"`
	HistoricalVolumes []float64 `json:"historicalVolumes"`
	MLScore           *float64  `json:"mlScore" validate:"omitempty,gte=0,lte=100"`
}

type ReboundRequest struct {
	Prices            []float64 `json:"prices" validate:"required,min=1"`
	CurrentVolume     float64   `json:"currentVolume" validate:"gte=0"`
	HistoricalVolumes []float64 `json:"historicalVolumes"`
	MLScore           *float64  `json:"mlScore" validate:"omitempty,gte=0,lte=100"`
}

type HybridRequest struct {
	Card              string       `json:"card" validate:"required"`
	SetID             string       `json:"setId" validate:"required"`
	Prices            []PricePoint `json:"prices" validate:"required,min=1"`
	CurrentVolume     float64      `json:"currentVolume" validate:"gte=0"`
	HistoricalVolumes []float64    `json:"historicalVolumes"`
	MLScore           *float64     `json:"mlScore" validate:"omitempty,gte=0,lte=100"`
	Analysis          string       `json:"analysis"` // optional external verdict text
}

type ValidatePriceRequest struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
}

type PumpRequest struct {
	Prices []float64 `json:"prices" validate:"required,min=1"`
	Window int       `json:"window" default:"30" validate:"gte=5,lte=365"`
}

type OutliersRequest struct {
	Prices []float64 `json:"prices" validate:"required,min=1"`
}
