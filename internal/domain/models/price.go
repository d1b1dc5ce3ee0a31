package models

import "time"

// Currency is the ISO code a price observation is denominated in.
// Cardmarket feeds quote in EUR only; other codes are rejected at validation.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies enumerates the accepted price currencies.
var SupportedCurrencies = []Currency{CurrencyEUR}

// PricePoint is one observation of a card's market price.
// Ingestion guarantees Value > 0, but scorers tolerate zero or negative
// values defensively and degrade to their neutral defaults.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PriceRecord is a raw price observation as received from a feed,
// prior to validation. Date is kept as a string until it parses.
type PriceRecord struct {
	Value    float64 `json:"value" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,oneof=EUR"`
	Date     string  `json:"date" validate:"required"`
}

// Closes extracts the bare price values from a chronological series.
func Closes(points []PricePoint) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, p.Value)
	}
	return out
}
