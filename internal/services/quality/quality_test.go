package quality

import (
	"testing"

	"CardPulse/internal/domain/models"
)

func TestValidatePriceAccepts(t *testing.T) {
	point, err := ValidatePrice(models.PriceRecord{
		Value:    49.99,
		Currency: "EUR",
		Date:     "2024-03-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
	if point.Value != 49.99 {
		t.Fatalf("unexpected value %v", point.Value)
	}
	if point.Date.IsZero() {
		t.Fatal("expected parsed date")
	}
}

func TestValidatePriceRejects(t *testing.T) {
	cases := []struct {
		name string
		rec  models.PriceRecord
	}{
		{"negative value", models.PriceRecord{Value: -10, Currency: "EUR", Date: "2024-03-01T00:00:00Z"}},
		{"zero value", models.PriceRecord{Value: 0, Currency: "EUR", Date: "2024-03-01T00:00:00Z"}},
		{"unsupported currency", models.PriceRecord{Value: 10, Currency: "GBP", Date: "2024-03-01T00:00:00Z"}},
		{"bad date", models.PriceRecord{Value: 10, Currency: "EUR", Date: "not-a-date"}},
	}
	for _, c := range cases {
		if _, err := ValidatePrice(c.rec); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestSafeValidatePrice(t *testing.T) {
	ok := SafeValidatePrice(models.PriceRecord{Value: 12, Currency: "EUR", Date: "2024-03-01T00:00:00Z"})
	if !ok.Success || ok.Data == nil {
		t.Fatalf("expected success, got %+v", ok)
	}

	bad := SafeValidatePrice(models.PriceRecord{Value: -1, Currency: "GBP", Date: "nope"})
	if bad.Success || len(bad.Errors) < 2 {
		t.Fatalf("expected multiple field errors, got %+v", bad)
	}
}

func TestDetectPump(t *testing.T) {
	// Spike at position 10 of a 30-day window, long since receded.
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100
	}
	prices[10] = 500

	got := DetectPump(prices, 30)
	if !got.IsPump {
		t.Fatalf("expected pump, got %+v", got)
	}
	if got.DaysSincePeak != 19 {
		t.Fatalf("expected 19 days since peak, got %d", got.DaysSincePeak)
	}
	if got.MagnitudePct <= 100 {
		t.Fatalf("expected magnitude above 100%%, got %v", got.MagnitudePct)
	}
}

func TestDetectPumpRecentSpikeNotPump(t *testing.T) {
	// Spike still at the window edge: no correction yet.
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100
	}
	prices[28] = 500

	if got := DetectPump(prices, 30); got.IsPump {
		t.Fatalf("spike 1 day old should not flag, got %+v", got)
	}
}

func TestDetectPumpQuietSeries(t *testing.T) {
	prices := []float64{100, 102, 98, 101, 103, 99, 100, 102}
	if got := DetectPump(prices, 30); got.IsPump {
		t.Fatalf("quiet series should not pump, got %+v", got)
	}
}
