package stats

import (
	"math"
	"testing"
)

func inc(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestRSIShortSeriesNeutral(t *testing.T) {
	for n := 0; n < DefaultRSIPeriod+1; n++ {
		if got := RSI(inc(n, 100, 1), DefaultRSIPeriod); got != 50 {
			t.Fatalf("len=%d: expected neutral 50, got %v", n, got)
		}
	}
}

func TestRSIDirection(t *testing.T) {
	up := RSI(inc(15, 100, 2), 14)
	if up <= 50 {
		t.Fatalf("rising series should score above 50, got %v", up)
	}
	if up <= 70 {
		t.Fatalf("strong climb should be overbought, got %v", up)
	}

	down := RSI(inc(15, 100, -2), 14)
	if down >= 50 {
		t.Fatalf("falling series should score below 50, got %v", down)
	}
	if down >= 30 {
		t.Fatalf("steep decline should be oversold, got %v", down)
	}
}

func TestRSIAllGainsIsHundred(t *testing.T) {
	if got := RSI(inc(20, 10, 1), 14); got != 100 {
		t.Fatalf("expected 100 with zero average loss, got %v", got)
	}
}

func TestEMAEdgeCases(t *testing.T) {
	if got := EMA(nil, 10); got != 0 {
		t.Fatalf("empty series: expected 0, got %v", got)
	}
	if got := EMA([]float64{5, 6, 7}, 10); got != 7 {
		t.Fatalf("short series: expected last value, got %v", got)
	}
}

func TestEMAFlatSeries(t *testing.T) {
	if got := EMA([]float64{4, 4, 4, 4, 4, 4}, 3); got != 4 {
		t.Fatalf("flat series EMA should stay at the level, got %v", got)
	}
}

func TestMACDShortSeriesZero(t *testing.T) {
	got := MACD(inc(25, 100, 1))
	if got.MACDLine != 0 || got.SignalLine != 0 || got.Histogram != 0 {
		t.Fatalf("expected zero MACD for 25 prices, got %+v", got)
	}
}

func TestMACDSignalFallback(t *testing.T) {
	// 28 prices: enough for the macd line, too few history points
	// for the 9-period signal EMA.
	got := MACD(inc(28, 100, 1))
	if got.MACDLine == 0 {
		t.Fatalf("uptrend of 28 prices should have a macd line, got %+v", got)
	}
	if got.SignalLine != got.MACDLine {
		t.Fatalf("signal should fall back to the macd line, got %+v", got)
	}
	if got.Histogram != 0 {
		t.Fatalf("fallback histogram should be zero, got %+v", got)
	}
}

func TestMACDTrendingSeries(t *testing.T) {
	got := MACD(inc(60, 100, 1))
	if got.MACDLine <= 0 {
		t.Fatalf("uptrend should have positive macd line, got %+v", got)
	}
	if math.Abs(got.Histogram-(got.MACDLine-got.SignalLine)) > 0.002 {
		t.Fatalf("histogram should be macd minus signal, got %+v", got)
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	if got := CoefficientOfVariation(nil); got != 0 {
		t.Fatalf("empty: expected 0, got %v", got)
	}
	if got := CoefficientOfVariation([]float64{10, 10, 10}); got != 0 {
		t.Fatalf("flat: expected 0, got %v", got)
	}
	erratic := CoefficientOfVariation([]float64{10, 50, 5, 80, 12})
	calm := CoefficientOfVariation([]float64{100, 101, 99, 100, 100})
	if erratic <= calm {
		t.Fatalf("erratic series should have higher CV: %v vs %v", erratic, calm)
	}
}

func TestPearsonCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10}
	if got := PearsonCorrelation(a, b); math.Abs(got-1) > 1e-9 {
		t.Fatalf("perfect positive correlation expected, got %v", got)
	}
	rev := []float64{10, 8, 6, 4, 2}
	if got := PearsonCorrelation(a, rev); math.Abs(got+1) > 1e-9 {
		t.Fatalf("perfect negative correlation expected, got %v", got)
	}
	if got := PearsonCorrelation(a, []float64{1, 2}); got != 0 {
		t.Fatalf("length mismatch should be 0, got %v", got)
	}
	if got := PearsonCorrelation(a, []float64{3, 3, 3, 3, 3}); got != 0 {
		t.Fatalf("zero variance should be 0, got %v", got)
	}
}

func TestDetectOutliers(t *testing.T) {
	got := DetectOutliers([]float64{100, 102, 101, 103, 500, 102, 101})
	if len(got) == 0 {
		t.Fatal("expected the spike to be flagged")
	}
	found := false
	for _, v := range got {
		if v == 500 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 500 in outliers, got %v", got)
	}

	if got := DetectOutliers([]float64{100, 105, 98, 103, 99, 102, 101}); len(got) != 0 {
		t.Fatalf("tight series should have no outliers, got %v", got)
	}
	if got := DetectOutliers([]float64{100, 102}); len(got) != 0 {
		t.Fatalf("series below minimum size should be empty, got %v", got)
	}
}

func TestIsSuspiciousChange(t *testing.T) {
	cases := []struct {
		old, new float64
		want     bool
	}{
		{100, 200, true},
		{100, 30, true},
		{100, 120, false},
		{100, 151, true},
		{100, 150, false},
		{0, 10, true},
		{0, 0, false},
	}
	for _, c := range cases {
		if got := IsSuspiciousChange(c.old, c.new); got != c.want {
			t.Fatalf("IsSuspiciousChange(%v, %v) = %v, want %v", c.old, c.new, got, c.want)
		}
	}
}

func TestVolumeRatio(t *testing.T) {
	if got := VolumeRatio(10, nil); got != 1 {
		t.Fatalf("no history: expected neutral 1, got %v", got)
	}
	if got := VolumeRatio(10, []float64{0, 0, 0}); got != 1 {
		t.Fatalf("zero average: expected neutral 1, got %v", got)
	}
	if got := VolumeRatio(30, []float64{10, 10, 10}); got != 3 {
		t.Fatalf("expected ratio 3, got %v", got)
	}
}

func TestIdempotence(t *testing.T) {
	prices := inc(40, 50, 0.7)
	if RSI(prices, 14) != RSI(prices, 14) {
		t.Fatal("RSI is not idempotent")
	}
	a, b := MACD(prices), MACD(prices)
	if a != b {
		t.Fatal("MACD is not idempotent")
	}
}
