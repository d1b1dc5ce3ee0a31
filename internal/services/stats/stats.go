package stats

import (
	"math"

	"CardPulse/internal/domain/models"
)

// Indicator window lengths and gate thresholds. Band edges are named here
// rather than inlined so they stay independently testable and tunable.
const (
	DefaultRSIPeriod = 14

	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9

	// Outlier detection needs a handful of points before dispersion
	// means anything; below this the result is always empty.
	OutlierMinPoints  = 5
	OutlierZThreshold = 2.0

	// Relative move beyond which a price update is considered suspicious.
	SuspiciousChangeRatio = 0.5
)

// RSI computes the Relative Strength Index with Wilder smoothing.
// Series shorter than period+1 return the neutral 50. A series with no
// losses returns 100. Result is rounded to 2 decimals.
func RSI(prices []float64, period int) float64 {
	if period <= 0 {
		period = DefaultRSIPeriod
	}
	if len(prices) < period+1 {
		return 50
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing across the remaining deltas
	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return round(100-100/(1+rs), 2)
}

// EMA computes an exponential moving average seeded with the simple
// average of the first period values. Empty input returns 0; input
// shorter than period returns the last value.
func EMA(series []float64, period int) float64 {
	if len(series) == 0 {
		return 0
	}
	if period <= 0 || len(series) < period {
		return series[len(series)-1]
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += series[i]
	}
	ema := sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(series); i++ {
		ema = (series[i]-ema)*multiplier + ema
	}
	return ema
}

// MACD computes the 12/26/9 MACD triple. Fewer than 26 prices return the
// all-zero result. The signal line is the 9-period EMA over the MACD-line
// history built by sliding the 12/26 pair across each prefix; with fewer
// than 9 history points it falls back to the MACD line itself. Values are
// rounded to 3 decimals.
func MACD(prices []float64) models.MACDResult {
	if len(prices) < macdSlowPeriod {
		return models.MACDResult{}
	}

	macdLine := EMA(prices, macdFastPeriod) - EMA(prices, macdSlowPeriod)

	history := make([]float64, 0, len(prices)-macdSlowPeriod+1)
	for i := macdSlowPeriod; i <= len(prices); i++ {
		prefix := prices[:i]
		history = append(history, EMA(prefix, macdFastPeriod)-EMA(prefix, macdSlowPeriod))
	}

	signalLine := macdLine
	if len(history) >= macdSignalPeriod {
		signalLine = EMA(history, macdSignalPeriod)
	}

	return models.MACDResult{
		MACDLine:   round(macdLine, 3),
		SignalLine: round(signalLine, 3),
		Histogram:  round(macdLine-signalLine, 3),
	}
}

// Mean returns the arithmetic mean, 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation, 0 for empty input.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sum2 := 0.0
	for _, v := range values {
		d := v - mean
		sum2 += d * d
	}
	return math.Sqrt(sum2 / float64(len(values)))
}

// CoefficientOfVariation returns stddev/mean as a percentage. Empty input
// or a zero mean returns 0.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if len(values) == 0 || mean == 0 {
		return 0
	}
	return StdDev(values) / math.Abs(mean) * 100
}

// PearsonCorrelation computes the correlation of two equal-length series.
// Mismatched lengths, fewer than 2 points, or a zero-variance series all
// return 0 so callers never divide by zero.
func PearsonCorrelation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}
	meanA, meanB := Mean(a), Mean(b)
	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}

// DetectOutliers flags values whose deviation from the mean exceeds the
// z-score gate. Series below the minimum size return an empty list; too
// few points to judge dispersion meaningfully.
func DetectOutliers(prices []float64) []float64 {
	if len(prices) < OutlierMinPoints {
		return []float64{}
	}
	mean := Mean(prices)
	sd := StdDev(prices)
	if sd == 0 {
		return []float64{}
	}
	out := []float64{}
	for _, v := range prices {
		if math.Abs(v-mean) > OutlierZThreshold*sd {
			out = append(out, v)
		}
	}
	return out
}

// IsSuspiciousChange reports whether a price update moved more than the
// suspicious-change ratio relative to the old price, in either direction.
// A zero old price is suspicious iff the new price is non-zero.
func IsSuspiciousChange(oldPrice, newPrice float64) bool {
	if oldPrice == 0 {
		return newPrice > 0
	}
	return math.Abs(newPrice-oldPrice)/math.Abs(oldPrice) > SuspiciousChangeRatio
}

// VolumeRatio returns current volume against the historical average,
// rounded to 2 decimals. Missing history or a zero average is neutral 1.
func VolumeRatio(currentVolume float64, historicalVolumes []float64) float64 {
	avg := Mean(historicalVolumes)
	if len(historicalVolumes) == 0 || avg == 0 {
		return 1
	}
	return round(currentVolume/avg, 2)
}

// PercentChange returns the relative change from first to last value as a
// percentage. Fewer than 2 points or a zero base return 0.
func PercentChange(values []float64) float64 {
	if len(values) < 2 || values[0] == 0 {
		return 0
	}
	return (values[len(values)-1] - values[0]) / math.Abs(values[0]) * 100
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
