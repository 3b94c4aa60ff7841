package award

import (
	"math"

	"github.com/shopspring/decimal"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clamp maps NaN and infinities to zero.
func clamp(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

// Round2 rounds half away from zero to two decimals; non-finite input yields 0.
func Round2(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Mean averages the finite values; it is 0 when there are none.
func Mean(values []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range values {
		if finite(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return clamp(sum / float64(n))
}

// StdDev is the population standard deviation of the finite values.
func StdDev(values []float64) float64 {
	mean := Mean(values)
	sq, n := 0.0, 0
	for _, v := range values {
		if finite(v) {
			sq += (v - mean) * (v - mean)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return clamp(math.Sqrt(sq / float64(n)))
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		if finite(v) {
			total += v
		}
	}
	return total
}
