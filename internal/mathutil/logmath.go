// Package mathutil provides log-domain arithmetic and small matrix helpers
// shared by model fitting and scoring.
package mathutil

import "math"

// LogZero represents log(0), used as negative infinity in log-domain arithmetic.
const LogZero = -1e30

// LogAdd returns log(exp(a) + exp(b)) in a numerically stable way.
// When the smaller term contributes less than float64 precision it is
// dropped without evaluating exp/log1p.
func LogAdd(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if b <= LogZero {
		return a
	}
	d := b - a
	if d < -36.0 {
		return a
	}
	return a + math.Log1p(math.Exp(d))
}

// LogSumVec returns the log of the sum of exponentials of v.
func LogSumVec(v []float64) float64 {
	sum := LogZero
	for _, x := range v {
		sum = LogAdd(sum, x)
	}
	return sum
}
