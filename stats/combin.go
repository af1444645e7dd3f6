package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// LogBinomial returns the natural log of C(n,k), the binomial
// coefficient "n choose k", via gonum's combin.LogGeneralizedBinomial so
// it stays finite for n in the tens of thousands — the direct factorial
// ratio overflows long before that.
func LogBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}

// LogSumExp returns log(Σ exp(s_i)), computed in a numerically stable
// way by gonum's floats.LogSumExp (it factors out the maximum term).
func LogSumExp(s []float64) float64 {
	if len(s) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(s)
}
