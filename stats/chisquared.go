package stats

import "gonum.org/v1/gonum/stat/distuv"

// ChiSquaredCDF returns the CDF of the chi-squared distribution with k
// degrees of freedom at x.
func ChiSquaredCDF(x float64, k int) float64 {
	if x <= 0 {
		return 0
	}
	dist := distuv.ChiSquared{K: float64(k)}
	return Clamp01(dist.CDF(x))
}
