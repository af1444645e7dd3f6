package stats

import "gonum.org/v1/gonum/stat/distuv"

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormalCDF returns Φ(x), the standard normal cumulative distribution
// function.
func NormalCDF(x float64) float64 {
	return standardNormal.CDF(x)
}

// NormalQuantile returns Φ⁻¹(p), the inverse standard normal CDF, for p
// in (0,1).
func NormalQuantile(p float64) float64 {
	return standardNormal.Quantile(p)
}
