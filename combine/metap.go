package combine

import (
	"math"

	"github.com/bzhanglab/webgestalt-go/stats"
)

// MetaPMethod selects how per-list p-values for the same set id are
// combined into one p-value.
type MetaPMethod int

const (
	Stouffer MetaPMethod = iota
	Fisher
)

// pFloor keeps Stouffer's inverse-normal transform and Fisher's log-sum
// away from the ±Inf singularities at p=0 and p=1.
const pFloor = 1e-300

// CombineP applies method to ps, a set's p-values across independent
// jobs, per spec.md §4.5.
func CombineP(ps []float64, method MetaPMethod) float64 {
	switch method {
	case Fisher:
		return fisherCombine(ps)
	default:
		return stoufferCombine(ps)
	}
}

// stoufferCombine computes Φ( (Σ Φ⁻¹(p_i)) / √k ). For k=1 this is the
// identity, per spec.md §8.
func stoufferCombine(ps []float64) float64 {
	if len(ps) == 0 {
		return 1
	}
	var sum float64
	for _, p := range ps {
		sum += stats.NormalQuantile(clampP(p))
	}
	z := sum / math.Sqrt(float64(len(ps)))
	return stats.Clamp01(stats.NormalCDF(z))
}

// fisherCombine computes −2·Σln(p_i) against the chi-squared
// distribution with 2k degrees of freedom.
func fisherCombine(ps []float64) float64 {
	if len(ps) == 0 {
		return 1
	}
	var stat float64
	for _, p := range ps {
		stat += -2 * math.Log(clampP(p))
	}
	df := 2 * len(ps)
	return stats.Clamp01(1 - stats.ChiSquaredCDF(stat, df))
}

func clampP(p float64) float64 {
	if p < pFloor {
		return pFloor
	}
	// 1-pFloor rounds to exactly 1 in float64, so the upper bound is the
	// largest float64 below 1.
	if pCeil := math.Nextafter(1, 0); p > pCeil {
		return pCeil
	}
	return p
}
