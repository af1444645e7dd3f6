package stats

import "math"

// HypergeometricSF returns P(X ≥ K) for X ~ Hypergeometric(population=M,
// successes=J, draws=N) — the "ora_p" function of spec.md §4.1 — which
// equals 1 − CDF(K−1) but is computed by summing the upper tail x = K..hi
// directly.
//
// The sum is accumulated in log space via LogBinomial and LogSumExp so
// that it does not underflow in the tail for realistic gene-set sizes
// (N, M up to ~1e5): computing each term as a ratio of raw binomial
// coefficients would overflow float64 long before the sum is taken.
func HypergeometricSF(M, J, N, K int) float64 {
	if K <= 0 {
		return 1
	}
	lo := 0
	if N-(M-J) > lo {
		lo = N - (M - J)
	}
	hi := N
	if J < hi {
		hi = J
	}
	if K > hi {
		return 0
	}
	if lo < K {
		lo = K
	}

	logDenom := LogBinomial(M, N)
	terms := make([]float64, 0, hi-lo+1)
	for x := lo; x <= hi; x++ {
		terms = append(terms, LogBinomial(J, x)+LogBinomial(M-J, N-x)-logDenom)
	}
	sf := math.Exp(LogSumExp(terms))
	return Clamp01(sf)
}
