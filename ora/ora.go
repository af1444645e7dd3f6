// Package ora implements Over-Representation Analysis: a per-set
// hypergeometric test against an interest list and a reference list,
// followed by multiple-testing correction across the whole collection.
package ora

import (
	"errors"
	"math"

	"github.com/bzhanglab/webgestalt-go/analyte"
	"github.com/bzhanglab/webgestalt-go/parallel"
	"github.com/bzhanglab/webgestalt-go/stats"
)

// Config holds the ORA thresholds of spec.md §3.
type Config struct {
	MinOverlap int
	MinSetSize int
	MaxSetSize int
	FDRMethod  stats.AdjustMethod
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		MinOverlap: 5,
		MinSetSize: 5,
		MaxSetSize: 500,
		FDRMethod:  stats.BenjaminiHochberg,
	}
}

// Run scores every set in sets against interest and reference, returning
// one ORAResult per set, positionally aligned with sets. interest and
// reference must be non-empty; this is a programming error the spec asks
// us to fail fast on rather than silently produce degenerate results.
func Run(interest, reference map[string]struct{}, sets []analyte.Item, cfg Config) ([]analyte.ORAResult, error) {
	if len(interest) == 0 {
		return nil, analyte.NewError(analyte.StatisticsError, "", errEmptyInterest)
	}
	if len(reference) == 0 {
		return nil, analyte.NewError(analyte.StatisticsError, "", errEmptyReference)
	}

	M := len(reference)
	N := len(interest)

	partials := parallel.Map(sets, 0, func(_ int, s analyte.Item) partial {
		return score(s, interest, reference, M, N, cfg)
	})

	pvals := make([]float64, len(partials))
	for i, p := range partials {
		pvals[i] = p.p
	}
	fdrs := stats.Adjust(pvals, cfg.FDRMethod)

	out := make([]analyte.ORAResult, len(sets))
	for i, s := range sets {
		p := partials[i]
		enrichmentRatio := ratio(float64(p.overlap), p.expected)
		out[i] = analyte.ORAResult{
			Set:             s.ID,
			P:               p.p,
			FDR:             stats.Clamp01(fdrs[i]),
			Overlap:         p.overlap,
			Expected:        p.expected,
			EnrichmentRatio: enrichmentRatio,
		}
	}
	return out, nil
}

type partial struct {
	p        float64
	overlap  int
	expected float64
}

func score(s analyte.Item, interest, reference map[string]struct{}, M, N int, cfg Config) partial {
	parts := s.Members
	if len(parts) < cfg.MinSetSize || len(parts) > cfg.MaxSetSize {
		return partial{p: 1, overlap: 0, expected: 0}
	}

	seenJ := make(map[string]struct{}, len(parts))
	seenK := make(map[string]struct{}, len(parts))
	var j, k int
	for _, a := range parts {
		if _, ok := reference[a]; ok {
			if _, dup := seenJ[a]; !dup {
				seenJ[a] = struct{}{}
				j++
			}
		}
		if _, ok := interest[a]; ok {
			if _, dup := seenK[a]; !dup {
				seenK[a] = struct{}{}
				k++
			}
		}
	}

	expected := float64(j) * float64(N) / float64(M)
	p := 1.0
	if k >= cfg.MinOverlap {
		p = stats.HypergeometricSF(M, j, N, k)
	}
	return partial{p: p, overlap: k, expected: expected}
}

// ratio computes k/expected with the spec's explicit 0/0 = 0 and x/0 =
// +Inf guards, since a vanishing reference overlap otherwise yields NaN.
func ratio(k, expected float64) float64 {
	if expected == 0 {
		if k == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return k / expected
}

var (
	errEmptyInterest  = errors.New("interest list must not be empty")
	errEmptyReference = errors.New("reference list must not be empty")
)
