// Package gsea implements Gene Set Enrichment Analysis: a
// permutation-based enrichment score and null distribution per analyte
// set, and a cross-set FDR computed from the pooled permutation null.
package gsea

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/bzhanglab/webgestalt-go/analyte"
	"github.com/bzhanglab/webgestalt-go/parallel"
	"github.com/bzhanglab/webgestalt-go/stats"
)

// epsilon guards the up/down permutation-mean divisions against zero and
// sign collapse, per spec.md §4.3.3 and §9.
const epsilon = 1e-12

// Run scores every set in sets against list, returning one GSEAResult per
// set in sets' original order; sets that failed the overlap filter get a
// positionally-aligned terminal result (p=1, es=0, nes=0, leading edge 0,
// empty running sum).
//
// table is the permutation table to use; pass nil to have Run build one
// internally from cfg.Permutations using an OS-entropy-seeded source.
// Passing table explicitly pins the only source of non-determinism in
// GSEA, which is how spec.md §8 scenario 5 asks for byte-identical
// results across runs.
func Run(list []analyte.RankListItem, sets []analyte.Item, cfg Config, table PermutationTable) ([]analyte.GSEAResult, error) {
	if cfg.MinOverlap > cfg.MaxOverlap {
		return nil, analyte.NewError(analyte.ConfigurationError, "", errMinGTMax)
	}
	if table == nil && cfg.Permutations <= 0 {
		return nil, analyte.NewError(analyte.StatisticsError, "", errNoPermutations)
	}

	n := len(list)
	sorted := make([]analyte.RankListItem, n)
	copy(sorted, list)
	for _, it := range sorted {
		if math.IsNaN(it.Score) || math.IsInf(it.Score, 0) {
			return nil, analyte.NewError(analyte.StatisticsError, it.Analyte, errNonFiniteScore)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	analytes := make([]string, n)
	weights := make([]float64, n)
	for i, it := range sorted {
		analytes[i] = it.Analyte
		if cfg.PExponent == 1 {
			weights[i] = math.Abs(it.Score)
		} else {
			weights[i] = math.Pow(math.Abs(it.Score), cfg.PExponent)
		}
	}

	if table == nil {
		var seed [8]byte
		crand.Read(seed[:])
		src := rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
		table = NewPermutationTable(n, cfg.Permutations, src)
	}

	outcomes := parallel.Map(sets, 0, func(_ int, s analyte.Item) setOutcome {
		return scoreSet(s, analytes, weights, cfg, table)
	})

	var null []float64
	var observedIdx []int
	var observed []float64
	for i, o := range outcomes {
		if !o.qualifies {
			continue
		}
		null = append(null, o.normalizedPerm...)
		observedIdx = append(observedIdx, i)
		observed = append(observed, o.result.NES)
	}
	fdrs := pooledFDR(observed, null)

	results := make([]analyte.GSEAResult, len(sets))
	for i, o := range outcomes {
		results[i] = o.result
	}
	for j, i := range observedIdx {
		results[i].FDR = fdrs[j]
	}
	return results, nil
}

var (
	errMinGTMax       = errors.New("min_overlap must not exceed max_overlap")
	errNoPermutations = errors.New("permutations must be > 0 when no permutation table is supplied")
	errNonFiniteScore = errors.New("rank list score is not finite")
)

type setOutcome struct {
	result         analyte.GSEAResult
	qualifies      bool
	normalizedPerm []float64
}

func scoreSet(s analyte.Item, analytes []string, weights []float64, cfg Config, table PermutationTable) setOutcome {
	n := len(analytes)
	members := make(map[string]struct{}, len(s.Members))
	for _, m := range s.Members {
		members[m] = struct{}{}
	}

	hit := make([]bool, n)
	var k int
	var Nr float64
	for i, a := range analytes {
		if _, ok := members[a]; ok {
			hit[i] = true
			k++
			Nr += weights[i]
		}
	}

	terminal := analyte.GSEAResult{Set: s.ID, P: 1}
	if k < cfg.MinOverlap || k > cfg.MaxOverlap || Nr == 0 {
		return setOutcome{result: terminal}
	}

	var invMiss float64
	if missN := n - k; missN > 0 {
		invMiss = 1 / float64(missN)
	}
	invNr := 1 / Nr

	es, runningSum, leadingEdge := walk(hit, weights, invNr, invMiss)

	computePerm := func(_ int, perm []int) float64 {
		var NrPerm float64
		for i := 0; i < n; i++ {
			if hit[perm[i]] {
				NrPerm += weights[i]
			}
		}
		var invNrPerm float64
		if NrPerm > 0 {
			invNrPerm = 1 / NrPerm
		}
		return walkExtremum(hit, perm, weights, invNrPerm, invMiss)
	}
	var permExtrema []float64
	if cfg.ParallelPermutations {
		permExtrema = parallel.Map(table, 0, computePerm)
	} else {
		permExtrema = make([]float64, len(table))
		for i, perm := range table {
			permExtrema[i] = computePerm(i, perm)
		}
	}

	var up, down []float64
	for _, v := range permExtrema {
		if v >= 0 {
			up = append(up, v)
		} else {
			down = append(down, v)
		}
	}
	upAvg := meanWithGuard(up, epsilon)
	downAvg := meanWithGuard(down, -epsilon)

	var nes float64
	if es >= 0 {
		nes = es / upAvg
	} else {
		nes = -es / downAvg
	}

	normalizedPerm := make([]float64, len(permExtrema))
	for i, v := range permExtrema {
		if v >= 0 {
			normalizedPerm[i] = v / upAvg
		} else {
			normalizedPerm[i] = v / -downAvg
		}
	}

	sameSignPositive := es >= 0
	var sameSign, exceeding int
	absES := math.Abs(es)
	for _, v := range permExtrema {
		if (v >= 0) != sameSignPositive {
			continue
		}
		sameSign++
		if math.Abs(v) >= absES {
			exceeding++
		}
	}
	var p float64
	if sameSign > 0 {
		p = float64(exceeding) / float64(sameSign)
	}

	result := analyte.GSEAResult{
		Set:         s.ID,
		P:           stats.Clamp01(p),
		ES:          es,
		NES:         nes,
		LeadingEdge: leadingEdge,
		RunningSum:  runningSum,
	}
	return setOutcome{result: result, qualifies: true, normalizedPerm: normalizedPerm}
}

// walk computes the full running-sum sequence for the real (unpermuted)
// ordering and returns its signed extremum, the running sum itself, and
// the leading-edge count per spec.md §4.3.2 step 4.
func walk(hit []bool, weights []float64, invNr, invMiss float64) (es float64, runningSum []float64, leadingEdge int) {
	n := len(hit)
	runningSum = make([]float64, n)
	var hitSum, missSum float64
	var hitsSoFar, extremumHits int
	for i := 0; i < n; i++ {
		if hit[i] {
			hitSum += weights[i]
			hitsSoFar++
		} else {
			missSum++
		}
		v := hitSum*invNr - missSum*invMiss
		runningSum[i] = v
		if math.Abs(v) > math.Abs(es) {
			es = v
			extremumHits = hitsSoFar
		}
	}
	if es >= 0 {
		leadingEdge = extremumHits
	} else {
		leadingEdge = n - extremumHits
	}
	return es, runningSum, leadingEdge
}

// walkExtremum computes only the signed extremum of the running sum for
// one permutation; the running sum itself is not retained, per spec.md
// §4.3.2 step 5.
func walkExtremum(hit []bool, perm []int, weights []float64, invNr, invMiss float64) float64 {
	n := len(perm)
	var hitSum, missSum, extremum float64
	for i := 0; i < n; i++ {
		if hit[perm[i]] {
			hitSum += weights[i]
		} else {
			missSum++
		}
		v := hitSum*invNr - missSum*invMiss
		if math.Abs(v) > math.Abs(extremum) {
			extremum = v
		}
	}
	return extremum
}

// meanWithGuard returns the mean of xs, or fallback if xs is empty or its
// mean is within epsilon of zero (the sign-collapse guard spec.md §4.3.3
// and §9 call for).
func meanWithGuard(xs []float64, fallback float64) float64 {
	if len(xs) == 0 {
		return fallback
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if math.Abs(mean) < epsilon {
		return fallback
	}
	return mean
}

// pooledFDR implements spec.md §4.3.4: for each observed NES, compare the
// fraction of same-sign pooled-null scores at least as extreme against
// the fraction of same-sign observed scores at least as extreme. Buckets
// are pre-sorted by absolute value so each query is a binary search
// rather than a linear scan.
func pooledFDR(observed, null []float64) []float64 {
	nullUp, nullDown := sortedAbsBuckets(null)
	obsUp, obsDown := sortedAbsBuckets(observed)

	fdrs := make([]float64, len(observed))
	for i, v := range observed {
		absV := math.Abs(v)
		var top, bottom []float64
		if v >= 0 {
			top, bottom = nullUp, obsUp
		} else {
			top, bottom = nullDown, obsDown
		}
		if len(top) == 0 || len(bottom) == 0 {
			fdrs[i] = 0
			continue
		}
		topFrac := tailFraction(top, absV)
		bottomFrac := tailFraction(bottom, absV)
		var fdr float64
		if bottomFrac > 0 {
			fdr = topFrac / bottomFrac
		}
		fdrs[i] = stats.Clamp01(fdr)
	}
	return fdrs
}

// sortedAbsBuckets partitions xs by sign and returns each bucket's
// absolute values sorted ascending.
func sortedAbsBuckets(xs []float64) (up, down []float64) {
	for _, x := range xs {
		if x >= 0 {
			up = append(up, x)
		} else {
			down = append(down, -x)
		}
	}
	sort.Float64s(up)
	sort.Float64s(down)
	return up, down
}

// tailFraction returns the fraction of sorted (ascending) values in xs
// that are >= threshold.
func tailFraction(xs []float64, threshold float64) float64 {
	idx := sort.SearchFloat64s(xs, threshold)
	return float64(len(xs)-idx) / float64(len(xs))
}
