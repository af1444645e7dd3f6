// Package nta implements Network Topology Analysis: random walk with
// restart over an undirected graph's adjacency matrix, followed by
// neighborhood/prioritization selection.
package nta

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

// Run builds the adjacency matrix for cfg.EdgeList, walks it with
// restart from cfg.Seeds, and applies cfg.Method's selection rule to the
// converged probability vector.
func Run(cfg Config) (analyte.NTAResult, error) {
	if cfg.ResetProbability <= 0 || cfg.ResetProbability >= 1 {
		return analyte.NTAResult{}, analyte.NewError(analyte.ConfigurationError, "", errResetProbability)
	}
	if cfg.Tolerance <= 0 {
		return analyte.NTAResult{}, analyte.NewError(analyte.ConfigurationError, "", errTolerance)
	}
	if len(cfg.Seeds) == 0 {
		return analyte.NTAResult{}, analyte.NewError(analyte.StatisticsError, "", errNoSeeds)
	}

	nodes := cfg.EdgeList.Nodes()
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	seedIdx := make([]int, 0, len(cfg.Seeds))
	for _, s := range cfg.Seeds {
		i, ok := index[s]
		if !ok {
			return analyte.NTAResult{}, analyte.NewError(analyte.GraphError, s, errSeedNotFound)
		}
		seedIdx = append(seedIdx, i)
	}

	n := len(nodes)
	A := mat.NewDense(n, n, nil)
	for _, e := range cfg.EdgeList {
		i, j := index[e.From], index[e.To]
		A.Set(i, j, 1)
		A.Set(j, i, 1)
	}

	W := columnNormalize(A)
	p0 := mat.NewVecDense(n, nil)
	for _, i := range seedIdx {
		p0.SetVec(i, 1/float64(len(seedIdx)))
	}

	final := randomWalkWithRestart(W, p0, cfg.ResetProbability, cfg.Tolerance)

	isSeed := make(map[int]struct{}, len(seedIdx))
	for _, i := range seedIdx {
		isSeed[i] = struct{}{}
	}
	ranked := rankNodes(nodes, final)

	return selectNeighborhood(ranked, isSeed, cfg.Method), nil
}

var (
	errResetProbability = errors.New("reset probability must be in (0,1)")
	errTolerance        = errors.New("tolerance must be > 0")
	errNoSeeds          = errors.New("seed list must not be empty")
	errSeedNotFound     = errors.New("seed not present in edge list")
)

// columnNormalize divides each column of A by its degree (column sum),
// treating a zero-degree column as all zeros (0/0 = 0) rather than
// producing NaN, per spec.md §4.4.4.
func columnNormalize(A *mat.Dense) *mat.Dense {
	n, _ := A.Dims()
	W := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		var degree float64
		for i := 0; i < n; i++ {
			degree += A.At(i, j)
		}
		if degree == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			W.Set(i, j, A.At(i, j)/degree)
		}
	}
	return W
}

// randomWalkWithRestart iterates p_{t+1} = (1-r)·W·p_t + r·p0 until the
// 1-norm of the update difference is within tol, per spec.md §4.4.2. No
// iteration cap is prescribed: for r in (0,1) the map is a contraction
// and convergence is guaranteed.
func randomWalkWithRestart(W *mat.Dense, p0 *mat.VecDense, r, tol float64) *mat.VecDense {
	n, _ := W.Dims()
	pt := mat.NewVecDense(n, nil)
	pt.CopyVec(p0)

	var wp, scaled, pt1 mat.VecDense
	for {
		wp.MulVec(W, pt)
		scaled.ScaleVec(1-r, &wp)
		pt1.AddScaledVec(&scaled, r, p0)

		diff := 0.0
		for i := 0; i < n; i++ {
			d := pt1.AtVec(i) - pt.AtVec(i)
			if d < 0 {
				d = -d
			}
			diff += d
		}
		pt.CopyVec(&pt1)
		if diff <= tol {
			return pt
		}
	}
}

type rankedNode struct {
	name  string
	index int
	score float64
}

// rankNodes sorts nodes by descending probability, breaking ties by
// node name for determinism.
func rankNodes(nodes []string, p *mat.VecDense) []rankedNode {
	ranked := make([]rankedNode, len(nodes))
	for i, name := range nodes {
		ranked[i] = rankedNode{name: name, index: i, score: p.AtVec(i)}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})
	return ranked
}

func selectNeighborhood(ranked []rankedNode, isSeed map[int]struct{}, method Method) analyte.NTAResult {
	switch method.kind {
	case expandKind:
		var names []string
		var scores []float64
		for _, r := range ranked {
			if len(names) >= method.size {
				break
			}
			if _, seed := isSeed[r.index]; seed {
				continue
			}
			names = append(names, r.name)
			scores = append(scores, r.score)
		}
		return analyte.NTAResult{Neighborhood: names, Scores: scores}
	default: // prioritizeKind
		var names []string
		var scores []float64
		for _, r := range ranked {
			if len(names) >= method.size {
				break
			}
			if _, seed := isSeed[r.index]; !seed {
				continue
			}
			names = append(names, r.name)
			scores = append(scores, r.score)
		}
		candidates := make([]string, len(names))
		copy(candidates, names)
		if len(candidates) > method.size {
			candidates = candidates[:method.size]
		}
		return analyte.NTAResult{Neighborhood: names, Scores: scores, Candidates: candidates}
	}
}
