package gsea

import "math/rand"

// PermutationTable is a set of independent permutations of 0..n-1, one per
// permutation index. It is the only source of non-determinism in GSEA —
// exposing it as a first-class, externally-supplyable input lets callers
// pin exact outputs in tests (spec.md §8, scenario 5; §9 design note).
type PermutationTable [][]int

// NewPermutationTable draws `permutations` independent uniform shuffles
// of 0..n-1 from src, built sequentially (the spec calls for sequential
// table construction regardless of whether the per-set or per-permutation
// loops downstream run in parallel).
func NewPermutationTable(n, permutations int, src *rand.Rand) PermutationTable {
	table := make(PermutationTable, permutations)
	for p := 0; p < permutations; p++ {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		src.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		table[p] = perm
	}
	return table
}
