package gsea

// Config holds the GSEA parameters of spec.md §3. MinOverlap's canonical
// default is 15 — the source material shows both 15 and 20 in different
// variants; 15 is the one this module exposes and documents (see
// DESIGN.md).
type Config struct {
	PExponent    float64
	MinOverlap   int
	MaxOverlap   int
	Permutations int

	// ParallelPermutations, when true, spreads the inner permutation
	// loop of a single set across workers instead of running it
	// sequentially. The spec's default guidance is sequential — the
	// cost of synchronization usually exceeds the work unit — but
	// leaves room for parallelizing it "when n is large and the number
	// of sets is small". False by default.
	ParallelPermutations bool
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		PExponent:    1,
		MinOverlap:   15,
		MaxOverlap:   500,
		Permutations: 1000,
	}
}
