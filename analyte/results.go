package analyte

// GSEAResult is one analyte set's GSEA outcome. RunningSum has length
// equal to the rank list's length when the set passed the overlap filter,
// and is empty otherwise.
type GSEAResult struct {
	Set         string
	P           float64
	FDR         float64
	ES          float64
	NES         float64
	LeadingEdge int
	RunningSum  []float64
}

// ORAResult is one analyte set's over-representation outcome.
type ORAResult struct {
	Set             string
	P               float64
	FDR             float64
	Overlap         int
	Expected        float64
	EnrichmentRatio float64
}

// NTAResult is the outcome of one random-walk-with-restart query.
// Neighborhood and Scores are parallel arrays sorted by descending score.
// Candidates is populated only by the Prioritize selection method.
type NTAResult struct {
	Neighborhood []string
	Scores       []float64
	Candidates   []string
}
