package nta

import "github.com/bzhanglab/webgestalt-go/analyte"

// methodKind is a finite closed sum — Prioritize or Expand — matching
// spec.md §9's instruction to implement method selectors as exhaustively
// dispatched tagged variants rather than an open extension point.
type methodKind int

const (
	prioritizeKind methodKind = iota
	expandKind
)

// Method selects how the final ranking is turned into a neighborhood.
// Construct one with Prioritize or Expand.
type Method struct {
	kind methodKind
	size int
}

// Prioritize keeps the top k seed nodes from the walk's final ranking.
func Prioritize(k int) Method { return Method{kind: prioritizeKind, size: k} }

// Expand removes seeds from the ranking and keeps the top k remaining
// (non-seed) nodes.
func Expand(k int) Method { return Method{kind: expandKind, size: k} }

// Config holds the NTA parameters of spec.md §3.
type Config struct {
	EdgeList         analyte.EdgeList
	Seeds            []string
	ResetProbability float64
	Tolerance        float64
	Method           Method
}

// DefaultConfig returns the spec's documented defaults; callers must
// still supply EdgeList, Seeds, and Method.
func DefaultConfig() Config {
	return Config{
		ResetProbability: 0.5,
		Tolerance:        1e-6,
	}
}
