// Package analyte defines the data model shared by the enrichment engines:
// analyte sets read from a GMT-style collection, ranked lists, edge lists,
// and the result records each engine produces.
package analyte

// Item is an analyte set (a gene set or pathway): an identifier, an
// optional descriptive URL, and its member analyte names. An Item is
// immutable once constructed; engines read it but never mutate it.
//
// ID is conventionally unique within a Collection but this is not
// enforced here — UnionSets (see package combine) de-duplicates by ID.
// Members may contain duplicates; engines treat Members as a set.
type Item struct {
	ID      string
	URL     string
	Members []string
}

// Collection is an ordered sequence of analyte sets, e.g. parsed from a
// single GMT file.
type Collection []Item

// RankListItem is a single (analyte, score) pair from a ranked list.
type RankListItem struct {
	Analyte string
	Score   float64
}

// RankList is an ordered sequence of RankListItem. Engines sort their own
// copy by Score descending; callers may pass an unsorted list.
type RankList []RankListItem

// Edge is one undirected edge between two node names.
type Edge struct {
	From, To string
}

// EdgeList is an unordered sequence of undirected edges.
type EdgeList []Edge

// Nodes returns the set of distinct node names mentioned by el, in the
// order each name is first seen.
func (el EdgeList) Nodes() []string {
	seen := make(map[string]struct{}, len(el)*2)
	var nodes []string
	for _, e := range el {
		for _, n := range [2]string{e.From, e.To} {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			nodes = append(nodes, n)
		}
	}
	return nodes
}
