// Package combine implements the multi-list combinator: pre-analysis
// list merge and set-collection union, and post-analysis meta-p
// combination (Stouffer, Fisher).
package combine

import (
	"sort"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

// NormalizeMethod selects how a ranked list's scores are rescaled before
// merging. A finite closed sum per spec.md §9 — exhaustively dispatched,
// never an open extension point.
type NormalizeMethod int

const (
	NormalizeNone NormalizeMethod = iota
	NormalizeMedianRank
	NormalizeMedianValue
	NormalizeMeanValue
)

// Normalize rescales list's scores in place semantics (a new slice is
// returned; the input is left untouched) per the four modes of
// spec.md §4.5.
func Normalize(list []analyte.RankListItem, method NormalizeMethod) []analyte.RankListItem {
	switch method {
	case NormalizeMedianRank:
		return normalizeMedianRank(list)
	case NormalizeMedianValue:
		return normalizeMedianValue(list)
	case NormalizeMeanValue:
		return normalizeMeanValue(list)
	default:
		out := make([]analyte.RankListItem, len(list))
		copy(out, list)
		return out
	}
}

// normalizeMedianRank sorts ascending and replaces each score by its
// position rescaled into [-1, 1] around the median rank.
func normalizeMedianRank(list []analyte.RankListItem) []analyte.RankListItem {
	out := make([]analyte.RankListItem, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	m := float64(len(out))
	half := m / 2
	for i := range out {
		if half == 0 {
			out[i].Score = 0
			continue
		}
		out[i].Score = (float64(i) - half) / half
	}
	return out
}

// normalizeMedianValue sorts descending and rescales each score relative
// to the minimum and the median-minus-minimum span.
func normalizeMedianValue(list []analyte.RankListItem) []analyte.RankListItem {
	out := make([]analyte.RankListItem, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) == 0 {
		return out
	}
	min := out[len(out)-1].Score
	median := out[len(out)/2].Score - min
	for i := range out {
		if median == 0 {
			out[i].Score = 0
			continue
		}
		out[i].Score = (out[i].Score-min)/median + min/median
	}
	return out
}

// normalizeMeanValue sorts descending and rescales each score relative to
// the minimum and the mean-minus-minimum span.
func normalizeMeanValue(list []analyte.RankListItem) []analyte.RankListItem {
	out := make([]analyte.RankListItem, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) == 0 {
		return out
	}
	min := out[len(out)-1].Score
	var sum float64
	for _, it := range out {
		sum += it.Score - min
	}
	mean := sum / float64(len(out))
	for i := range out {
		if mean == 0 {
			out[i].Score = 0
			continue
		}
		out[i].Score = (out[i].Score-min)/mean + min/mean
	}
	return out
}
