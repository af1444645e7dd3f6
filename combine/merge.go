package combine

import (
	"math"

	"github.com/bzhanglab/webgestalt-go/analyte"
	"github.com/bzhanglab/webgestalt-go/parallel"
)

// CombineMethod selects how per-analyte scores fold across lists once
// they have been normalized.
type CombineMethod int

const (
	CombineMax CombineMethod = iota
	CombineMean
)

// MergeLists normalizes each list independently (parallel, per spec.md
// §5: "normalization of each list is parallel") and then folds analytes
// by name across lists (sequential, since it mutates a shared
// aggregation map). Max keeps the occurrence with the largest absolute
// score; Mean averages every occurrence.
func MergeLists(lists [][]analyte.RankListItem, norm NormalizeMethod, comb CombineMethod) []analyte.RankListItem {
	normalized := parallel.Map(lists, 0, func(_ int, list []analyte.RankListItem) []analyte.RankListItem {
		return Normalize(list, norm)
	})

	order := make([]string, 0)
	seen := make(map[string]struct{})
	sums := make(map[string]float64)
	counts := make(map[string]int)
	maxAbs := make(map[string]float64)
	maxVal := make(map[string]float64)

	for _, list := range normalized {
		for _, item := range list {
			if _, ok := seen[item.Analyte]; !ok {
				seen[item.Analyte] = struct{}{}
				order = append(order, item.Analyte)
			}
			sums[item.Analyte] += item.Score
			counts[item.Analyte]++
			if abs := math.Abs(item.Score); abs >= maxAbs[item.Analyte] {
				maxAbs[item.Analyte] = abs
				maxVal[item.Analyte] = item.Score
			}
		}
	}

	out := make([]analyte.RankListItem, len(order))
	for i, name := range order {
		var score float64
		switch comb {
		case CombineMean:
			score = sums[name] / float64(counts[name])
		default: // CombineMax
			score = maxVal[name]
		}
		out[i] = analyte.RankListItem{Analyte: name, Score: score}
	}
	return out
}

// UnionSets folds several analyte-set collections into one by id. The
// first occurrence's URL wins; members are concatenated, duplicates
// permitted, per spec.md §4.5.
func UnionSets(collections ...analyte.Collection) analyte.Collection {
	order := make([]string, 0)
	index := make(map[string]int)
	var out analyte.Collection

	for _, coll := range collections {
		for _, item := range coll {
			i, ok := index[item.ID]
			if !ok {
				index[item.ID] = len(out)
				order = append(order, item.ID)
				out = append(out, analyte.Item{ID: item.ID, URL: item.URL, Members: append([]string(nil), item.Members...)})
				continue
			}
			out[i].Members = append(out[i].Members, item.Members...)
		}
	}
	return out
}
