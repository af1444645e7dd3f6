package combine

import (
	"sort"

	"github.com/bzhanglab/webgestalt-go/analyte"
	"github.com/bzhanglab/webgestalt-go/gsea"
	"github.com/bzhanglab/webgestalt-go/ora"
	"github.com/bzhanglab/webgestalt-go/stats"
)

// JobKind is the closed sum of engines a Job can drive.
type JobKind int

const (
	GSEAJob JobKind = iota
	ORAJob
)

// Job bundles one independent analysis run (a rank list for GSEA, or an
// interest/reference pair for ORA) with the set collection it is scored
// against. RunMetaP runs each job's engine, then groups per-set p-values by
// set id across jobs — the minimal closed sum spec.md §4.5 needs to drive
// GSEA or ORA interchangeably without widening either engine's API.
type Job struct {
	Kind JobKind

	RankList         []analyte.RankListItem
	GSEAConfig       gsea.Config
	PermutationTable gsea.PermutationTable

	Interest  map[string]struct{}
	Reference map[string]struct{}
	ORAConfig ora.Config

	Sets []analyte.Item
}

// MetaPResult is a meta-combined result: spec.md §4.5 says these
// "inherit only set and p"; fdr is recomputed from the pooled meta-p
// vector, and every other field a GSEAResult/ORAResult would carry is
// neutral (zero-valued) because it has no cross-job meaning.
type MetaPResult struct {
	Set string
	P   float64
	FDR float64
}

// RunMetaP runs every job with its own engine, then combines each set's
// per-job p-values with method and recomputes FDR across the combined
// p-value vector with fdrMethod.
func RunMetaP(jobs []Job, method MetaPMethod, fdrMethod stats.AdjustMethod) ([]MetaPResult, error) {
	perJob := make([]map[string]float64, len(jobs))
	for i, job := range jobs {
		ps, err := runJobPValues(job)
		if err != nil {
			return nil, err
		}
		perJob[i] = ps
	}

	order := make([]string, 0)
	seen := make(map[string]struct{})
	for _, m := range perJob {
		for id := range m {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				order = append(order, id)
			}
		}
	}
	sort.Strings(order)

	combined := make([]float64, len(order))
	for i, id := range order {
		var ps []float64
		for _, m := range perJob {
			if p, ok := m[id]; ok {
				ps = append(ps, p)
			}
		}
		combined[i] = CombineP(ps, method)
	}
	fdrs := stats.Adjust(combined, fdrMethod)

	results := make([]MetaPResult, len(order))
	for i, id := range order {
		results[i] = MetaPResult{Set: id, P: combined[i], FDR: fdrs[i]}
	}
	return results, nil
}

func runJobPValues(job Job) (map[string]float64, error) {
	m := make(map[string]float64)
	switch job.Kind {
	case ORAJob:
		results, err := ora.Run(job.Interest, job.Reference, job.Sets, job.ORAConfig)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			m[r.Set] = r.P
		}
	default: // GSEAJob
		results, err := gsea.Run(job.RankList, job.Sets, job.GSEAConfig, job.PermutationTable)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			m[r.Set] = r.P
		}
	}
	return m, nil
}
