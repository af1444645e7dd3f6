package gsea

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

func syntheticList(n int) []analyte.RankListItem {
	list := make([]analyte.RankListItem, n)
	for i := 0; i < n; i++ {
		// Strictly descending scores; the small i%3 offset makes them
		// non-integer without changing their order.
		list[i] = analyte.RankListItem{Analyte: fmt.Sprintf("g%d", i), Score: float64(n-i) + 0.01*float64(i%3)}
	}
	return list
}

func syntheticSet(id string, list []analyte.RankListItem, count int) analyte.Item {
	members := make([]string, 0, count)
	// Take every third analyte from the top of the list so overlap is
	// spread across the ranking rather than bunched at one end.
	for i := 0; i < len(list) && len(members) < count; i += 3 {
		members = append(members, list[i].Analyte)
	}
	return analyte.Item{ID: id, Members: members}
}

func TestRunDeterministicWithFixedTable(t *testing.T) {
	list := syntheticList(200)
	set := syntheticSet("set-a", list, 20)
	cfg := DefaultConfig()
	src := rand.New(rand.NewSource(42))
	table := NewPermutationTable(len(list), 1000, src)

	r1, err := Run(list, []analyte.Item{set}, cfg, table)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, err := Run(list, []analyte.Item{set}, cfg, table)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r1[0].ES != r2[0].ES {
		t.Errorf("ES not deterministic: %v vs %v", r1[0].ES, r2[0].ES)
	}
	if r1[0].NES != r2[0].NES {
		t.Errorf("NES not deterministic: %v vs %v", r1[0].NES, r2[0].NES)
	}
	if r1[0].P != r2[0].P {
		t.Errorf("P not deterministic: %v vs %v", r1[0].P, r2[0].P)
	}
	if len(r1[0].RunningSum) != len(list) {
		t.Errorf("RunningSum length = %d, want %d", len(r1[0].RunningSum), len(list))
	}
}

func TestRunResultBounds(t *testing.T) {
	list := syntheticList(150)
	sets := []analyte.Item{
		syntheticSet("a", list, 20),
		syntheticSet("b", list, 30),
	}
	cfg := DefaultConfig()
	cfg.Permutations = 200
	results, err := Run(list, sets, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, r := range results {
		if r.P < 0 || r.P > 1 {
			t.Errorf("results[%d].P = %v out of [0,1]", i, r.P)
		}
		if r.FDR < 0 || r.FDR > 1 {
			t.Errorf("results[%d].FDR = %v out of [0,1]", i, r.FDR)
		}
		if math.IsNaN(r.FDR) {
			t.Errorf("results[%d].FDR is NaN", i)
		}
	}
}

func TestRunOverlapFilterEmitsTerminalResult(t *testing.T) {
	list := syntheticList(100)
	cfg := DefaultConfig()
	cfg.MinOverlap = 15

	tooSmall := analyte.Item{ID: "tiny", Members: []string{list[0].Analyte, list[1].Analyte}}
	results, err := Run(list, []analyte.Item{tooSmall}, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r := results[0]
	if r.P != 1 || r.ES != 0 || r.NES != 0 || r.LeadingEdge != 0 || len(r.RunningSum) != 0 {
		t.Errorf("terminal result = %+v, want zero-value terminal row", r)
	}
}

func TestRunOverlapBoundary(t *testing.T) {
	list := syntheticList(100)
	cfg := DefaultConfig()
	cfg.MinOverlap = 15
	cfg.Permutations = 100

	members := make([]string, 15)
	for i := range members {
		members[i] = list[i].Analyte
	}
	atThreshold := analyte.Item{ID: "at", Members: members}
	belowThreshold := analyte.Item{ID: "below", Members: members[:14]}

	results, err := Run(list, []analyte.Item{atThreshold, belowThreshold}, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results[0].RunningSum) == 0 {
		t.Error("at-threshold set should not be filtered out")
	}
	if len(results[1].RunningSum) != 0 {
		t.Error("below-threshold set should be filtered out")
	}
}

func TestRunRejectsNonFiniteScore(t *testing.T) {
	list := []analyte.RankListItem{{Analyte: "g1", Score: math.NaN()}}
	_, err := Run(list, nil, DefaultConfig(), PermutationTable{{0}})
	if err == nil {
		t.Fatal("expected error for non-finite score")
	}
}

func TestRunRejectsMinGreaterThanMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinOverlap = 100
	cfg.MaxOverlap = 10
	_, err := Run(syntheticList(10), nil, cfg, PermutationTable{{0}})
	if err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestMeanWithGuard(t *testing.T) {
	if got := meanWithGuard(nil, epsilon); got != epsilon {
		t.Errorf("meanWithGuard(nil) = %v, want %v", got, epsilon)
	}
	if got := meanWithGuard([]float64{epsilon / 10}, epsilon); got != epsilon {
		t.Errorf("meanWithGuard near-zero mean should fall back to epsilon, got %v", got)
	}
	if got := meanWithGuard([]float64{1, 2, 3}, epsilon); got != 2 {
		t.Errorf("meanWithGuard([1,2,3]) = %v, want 2", got)
	}
}

func TestTailFraction(t *testing.T) {
	xs := []float64{0.1, 0.2, 0.5, 0.9}
	if got := tailFraction(xs, 0); got != 1 {
		t.Errorf("tailFraction(xs, 0) = %v, want 1", got)
	}
	if got := tailFraction(xs, 10); got != 0 {
		t.Errorf("tailFraction(xs, 10) = %v, want 0", got)
	}
	if got := tailFraction(xs, 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("tailFraction(xs, 0.5) = %v, want 0.5", got)
	}
}
