package nta

import (
	"testing"

	"github.com/bzhanglab/webgestalt-go/analyte"
)

// chainEdges builds a 0-1-2-...-(n-1) chain as an EdgeList, nodes named by
// their decimal index.
func chainEdges(n int) analyte.EdgeList {
	edges := make(analyte.EdgeList, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, analyte.Edge{From: itoa(i), To: itoa(i + 1)})
	}
	return edges
}

func itoa(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	// chain lengths in these tests never reach two digits beyond this
	return string(digits[i/10]) + string(digits[i%10])
}

func TestRunChainExpandDecreasingWithDistance(t *testing.T) {
	cfg := Config{
		EdgeList:         chainEdges(10),
		Seeds:            []string{"0"},
		ResetProbability: 0.5,
		Tolerance:        1e-6,
		Method:           Expand(3),
	}
	result, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"1", "2", "3"}
	if len(result.Neighborhood) != len(want) {
		t.Fatalf("Neighborhood = %v, want %v", result.Neighborhood, want)
	}
	for i, name := range want {
		if result.Neighborhood[i] != name {
			t.Errorf("Neighborhood[%d] = %q, want %q", i, result.Neighborhood[i], name)
		}
	}
	for i := 1; i < len(result.Scores); i++ {
		if result.Scores[i] > result.Scores[i-1] {
			t.Errorf("Scores not decreasing: %v", result.Scores)
		}
	}
	if result.Candidates != nil {
		t.Errorf("Expand should not populate Candidates, got %v", result.Candidates)
	}
}

func TestRunChainPrioritizeKeepsOnlySeeds(t *testing.T) {
	cfg := Config{
		EdgeList:         chainEdges(6),
		Seeds:            []string{"0", "5"},
		ResetProbability: 0.5,
		Tolerance:        1e-6,
		Method:           Prioritize(2),
	}
	result, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Neighborhood) != 2 {
		t.Fatalf("Neighborhood = %v, want 2 seed nodes", result.Neighborhood)
	}
	for _, name := range result.Neighborhood {
		if name != "0" && name != "5" {
			t.Errorf("Prioritize leaked non-seed node %q", name)
		}
	}
	if len(result.Candidates) != len(result.Neighborhood) {
		t.Errorf("Candidates = %v, want same length as Neighborhood %v", result.Candidates, result.Neighborhood)
	}
}

func TestRunIsolatedSeedConvergesToP0(t *testing.T) {
	// "iso" has a self-loop and no edge to the rest of the graph, so a
	// walk seeded there stays put: W's "iso" column routes all mass back
	// to "iso", matching p0 exactly at every node.
	edges := append(analyte.EdgeList{}, chainEdges(5)...)
	edges = append(edges, analyte.Edge{From: "iso", To: "iso"})

	cfg := Config{
		EdgeList:         edges,
		Seeds:            []string{"iso"},
		ResetProbability: 0.5,
		Tolerance:        1e-6,
		Method:           Expand(1),
	}
	result, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, name := range result.Neighborhood {
		if name == "iso" {
			t.Errorf("Neighborhood[%d] = %q, seed should be excluded by Expand", i, name)
		}
		if result.Scores[i] != 0 {
			t.Errorf("Scores[%d] = %v, want 0 for every node but the isolated seed", i, result.Scores[i])
		}
	}
}

func TestRunRejectsInvalidResetProbability(t *testing.T) {
	cfg := Config{
		EdgeList:         chainEdges(3),
		Seeds:            []string{"0"},
		ResetProbability: 1.5,
		Tolerance:        1e-6,
		Method:           Expand(1),
	}
	if _, err := Run(cfg); err == nil {
		t.Fatal("expected error for reset probability outside (0,1)")
	}
}

func TestRunRejectsUnknownSeed(t *testing.T) {
	cfg := Config{
		EdgeList:         chainEdges(3),
		Seeds:            []string{"missing"},
		ResetProbability: 0.5,
		Tolerance:        1e-6,
		Method:           Expand(1),
	}
	if _, err := Run(cfg); err == nil {
		t.Fatal("expected error for seed absent from edge list")
	}
}

func TestRunRejectsEmptySeeds(t *testing.T) {
	cfg := Config{
		EdgeList:         chainEdges(3),
		ResetProbability: 0.5,
		Tolerance:        1e-6,
		Method:           Expand(1),
	}
	if _, err := Run(cfg); err == nil {
		t.Fatal("expected error for empty seed list")
	}
}
