package combine

import (
	"math"
	"testing"
)

func TestCombinePSingleListIsIdentityForStouffer(t *testing.T) {
	p := CombineP([]float64{0.03}, Stouffer)
	if math.Abs(p-0.03) > 1e-9 {
		t.Errorf("Stouffer single-input p = %v, want 0.03", p)
	}
}

func TestCombinePFisherSingleListIsWellDefined(t *testing.T) {
	p := CombineP([]float64{0.03}, Fisher)
	if math.IsNaN(p) || p < 0 || p > 1 {
		t.Errorf("Fisher single-input p = %v, want finite value in [0,1]", p)
	}
}

func TestCombinePBounds(t *testing.T) {
	cases := [][]float64{
		{0.5, 0.5, 0.5},
		{0.001, 0.9, 0.2},
		{1, 1, 1},
		{1e-10, 1e-10},
	}
	for _, ps := range cases {
		for _, method := range []MetaPMethod{Stouffer, Fisher} {
			got := CombineP(ps, method)
			if math.IsNaN(got) || got < 0 || got > 1 {
				t.Errorf("CombineP(%v, %v) = %v, want finite value in [0,1]", ps, method, got)
			}
		}
	}
}

func TestCombinePStrongAgreementYieldsSmallerP(t *testing.T) {
	agree := CombineP([]float64{0.01, 0.01, 0.01}, Stouffer)
	mixed := CombineP([]float64{0.01, 0.5, 0.9}, Stouffer)
	if agree >= mixed {
		t.Errorf("agreeing small p-values should combine smaller than mixed ones: agree=%v mixed=%v", agree, mixed)
	}
}
