package parallel

import (
	"testing"
)

func TestMapIndexAlignment(t *testing.T) {
	items := make([]int, 257)
	for i := range items {
		items[i] = i * i
	}
	got := Map(items, 0, func(i int, item int) int { return item + i })
	for i, v := range got {
		want := items[i] + i
		if v != want {
			t.Fatalf("Map result[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestMapSingleWorker(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := Map(items, 1, func(i int, s string) string { return s + s })
	want := []string{"aa", "bb", "cc"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapEmpty(t *testing.T) {
	got := Map([]int(nil), 4, func(i int, v int) int { return v })
	if len(got) != 0 {
		t.Fatalf("Map(nil) returned length %d, want 0", len(got))
	}
}

func TestMapMoreWorkersThanItems(t *testing.T) {
	items := []int{1, 2, 3}
	got := Map(items, 64, func(i int, v int) int { return v * 2 })
	want := []int{2, 4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
