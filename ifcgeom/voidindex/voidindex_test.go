package voidindex

import "testing"

func TestCandidatesIntersectingBox(t *testing.T) {
	ix := New()
	ix.Insert(1, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	ix.Insert(2, [3]float64{10, 10, 10}, [3]float64{11, 11, 11})

	got := ix.Candidates([3]float64{0.5, 0.5, 0.5}, [3]float64{2, 2, 2})
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected only void #1 to be a candidate, got %v", got)
	}
}

func TestCandidatesEmptyWhenNoOverlap(t *testing.T) {
	ix := New()
	ix.Insert(1, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})

	got := ix.Candidates([3]float64{100, 100, 100}, [3]float64{101, 101, 101})
	if len(got) != 0 {
		t.Fatalf("expected no candidates for a disjoint box, got %v", got)
	}
}

func TestCandidatesDegenerateBoxIsPadded(t *testing.T) {
	ix := New()
	// A zero-volume AABB (e.g. a flat void mesh) must not break the tree.
	ix.Insert(1, [3]float64{0, 0, 0}, [3]float64{0, 0, 0})

	got := ix.Candidates([3]float64{-1, -1, -1}, [3]float64{1, 1, 1})
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected the degenerate box to still be findable, got %v", got)
	}
}
