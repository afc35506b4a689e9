package earcut

import "testing"

func TestTriangulateSquare(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	tris := Triangulate([][]Point{square})
	if len(tris) != 6 {
		t.Fatalf("expected 2 triangles (6 indices), got %d: %v", len(tris), tris)
	}
	for _, idx := range tris {
		if idx < 0 || idx >= len(square) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestTriangulateSquareWithHole(t *testing.T) {
	outer := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := []Point{{3, 3}, {3, 7}, {7, 7}, {7, 3}}
	tris := Triangulate([][]Point{outer, hole})
	if len(tris)%3 != 0 {
		t.Fatalf("expected a whole number of triangles, got %d indices", len(tris))
	}
	if len(tris) == 0 {
		t.Fatalf("expected at least one triangle")
	}

	var area float64
	total := len(outer) + len(hole)
	points := append(append([]Point(nil), outer...), hole...)
	for i := 0; i < len(tris); i += 3 {
		a, b, c := points[tris[i]], points[tris[i+1]], points[tris[i+2]]
		area += ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)) / 2
	}
	if area <= 0 {
		t.Fatalf("expected positive total signed area, got %v", area)
	}
	for _, idx := range tris {
		if idx < 0 || idx >= total {
			t.Fatalf("index %d out of range [0,%d)", idx, total)
		}
	}
}

func TestTriangulateDegenerateReturnsNothingHarmful(t *testing.T) {
	if got := Triangulate(nil); got != nil {
		t.Fatalf("expected nil for no rings, got %v", got)
	}
	if got := Triangulate([][]Point{{{0, 0}, {1, 0}}}); got != nil {
		t.Fatalf("expected nil for a two-point ring, got %v", got)
	}
}
