// Package earcut implements a small ear-clipping triangulator over 2D
// polygons-with-holes. No third-party library in the dependency set covers
// ear-clipping triangulation, so it is implemented directly on the standard
// library; see DESIGN.md's "built on the standard library" justification.
package earcut

import "math"

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Triangulate triangulates a polygon-with-holes given as a list of rings
// (outer boundary first, holes after), each a closed or open loop of 2D
// points. It returns a flat list of vertex indices in triangle-triplet
// order, where indices reference positions in the concatenation of all
// rings in the order given (the mapbox-earcut convention).
func Triangulate(rings [][]Point) []int {
	if len(rings) == 0 {
		return nil
	}

	var points []Point
	boundaries := []int{0}
	for _, ring := range rings {
		points = append(points, ring...)
		boundaries = append(boundaries, len(points))
	}
	if len(points) < 3 {
		return nil
	}

	outer := make([]int, boundaries[1]-boundaries[0])
	for i := range outer {
		outer[i] = boundaries[0] + i
	}

	combined := outer
	for r := 1; r < len(rings); r++ {
		start, end := boundaries[r], boundaries[r+1]
		if end-start < 3 {
			continue
		}
		hole := make([]int, end-start)
		for i := range hole {
			hole[i] = start + i
		}
		combined = bridgeHole(points, combined, hole)
	}

	return earClip(points, combined)
}

// bridgeHole splices hole into outer via a visible-vertex bridge, so the
// result is a single simple polygon loop that ear-clipping can consume.
func bridgeHole(points []Point, outer, hole []int) []int {
	maxI := 0
	for i, pi := range hole {
		if points[pi].X > points[hole[maxI]].X {
			maxI = i
		}
	}
	m := hole[maxI]
	mp := points[m]

	bestDist := math.Inf(1)
	bestPos := -1
	n := len(outer)
	for i := 0; i < n; i++ {
		a, b := outer[i], outer[(i+1)%n]
		pa, pb := points[a], points[b]
		if (pa.Y > mp.Y) == (pb.Y > mp.Y) {
			continue
		}
		t := (mp.Y - pa.Y) / (pb.Y - pa.Y)
		ix := pa.X + t*(pb.X-pa.X)
		if ix < mp.X {
			continue
		}
		dist := ix - mp.X
		if dist < bestDist {
			bestDist = dist
			if pa.X > pb.X {
				bestPos = i
			} else {
				bestPos = (i + 1) % n
			}
		}
	}
	if bestPos < 0 {
		bestPos = 0
	}
	p := outer[bestPos]

	rotated := make([]int, 0, len(hole)+1)
	for i := 0; i < len(hole); i++ {
		rotated = append(rotated, hole[(maxI+i)%len(hole)])
	}
	rotated = append(rotated, hole[maxI])

	out := make([]int, 0, len(outer)+len(rotated)+2)
	out = append(out, outer[:bestPos+1]...)
	out = append(out, rotated...)
	out = append(out, p)
	out = append(out, outer[bestPos+1:]...)
	return out
}

// earClip runs simple O(n^2) ear clipping over a (possibly
// vertex-repeating, from bridging) simple polygon loop of point indices.
func earClip(points []Point, poly []int) []int {
	remaining := append([]int(nil), poly...)
	if signedArea(points, remaining) < 0 {
		reverseInts(remaining)
	}

	var tris []int
	maxIterations := 10000 * (len(remaining) + 1)
	for len(remaining) > 3 && maxIterations > 0 {
		maxIterations--
		clipped := false
		n := len(remaining)
		for i := 0; i < n; i++ {
			i0 := remaining[(i-1+n)%n]
			i1 := remaining[i]
			i2 := remaining[(i+1)%n]
			if isEar(points, remaining, i0, i1, i2) {
				tris = append(tris, i0, i1, i2)
				remaining = append(append([]int(nil), remaining[:i]...), remaining[i+1:]...)
				clipped = true
				break
			}
		}
		if !clipped {
			break
		}
	}
	if len(remaining) == 3 {
		tris = append(tris, remaining[0], remaining[1], remaining[2])
	}
	return tris
}

func isEar(points []Point, poly []int, i0, i1, i2 int) bool {
	a, b, c := points[i0], points[i1], points[i2]
	if cross2(a, b, c) <= 0 {
		return false
	}
	for _, pi := range poly {
		if pi == i0 || pi == i1 || pi == i2 {
			continue
		}
		if pointInTriangle(points[pi], a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func pointInTriangle(p, a, b, c Point) bool {
	d1 := cross2(a, b, p)
	d2 := cross2(b, c, p)
	d3 := cross2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func signedArea(points []Point, poly []int) float64 {
	var area float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := points[poly[i]]
		b := points[poly[(i+1)%n]]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
