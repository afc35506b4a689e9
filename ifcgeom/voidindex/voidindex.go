// Package voidindex narrows the candidate opening elements a building
// element's boolean subtraction pass needs to consider: a flattened
// world-space AABB index over void elements, rebuilt per GetMeshByLine call
// rather than cached across resolutions. It is a pure performance narrowing
// and does not change opening-subtraction semantics.
package voidindex

import "github.com/dhconnelly/rtreego"

// Index is an R-tree over void elements' world-space axis-aligned bounding
// boxes, keyed by express id.
type Index struct {
	tree *rtreego.Rtree
}

// New returns an empty Index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(3, 25, 50)}
}

type entry struct {
	expressID uint32
	rect      *rtreego.Rect
}

func (e *entry) Bounds() *rtreego.Rect {
	return e.rect
}

// Insert adds a void element's world-space AABB under its express id.
func (ix *Index) Insert(expressID uint32, min, max [3]float64) {
	rect, err := toRect(min, max)
	if err != nil {
		return
	}
	ix.tree.Insert(&entry{expressID: expressID, rect: rect})
}

// Candidates returns the express ids of void elements whose AABB
// intersects the given world-space AABB.
func (ix *Index) Candidates(min, max [3]float64) []uint32 {
	rect, err := toRect(min, max)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(rect)
	ids := make([]uint32, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*entry).expressID)
	}
	return ids
}

func toRect(min, max [3]float64) (*rtreego.Rect, error) {
	lengths := [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = 1e-9
		}
	}
	return rtreego.NewRect(rtreego.Point{min[0], min[1], min[2]}, lengths[:])
}
