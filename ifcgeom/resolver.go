package ifcgeom

import (
	"github.com/maximelah94/web-ifc/express"
)

// Resolver is the single entry point for geometry resolution:
// GetMesh/GetMeshByLine/GetFlatMesh/GetFlattenedGeometry/GetCachedGeometry.
// It is single-threaded and non-reentrant across goroutines; independent
// Resolver instances (e.g. one per file) may run in parallel.
type Resolver struct {
	Loader *express.Loader
	Config Config

	nodeCache     map[uint32]*ComposedMesh
	geometryCache map[uint32]*Geometry
	visiting      map[uint32]bool

	relVoids        RelVoidsMap
	relVoidsLoaded  bool
	styledItems     StyledItemsMap
	styledItemsLoaded bool
}

// NewResolver builds a Resolver over an already-parsed loader.
func NewResolver(loader *express.Loader, cfg Config) *Resolver {
	return &Resolver{
		Loader:        loader,
		Config:        cfg,
		nodeCache:     make(map[uint32]*ComposedMesh),
		geometryCache: make(map[uint32]*Geometry),
		visiting:      make(map[uint32]bool),
	}
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Config.Logger != nil {
		r.Config.Logger.Logf(format, args...)
	}
}

// line resolves an express id to its parsed Line via the loader's index.
func (r *Resolver) line(expressID uint32) express.Line {
	return r.Loader.GetLine(r.Loader.ExpressIDToLineID(expressID))
}

// readRef reads a mandatory REF argument at the given argument index.
func (r *Resolver) readRef(line express.Line, idx int) uint32 {
	r.Loader.MoveToArgumentOffset(line, idx)
	return r.Loader.GetRefArgument()
}

// optionalRef reads an argument that may be an unset ($) token instead of a
// reference, without disturbing the cursor on the non-ref path.
func (r *Resolver) optionalRef(line express.Line, idx int) (uint32, bool) {
	r.Loader.MoveToArgumentOffset(line, idx)
	tt := r.Loader.GetTokenType()
	r.Loader.Reverse()
	if tt != express.REF {
		return 0, false
	}
	return r.Loader.GetRefArgument(), true
}

// optionalReal reads an argument that may be an unset ($) token instead of
// a real number.
func (r *Resolver) optionalReal(line express.Line, idx int) (float64, bool) {
	r.Loader.MoveToArgumentOffset(line, idx)
	tt := r.Loader.GetTokenType()
	r.Loader.Reverse()
	if tt != express.REAL {
		return 0, false
	}
	return r.Loader.GetDoubleArgument(), true
}

// GetCachedGeometry returns the geometry cached under expressID, if any.
func (r *Resolver) GetCachedGeometry(expressID uint32) (*Geometry, bool) {
	g, ok := r.geometryCache[expressID]
	return g, ok
}

// HasCachedGeometry reports whether a geometry is cached under expressID.
func (r *Resolver) HasCachedGeometry(expressID uint32) bool {
	_, ok := r.geometryCache[expressID]
	return ok
}
