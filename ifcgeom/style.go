package ifcgeom

import "github.com/maximelah94/web-ifc/express"

// GetColor implements the recursive style walk:
// styled-item -> presentation-style-assignment -> surface-style ->
// surface-style-rendering -> colour-rgb. Unknown kinds log and return
// found=false.
func (r *Resolver) GetColor(expressID uint32) (RGBA, bool) {
	line := r.line(expressID)
	switch line.IfcType {
	case express.IfcPresentationStyleAssignment:
		r.Loader.MoveToArgumentOffset(line, 0)
		styles := r.Loader.GetSetArgument()
		for _, off := range styles {
			ref := r.Loader.GetRefArgumentAt(off)
			if color, ok := r.GetColor(ref); ok {
				return color, true
			}
		}
		return RGBA{}, false

	case express.IfcSurfaceStyle:
		r.Loader.MoveToArgumentOffset(line, 2)
		elements := r.Loader.GetSetArgument()
		for _, off := range elements {
			ref := r.Loader.GetRefArgumentAt(off)
			if color, ok := r.GetColor(ref); ok {
				return color, true
			}
		}
		return RGBA{}, false

	case express.IfcSurfaceStyleRendering:
		color, ok := r.GetColor(r.readRef(line, 0))
		if !ok {
			return RGBA{}, false
		}
		if t, ok := r.optionalReal(line, 1); ok {
			color.A = 1 - t
		}
		return color, true

	case express.IfcColourRgb:
		return RGBA{
			R: r.readReal(line, 1),
			G: r.readReal(line, 2),
			B: r.readReal(line, 3),
			A: 1,
		}, true

	case express.IfcStyledItem:
		r.Loader.MoveToArgumentOffset(line, 1)
		assignments := r.Loader.GetSetArgument()
		for _, off := range assignments {
			ref := r.Loader.GetRefArgumentAt(off)
			if color, ok := r.GetColor(ref); ok {
				return color, true
			}
		}
		return RGBA{}, false

	default:
		r.logf("ifcgeom: unrecognized style kind %s (#%d)", line.IfcType, expressID)
		return RGBA{}, false
	}
}

// styledItemColor resolves the first style assignment recorded against
// itemExpressID in the StyledItemsMap, if any.
func (r *Resolver) styledItemColor(itemExpressID uint32) (RGBA, bool) {
	for _, assignmentID := range r.styledItems[itemExpressID] {
		if color, ok := r.GetColor(assignmentID); ok {
			return color, true
		}
	}
	return RGBA{}, false
}
