package ifcgeom

import "github.com/maximelah94/web-ifc/express"

// ensureRelVoidsMap lazily, one-shot populates the RelVoids map by scanning
// every IfcRelVoidsElement in the model. Argument 0 is the relating
// building element, argument 1 the related opening element.
func (r *Resolver) ensureRelVoidsMap() {
	if r.relVoidsLoaded {
		return
	}
	r.relVoids = make(RelVoidsMap)
	for _, id := range r.Loader.GetExpressIDsWithType(express.IfcRelVoidsElement) {
		line := r.line(id)
		elementRef := r.readRef(line, 0)
		openingRef := r.readRef(line, 1)
		r.relVoids[elementRef] = append(r.relVoids[elementRef], openingRef)
	}
	r.relVoidsLoaded = true
}

// ensureStyledItemsMap lazily, one-shot populates the StyledItems map by
// scanning every IfcStyledItem. Argument 0 is the styled representation
// item, argument 1 the SET of presentation-style-assignments.
func (r *Resolver) ensureStyledItemsMap() {
	if r.styledItemsLoaded {
		return
	}
	r.styledItems = make(StyledItemsMap)
	for _, id := range r.Loader.GetExpressIDsWithType(express.IfcStyledItem) {
		line := r.line(id)
		itemRef := r.readRef(line, 0)
		r.Loader.MoveToArgumentOffset(line, 1)
		for _, off := range r.Loader.GetSetArgument() {
			styleRef := r.Loader.GetRefArgumentAt(off)
			r.styledItems[itemRef] = append(r.styledItems[itemRef], styleRef)
		}
	}
	r.styledItemsLoaded = true
}
