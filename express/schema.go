package express

// Entity-kind identifiers for the subset of IFC4 this core recognizes: the
// Schema contract's enumeration of frozen identifiers the resolver
// dispatches on, plus IsIfcElement.
const (
	IfcPolyline       = "IFCPOLYLINE"
	IfcPolyloop       = "IFCPOLYLOOP"
	IfcCompositeCurve        = "IFCCOMPOSITECURVE"
	IfcCompositeCurveSegment = "IFCCOMPOSITECURVESEGMENT"
	IfcTrimmedCurve          = "IFCTRIMMEDCURVE"
	IfcCircle                = "IFCCIRCLE"

	IfcArbitraryClosedProfileDef = "IFCARBITRARYCLOSEDPROFILEDEF"
	IfcRectangleProfileDef       = "IFCRECTANGLEPROFILEDEF"
	IfcCircleProfileDef          = "IFCCIRCLEPROFILEDEF"

	IfcAxis2Placement2D                      = "IFCAXIS2PLACEMENT2D"
	IfcAxis2Placement3D                      = "IFCAXIS2PLACEMENT3D"
	IfcLocalPlacement                        = "IFCLOCALPLACEMENT"
	IfcCartesianTransformationOperator3D     = "IFCCARTESIANTRANSFORMATIONOPERATOR3D"
	IfcCartesianTransformationOperator3DnonU = "IFCCARTESIANTRANSFORMATIONOPERATOR3DNONUNIFORM"
	IfcCartesianPoint                        = "IFCCARTESIANPOINT"
	IfcDirection                             = "IFCDIRECTION"

	IfcPresentationStyleAssignment = "IFCPRESENTATIONSTYLEASSIGNMENT"
	IfcSurfaceStyle                = "IFCSURFACESTYLE"
	IfcSurfaceStyleRendering       = "IFCSURFACESTYLERENDERING"
	IfcColourRgb                   = "IFCCOLOURRGB"
	IfcStyledItem                  = "IFCSTYLEDITEM"

	IfcMappedItem                 = "IFCMAPPEDITEM"
	IfcRepresentationMap          = "IFCREPRESENTATIONMAP"
	IfcShellBasedSurfaceModel     = "IFCSHELLBASEDSURFACEMODEL"
	IfcFacetedBrep                = "IFCFACETEDBREP"
	IfcProductDefinitionShape     = "IFCPRODUCTDEFINITIONSHAPE"
	IfcShapeRepresentation        = "IFCSHAPEREPRESENTATION"
	IfcExtrudedAreaSolid          = "IFCEXTRUDEDAREASOLID"
	IfcClosedShell                = "IFCCLOSEDSHELL"
	IfcOpenShell                  = "IFCOPENSHELL"
	IfcFace                       = "IFCFACE"
	IfcFaceOuterBound             = "IFCFACEOUTERBOUND"
	IfcFaceBound                  = "IFCFACEBOUND"

	IfcRelVoidsElement = "IFCRELVOIDSELEMENT"
)

// ifcElementTypes are the IfcElement subtypes (and IfcOpeningElement, a
// feature-element subtraction that still carries a local placement and a
// product definition shape the same way an ordinary building element does)
// that GetMeshByLine dispatches through the building-element branch.
var ifcElementTypes = map[string]bool{
	"IFCWALL":                 true,
	"IFCWALLSTANDARDCASE":     true,
	"IFCSLAB":                 true,
	"IFCBEAM":                 true,
	"IFCCOLUMN":               true,
	"IFCDOOR":                 true,
	"IFCWINDOW":               true,
	"IFCROOF":                 true,
	"IFCSTAIR":                true,
	"IFCSTAIRFLIGHT":          true,
	"IFCRAILING":              true,
	"IFCCOVERING":             true,
	"IFCFOOTING":              true,
	"IFCPILE":                 true,
	"IFCPLATE":                true,
	"IFCMEMBER":               true,
	"IFCCURTAINWALL":          true,
	"IFCRAMP":                 true,
	"IFCRAMPFLIGHT":           true,
	"IFCBUILDINGELEMENTPROXY": true,
	"IFCFURNISHINGELEMENT":    true,
	"IFCOPENINGELEMENT":       true,
	"IFCCHIMNEY":              true,
	"IFCSHADINGDEVICE":        true,
}

// IsIfcElement implements the Schema contract's IsIfcElement predicate.
func IsIfcElement(ifcType string) bool {
	return ifcElementTypes[ifcType]
}

// ifcProfileDefTypes are the IfcProfileDef subtypes GetProfile dispatches on.
var ifcProfileDefTypes = map[string]bool{
	IfcArbitraryClosedProfileDef: true,
	IfcRectangleProfileDef:       true,
	IfcCircleProfileDef:          true,
}

// IsIfcProfileDef reports whether ifcType is one of the profile-definition
// entities GetProfile accepts.
func IsIfcProfileDef(ifcType string) bool {
	return ifcProfileDefTypes[ifcType]
}
