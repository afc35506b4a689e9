package step

import v3 "github.com/maximelah94/web-ifc/vec/v3"

func triangleNormal(v0, v1, v2 v3.Vec) v3.Vec {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

func triangleDegenerate(v0, v1, v2 v3.Vec, tolerance float64) bool {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Length() < tolerance
}
