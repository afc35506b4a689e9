package xform

import (
	"testing"

	v3 "github.com/maximelah94/web-ifc/vec/v3"
)

func TestMat4Identity(t *testing.T) {
	p := v3.Vec{X: 1, Y: 2, Z: 3}
	got := Identity4().MulPoint(p)
	if !got.Equals(p, 1e-9) {
		t.Errorf("identity transform changed point: got %v, want %v", got, p)
	}
}

func TestMat4Compose(t *testing.T) {
	translate := NewMat4(
		v3.Vec{X: 1, Y: 0, Z: 0},
		v3.Vec{X: 0, Y: 1, Z: 0},
		v3.Vec{X: 0, Y: 0, Z: 1},
		v3.Vec{X: 10, Y: 0, Z: 0},
	)
	rotateZ90 := NewMat4(
		v3.Vec{X: 0, Y: 1, Z: 0},
		v3.Vec{X: -1, Y: 0, Z: 0},
		v3.Vec{X: 0, Y: 0, Z: 1},
		v3.Vec{X: 0, Y: 0, Z: 0},
	)

	combined := translate.Mul(rotateZ90)
	got := combined.MulPoint(v3.Vec{X: 1, Y: 0, Z: 0})
	want := v3.Vec{X: 10, Y: 1, Z: 0}
	if !got.Equals(want, 1e-9) {
		t.Errorf("translate*rotate mismatch: got %v, want %v", got, want)
	}
}
